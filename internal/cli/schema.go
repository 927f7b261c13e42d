package cli

import (
	"umamiconnector/internal/core/report"
	"umamiconnector/internal/services/connector/domain"
)

// Execute implements the go-flags Commander interface for SchemaCommand
func (c *SchemaCommand) Execute(_ []string) error {
	kind, err := report.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	sc, err := report.Catalog{LegacyPageViews: c.globals.Legacy}.SchemaFor(kind)
	if err != nil {
		return err
	}
	return writeJSON(c.out, c.globals.Pretty, domain.SchemaResult{Schema: sc})
}
