package cli

import (
	"encoding/json"
	"io"

	perr "umamiconnector/internal/platform/errors"
)

func writeJSON(w io.Writer, pretty bool, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode output")
	}
	return nil
}
