// Package domain holds DTOs for connector http and service contracts
package domain

import "umamiconnector/internal/core/report"

// AuthType tells the host which credential form to show
type AuthType struct {
	Type    string `json:"type" example:"USER_PASS"`
	HelpURL string `json:"help_url" example:"https://umami.is/docs/api/authentication"`
}

// Auth type values
const (
	AuthTypeUserPass = "USER_PASS"
	AuthHelpURL      = "https://umami.is/docs/api/authentication"
)

// CredentialsInput is the username and password pair the host collected
type CredentialsInput struct {
	Username string `json:"username" validate:"required,max=255" example:"admin"`
	Password string `json:"password" validate:"required,max=1024" example:"umami"`
}

// AuthResult reports whether the stored token is usable
type AuthResult struct {
	Valid bool `json:"valid" example:"true"`
}

// ConfigInput carries the config params chosen so far
type ConfigInput struct {
	ConfigParams map[string]string `json:"config_params" validate:"required"`
}

// DateRange is the host supplied date range
type DateRange struct {
	StartDate string `json:"start_date" validate:"required,report_date" example:"2025-08-01"`
	EndDate   string `json:"end_date" validate:"required,report_date" example:"2025-08-31"`
}

// DataInput is one getData call
type DataInput struct {
	ConfigParams map[string]string `json:"config_params" validate:"required"`
	DateRange    *DateRange        `json:"date_range,omitempty"`
	// Fields optionally narrows the returned columns, in the order given
	Fields []string `json:"fields,omitempty" validate:"omitempty,dive,required"`
}

// SchemaResult is the declared schema for a kind
type SchemaResult struct {
	Schema report.FieldSchema `json:"schema"`
}

// DataResult is the schema and rows for one fetch
type DataResult struct {
	Schema report.FieldSchema `json:"schema"`
	Rows   []report.Row       `json:"rows"`
}

// Params converts the input map to a ParameterSet
func (in ConfigInput) Params() report.ParameterSet { return report.ParameterSet(in.ConfigParams) }

// Params converts the input map to a ParameterSet
func (in DataInput) Params() report.ParameterSet { return report.ParameterSet(in.ConfigParams) }

// Range converts the optional date range
func (in DataInput) Range() *report.DateRange {
	if in.DateRange == nil {
		return nil
	}
	return &report.DateRange{StartDate: in.DateRange.StartDate, EndDate: in.DateRange.EndDate}
}
