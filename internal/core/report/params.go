package report

import (
	"strings"
	"time"

	perr "umamiconnector/internal/platform/errors"

	"github.com/google/uuid"
)

// Config param ids as the host sends them
const (
	ParamWebsiteID = "website_id"
	ParamAPIPath   = "api_path"
	ParamTimeUnit  = "event_time_unit"
	ParamTimezone  = "event_timezone"
	ParamURL       = "url"
	ParamReferrer  = "referrer"
	ParamPageTitle = "page_title"
	ParamOS        = "os"
	ParamBrowser   = "browser"
	ParamDevice    = "device"
	ParamCountry   = "country"
	ParamRegion    = "region"
	ParamCity      = "city"
	ParamType      = "type"
	ParamLanguage  = "language"
	ParamEvent     = "event"
	ParamLimit     = "limit"
)

// MetricTypes are the dimensions a metrics report can group by
var MetricTypes = []string{"url", "referrer", "browser", "os", "device", "country", "event"}

// ParameterSet is the host supplied config for one request
// absent and empty values are treated the same
type ParameterSet map[string]string

// Get returns the value for name and whether it is non-empty
func (p ParameterSet) Get(name string) (string, bool) {
	v, ok := p[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WebsiteID returns the trimmed website id
func (p ParameterSet) WebsiteID() string { return strings.TrimSpace(p[ParamWebsiteID]) }

// Kind parses the api_path param
func (p ParameterSet) Kind() (Kind, error) {
	raw := strings.TrimSpace(p[ParamAPIPath])
	if raw == "" {
		return "", perr.Required(ParamAPIPath)
	}
	return ParseKind(raw)
}

// Ready reports whether the first config step is complete
func (p ParameterSet) Ready() bool {
	return p.WebsiteID() != "" && strings.TrimSpace(p[ParamAPIPath]) != ""
}

// ValidateWebsiteID checks the website id is present and is a UUID
func (p ParameterSet) ValidateWebsiteID() error {
	id := p.WebsiteID()
	if id == "" {
		return perr.Required(ParamWebsiteID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return perr.WithField(perr.Validationf("website_id must be a UUID, got %q", id), ParamWebsiteID)
	}
	return nil
}

// Clone returns a copy that is safe to mutate
func (p ParameterSet) Clone() ParameterSet {
	out := make(ParameterSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// DateRange is the host date range, usually YYYY-MM-DD bounds
type DateRange struct {
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano, "2006-01-02T15:04:05", "20060102"}

// parseDate reads one bound; date-only values are UTC midnight
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, perr.Required(field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, perr.WithField(perr.Validationf("%s is not a date: %q", field, s), field)
}

// IsDate reports whether s parses as a date range bound
func IsDate(s string) bool {
	_, err := parseDate("date", s)
	return err == nil
}

// Millis returns both bounds as epoch milliseconds
func (d DateRange) Millis() (start, end int64, err error) {
	st, err := parseDate("start_date", d.StartDate)
	if err != nil {
		return 0, 0, err
	}
	et, err := parseDate("end_date", d.EndDate)
	if err != nil {
		return 0, 0, err
	}
	if et.Before(st) {
		return 0, 0, perr.WithField(perr.Validationf("end_date %s is before start_date %s", d.EndDate, d.StartDate), "end_date")
	}
	return st.UnixMilli(), et.UnixMilli(), nil
}
