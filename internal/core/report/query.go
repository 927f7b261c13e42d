package report

import (
	"slices"
	"strconv"
	"strings"

	perr "umamiconnector/internal/platform/errors"

	"golang.org/x/text/unicode/norm"
)

// QueryParam is one key/value pair of the upstream query string
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QueryDescriptor is a fully built upstream request, before encoding
type QueryDescriptor struct {
	Kind   Kind         `json:"kind"`
	Path   string       `json:"path"`
	Params []QueryParam `json:"params"`
}

// Get returns the first value for key
func (q QueryDescriptor) Get(key string) (string, bool) {
	for _, p := range q.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// RawQuery joins params in order without escaping
func (q QueryDescriptor) RawQuery() string {
	var b strings.Builder
	for i, p := range q.Params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// RequestURI is path plus query, without escaping
func (q QueryDescriptor) RequestURI() string {
	if len(q.Params) == 0 {
		return q.Path
	}
	return q.Path + "?" + q.RawQuery()
}

// URL assembles the absolute upstream URL and encodes it once as a whole
func (q QueryDescriptor) URL(endpoint string) string {
	return EncodeURI(strings.TrimRight(endpoint, "/") + q.RequestURI())
}

// optional filter sets, each in the order they are appended
var (
	eventFilters  = []string{ParamURL}
	commonFilters = []string{
		ParamBrowser, ParamCity, ParamCountry, ParamDevice, ParamOS,
		ParamPageTitle, ParamReferrer, ParamRegion, ParamURL,
	}
	metricFilters = []string{
		ParamBrowser, ParamCity, ParamCountry, ParamDevice, ParamEvent, ParamLanguage,
		ParamLimit, ParamOS, ParamPageTitle, ParamReferrer, ParamRegion, ParamURL,
	}
)

// OptionalParams lists the filters a kind accepts, in append order
func OptionalParams(k Kind) []string {
	switch k {
	case Events:
		return slices.Clone(eventFilters)
	case PageViews, Stats:
		return slices.Clone(commonFilters)
	case Metrics:
		return slices.Clone(metricFilters)
	}
	return nil
}

// BuildQuery turns a kind, its params and an optional date range into an upstream request
// Optional filters are appended only when non-empty
func BuildQuery(kind Kind, params ParameterSet, dr *DateRange) (QueryDescriptor, error) {
	if err := kind.check(); err != nil {
		return QueryDescriptor{}, err
	}
	if err := params.ValidateWebsiteID(); err != nil {
		return QueryDescriptor{}, err
	}

	q := QueryDescriptor{
		Kind: kind,
		Path: "/api/websites/" + params.WebsiteID() + "/" + string(kind),
	}
	if !kind.NeedsDateRange() {
		return q, nil
	}

	if dr == nil {
		return QueryDescriptor{}, perr.WithField(perr.Validationf("a date range is required for %s", kind), "date_range")
	}
	start, end, err := dr.Millis()
	if err != nil {
		return QueryDescriptor{}, err
	}
	q.add("startAt", strconv.FormatInt(start, 10))
	q.add("endAt", strconv.FormatInt(end, 10))

	switch kind {
	case Events, PageViews:
		unit, ok := params.Get(ParamTimeUnit)
		if !ok {
			return QueryDescriptor{}, perr.Required(ParamTimeUnit)
		}
		tz, ok := params.Get(ParamTimezone)
		if !ok {
			return QueryDescriptor{}, perr.Required(ParamTimezone)
		}
		q.add("unit", unit)
		q.add("timezone", tz)
	case Stats:
	case Metrics:
		typ, ok := params.Get(ParamType)
		if !ok {
			return QueryDescriptor{}, perr.Required(ParamType)
		}
		if !slices.Contains(MetricTypes, typ) {
			return QueryDescriptor{}, perr.WithField(
				perr.InvalidArgf("metric type must be one of %s, got %q", strings.Join(MetricTypes, ", "), typ),
				ParamType,
			)
		}
		q.add("type", typ)
		if v, ok := params.Get(ParamLimit); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil || n <= 0 {
				return QueryDescriptor{}, perr.WithField(perr.Validationf("limit must be a positive integer, got %q", v), ParamLimit)
			}
		}
	default:
		// every valid kind has a case above
		return QueryDescriptor{}, InvalidKind(string(kind))
	}

	for _, name := range OptionalParams(kind) {
		if v, ok := params.Get(name); ok {
			q.add(name, v)
		}
	}
	return q, nil
}

func (q *QueryDescriptor) add(key, value string) {
	q.Params = append(q.Params, QueryParam{Key: key, Value: norm.NFC.String(value)})
}

const upperhex = "0123456789ABCDEF"

// uriReserved reports the bytes EncodeURI leaves alone
func uriReserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ';', ',', '/', '?', ':', '@', '&', '=', '+', '$',
		'-', '_', '.', '!', '~', '*', '\'', '(', ')', '#':
		return true
	}
	return false
}

// EncodeURI percent-encodes an assembled URL in one pass
// structural characters stay, every other byte becomes %XX
func EncodeURI(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !uriReserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	out := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriReserved(c) {
			out = append(out, c)
			continue
		}
		out = append(out, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(out)
}
