package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
)

// Row is one host row, values ordered like the kind's schema
type Row struct {
	Values []any `json:"values"`
}

// Normalize turns a raw Umami body into rows for kind
// Numbers come out as float64, text as string
func Normalize(kind Kind, raw json.RawMessage) ([]Row, error) {
	if err := kind.check(); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrNoResponse
	}

	switch kind {
	case Stats:
		return normalizeStats(raw)
	case PageViews:
		return normalizePageViews(raw)
	case ActiveUsers, Events, Metrics:
		return normalizeRecords(kind, raw)
	}
	return nil, InvalidKind(string(kind))
}

type statPair struct {
	Value  *float64 `json:"value"`
	Change *float64 `json:"change"`
}

func normalizeStats(raw []byte) ([]Row, error) {
	var body map[string]*statPair
	if err := decodeTyped(Stats, raw, &body); err != nil {
		return nil, err
	}
	vals := make([]any, 0, 2*len(StatsMetrics))
	for _, m := range StatsMetrics {
		p, ok := body[m]
		if !ok || p == nil {
			return nil, malformed(Stats, "missing metric %q", m)
		}
		if p.Value == nil || p.Change == nil {
			return nil, malformed(Stats, "metric %q needs value and change", m)
		}
		vals = append(vals, *p.Value, *p.Change)
	}
	return []Row{{Values: vals}}, nil
}

type point struct {
	X string   `json:"x"`
	Y *float64 `json:"y"`
}

type pageViewsBody struct {
	PageViews *[]point `json:"pageviews"`
	Sessions  *[]point `json:"sessions"`
}

// normalizePageViews sorts both series by x independently then pairs them by index
func normalizePageViews(raw []byte) ([]Row, error) {
	var body pageViewsBody
	if err := decodeTyped(PageViews, raw, &body); err != nil {
		return nil, err
	}
	if body.PageViews == nil {
		return nil, malformed(PageViews, "missing pageviews series")
	}
	if body.Sessions == nil {
		return nil, malformed(PageViews, "missing sessions series")
	}
	pv, ss := *body.PageViews, *body.Sessions
	sort.SliceStable(pv, func(i, j int) bool { return pv[i].X < pv[j].X })
	sort.SliceStable(ss, func(i, j int) bool { return ss[i].X < ss[j].X })

	rows := make([]Row, 0, len(pv))
	for i, p := range pv {
		if p.Y == nil {
			return nil, malformed(PageViews, "pageviews[%d] has no y", i)
		}
		var sessions any
		if i < len(ss) && ss[i].Y != nil {
			sessions = *ss[i].Y
		}
		rows = append(rows, Row{Values: []any{p.X, *p.Y, sessions}})
	}
	return rows, nil
}

func decodeTyped(k Kind, raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return malformed(k, "unexpected %s at %q", te.Value, te.Field)
	}
	return invalidJSON(k, err)
}

// normalizeRecords handles the pass-through shapes: an array of flat
// records, or a single flat record. Values keep the record's key order.
func normalizeRecords(k Kind, raw []byte) ([]Row, error) {
	width, _ := RowWidth(k)
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, invalidJSON(k, err)
	}

	var rows []Row
	switch tok {
	case json.Delim('['):
		rows = []Row{}
		for dec.More() {
			open, err := dec.Token()
			if err != nil {
				return nil, invalidJSON(k, err)
			}
			if open != json.Delim('{') {
				return nil, malformed(k, "element %d is not an object", len(rows))
			}
			row, err := readRecord(k, dec, width)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		if _, err := dec.Token(); err != nil {
			return nil, invalidJSON(k, err)
		}
	case json.Delim('{'):
		row, err := readRecord(k, dec, width)
		if err != nil {
			return nil, err
		}
		rows = []Row{row}
	default:
		return nil, malformed(k, "expected an array or an object")
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, invalidJSON(k, err)
		}
		return nil, malformed(k, "unexpected data after the response body")
	}
	return rows, nil
}

// readRecord reads one object whose opening brace was already consumed
func readRecord(k Kind, dec *json.Decoder, width int) (Row, error) {
	vals := make([]any, 0, width)
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return Row{}, invalidJSON(k, err)
		}
		tok, err := dec.Token()
		if err != nil {
			return Row{}, invalidJSON(k, err)
		}
		v, ok := scalar(tok)
		if !ok {
			return Row{}, malformed(k, "field %v is not a scalar", key)
		}
		vals = append(vals, v)
	}
	if _, err := dec.Token(); err != nil {
		return Row{}, invalidJSON(k, err)
	}
	if len(vals) > width {
		return Row{}, malformed(k, "record has %d values, schema has %d fields", len(vals), width)
	}
	for len(vals) < width {
		vals = append(vals, nil)
	}
	return Row{Values: vals}, nil
}

func scalar(tok json.Token) (any, bool) {
	switch v := tok.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	case string, bool, nil:
		return v, true
	}
	return nil, false
}
