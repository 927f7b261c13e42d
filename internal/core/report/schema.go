package report

// FieldType is the host data type of a field
type FieldType string

const (
	Number FieldType = "NUMBER"
	Text   FieldType = "TEXT"
)

// Field is one (id, type) pair of a schema
type Field struct {
	ID   string    `json:"name"`
	Type FieldType `json:"dataType"`
}

// FieldSchema is the ordered field list for a kind
type FieldSchema []Field

// IDs returns the field ids in order
func (s FieldSchema) IDs() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.ID
	}
	return out
}

// StatsMetrics is the fixed order stats metrics are flattened in
var StatsMetrics = []string{"pageviews", "visitors", "visits", "bounces", "totaltime"}

func statsSchema() FieldSchema {
	out := make(FieldSchema, 0, 2*len(StatsMetrics))
	for _, m := range StatsMetrics {
		out = append(out, Field{m + "_value", Number}, Field{m + "_change", Number})
	}
	return out
}

var schemas = map[Kind]FieldSchema{
	ActiveUsers: {{"number_of_unique_visitors", Number}},
	Events:      {{"event_name", Text}, {"event_date", Text}, {"number_events", Number}},
	PageViews:   {{"timestamp", Text}, {"number_of_visitors", Number}, {"number_of_sessions", Number}},
	Stats:       statsSchema(),
	Metrics:     {{"metric_type", Text}, {"number_of_visitors", Number}},
}

// legacy page views schema declares two fields for a three value row
var legacyPageViews = FieldSchema{{"timestamp", Text}, {"number_of_visitors", Number}}

// Catalog is the kind to field schema lookup
// LegacyPageViews keeps the historical two field page views schema
type Catalog struct {
	LegacyPageViews bool
}

// DefaultCatalog declares the full page views schema
var DefaultCatalog = Catalog{}

// SchemaFor returns a copy of the schema declared for kind
func (c Catalog) SchemaFor(kind Kind) (FieldSchema, error) {
	if err := kind.check(); err != nil {
		return nil, err
	}
	if kind == PageViews && c.LegacyPageViews {
		return append(FieldSchema(nil), legacyPageViews...), nil
	}
	return append(FieldSchema(nil), schemas[kind]...), nil
}

// WidthMismatch reports whether normalized rows for kind carry more
// values than this catalog declares fields
func (c Catalog) WidthMismatch(kind Kind) bool {
	s, err := c.SchemaFor(kind)
	if err != nil {
		return false
	}
	w, _ := RowWidth(kind)
	return len(s) != w
}

// SchemaFor looks up kind in the default catalog
func SchemaFor(kind Kind) (FieldSchema, error) { return DefaultCatalog.SchemaFor(kind) }

// RowWidth is the number of values Normalize emits per row for kind
func RowWidth(kind Kind) (int, error) {
	if err := kind.check(); err != nil {
		return 0, err
	}
	return len(schemas[kind]), nil
}
