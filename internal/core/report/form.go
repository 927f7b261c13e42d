package report

// InputKind is the host widget a config entry renders as
type InputKind string

const (
	InputText   InputKind = "TEXTINPUT"
	InputSelect InputKind = "SELECT_SINGLE"
	InputInfo   InputKind = "INFO"
)

// Option is one choice of a select input
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Input describes one config entry. Dynamic inputs trigger a
// form refresh when their value changes
type Input struct {
	ID          string    `json:"id"`
	Kind        InputKind `json:"kind"`
	Name        string    `json:"name"`
	HelpText    string    `json:"help_text,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Dynamic     bool      `json:"dynamic,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// ConfigForm is the declarative stepped form
// Stepped stays true until website id and api path are both chosen
type ConfigForm struct {
	Inputs            []Input `json:"inputs"`
	Stepped           bool    `json:"stepped"`
	DateRangeRequired bool    `json:"date_range_required"`
}

func optional(id, what string) Input {
	return Input{ID: id, Kind: InputText, Name: "(optional) Name of " + what}
}

var timeInputs = []Input{
	{ID: ParamTimeUnit, Kind: InputText, Name: "Time unit", HelpText: "year, month, day or hour", Placeholder: "day"},
	{ID: ParamTimezone, Kind: InputText, Name: "Timezone", HelpText: "IANA timezone name", Placeholder: "America/Los_Angeles"},
}

var commonInputs = []Input{
	optional(ParamURL, "URL"),
	optional(ParamReferrer, "referrer"),
	optional(ParamPageTitle, "page title"),
	optional(ParamOS, "operating system"),
	optional(ParamBrowser, "browser"),
	optional(ParamDevice, "device"),
	optional(ParamCountry, "country"),
	optional(ParamRegion, "region"),
	optional(ParamCity, "city"),
}

func metricTypeInput() Input {
	in := Input{ID: ParamType, Kind: InputSelect, Name: "Metric type"}
	for _, t := range MetricTypes {
		in.Options = append(in.Options, Option{Label: t, Value: t})
	}
	return in
}

// BuildConfigForm describes the config form for the params chosen so far
func BuildConfigForm(params ParameterSet) (ConfigForm, error) {
	form := ConfigForm{Stepped: true}

	kindSelect := Input{ID: ParamAPIPath, Kind: InputSelect, Name: "Data to fetch", Dynamic: true}
	for _, k := range kinds {
		kindSelect.Options = append(kindSelect.Options, Option{Label: k.Label(), Value: string(k)})
	}
	form.Inputs = append(form.Inputs,
		Input{
			ID:          ParamWebsiteID,
			Kind:        InputText,
			Name:        "Website ID",
			HelpText:    "Found under Settings > Websites in Umami",
			Placeholder: "02d89813-7a72-41e1-87f0-8d668f85008b",
			Dynamic:     true,
		},
		kindSelect,
	)

	if !params.Ready() {
		return form, nil
	}
	kind, err := params.Kind()
	if err != nil {
		return ConfigForm{}, err
	}
	form.Stepped = false
	form.DateRangeRequired = kind.NeedsDateRange()

	switch kind {
	case ActiveUsers:
	case Events:
		form.Inputs = append(form.Inputs, timeInputs...)
		form.Inputs = append(form.Inputs, optional(ParamURL, "URL"))
	case PageViews:
		form.Inputs = append(form.Inputs, timeInputs...)
		form.Inputs = append(form.Inputs, commonInputs...)
	case Stats:
		form.Inputs = append(form.Inputs, commonInputs...)
	case Metrics:
		form.Inputs = append(form.Inputs, metricTypeInput())
		form.Inputs = append(form.Inputs, commonInputs...)
		form.Inputs = append(form.Inputs,
			optional(ParamLanguage, "language"),
			optional(ParamEvent, "event"),
			Input{ID: ParamLimit, Kind: InputText, Name: "(optional, default 500) Number of events returned"},
		)
	}
	return form, nil
}
