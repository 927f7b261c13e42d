package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputIDs(f ConfigForm) []string {
	out := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		out[i] = in.ID
	}
	return out
}

func TestBuildConfigForm_FirstStep(t *testing.T) {
	f, err := BuildConfigForm(ParameterSet{ParamWebsiteID: site})
	require.NoError(t, err)
	assert.True(t, f.Stepped)
	assert.False(t, f.DateRangeRequired)
	assert.Equal(t, []string{ParamWebsiteID, ParamAPIPath}, inputIDs(f))

	sel := f.Inputs[1]
	assert.True(t, sel.Dynamic)
	assert.Equal(t, []Option{
		{"Active users", "active"},
		{"Website events", "events"},
		{"Page views", "pageviews"},
		{"Summarized stats", "stats"},
		{"Metrics", "metrics"},
	}, sel.Options)
}

func TestBuildConfigForm_PerKind(t *testing.T) {
	common := []string{ParamURL, ParamReferrer, ParamPageTitle, ParamOS, ParamBrowser, ParamDevice, ParamCountry, ParamRegion, ParamCity}
	step1 := []string{ParamWebsiteID, ParamAPIPath}

	cases := map[Kind][]string{
		ActiveUsers: step1,
		Events:      append(append([]string{}, step1...), ParamTimeUnit, ParamTimezone, ParamURL),
		PageViews:   append(append(append([]string{}, step1...), ParamTimeUnit, ParamTimezone), common...),
		Stats:       append(append([]string{}, step1...), common...),
		Metrics: append(append(append(append([]string{}, step1...), ParamType), common...),
			ParamLanguage, ParamEvent, ParamLimit),
	}
	for k, want := range cases {
		f, err := BuildConfigForm(ParameterSet{ParamWebsiteID: site, ParamAPIPath: string(k)})
		require.NoError(t, err, k)
		assert.False(t, f.Stepped, k)
		assert.Equal(t, k != ActiveUsers, f.DateRangeRequired, k)
		assert.Equal(t, want, inputIDs(f), k)
	}
}

func TestBuildConfigForm_MetricTypeOptions(t *testing.T) {
	f, err := BuildConfigForm(ParameterSet{ParamWebsiteID: site, ParamAPIPath: "metrics"})
	require.NoError(t, err)
	var typ Input
	for _, in := range f.Inputs {
		if in.ID == ParamType {
			typ = in
		}
	}
	require.Len(t, typ.Options, len(MetricTypes))
	assert.Equal(t, "event", typ.Options[len(typ.Options)-1].Value)
	assert.Equal(t, "(optional, default 500) Number of events returned", f.Inputs[len(f.Inputs)-1].Name)
}

func TestBuildConfigForm_UnknownKind(t *testing.T) {
	_, err := BuildConfigForm(ParameterSet{ParamWebsiteID: site, ParamAPIPath: "page_view"})
	assert.True(t, IsInvalidKind(err))
}
