package design

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestProjectTieStripe(t *testing.T) {
	s := &Structured{
		Intent:     "tie",
		Template:   "stripe_basic",
		Confidence: f(0.82),
		Design: &DesignSpec{
			DesignStyle:  "Regular",
			GenerateMode: "Warp",
			Weave:        "Twill",
		},
		Colors: []ColorShare{
			{Name: "Navy", Percentage: f(60)},
			{Name: "White", Percentage: f(40)},
		},
	}

	p := Project(s)

	assert.Equal(t, "tie", p.Summary.Intent)
	assert.Equal(t, "stripe_basic", p.Summary.Template)
	assert.Equal(t, "Warp", p.Summary.GenerateMode)
	assert.Equal(t, "Regular", p.Summary.Style)
	assert.Equal(t, "2", p.Summary.ColorCount)
	assert.Equal(t, "Navy (60%), White (40%)", p.Colors)
	assert.Equal(t, "82%", p.Confidence)
	assert.Equal(t, "tie", p.Intent)
	assert.Equal(t, "stripe_basic", p.Template)

	want, err := json.MarshalIndent(s, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(want), p.JSON)
}

func TestProjectIsIdempotent(t *testing.T) {
	s := &Structured{
		Intent:     "check",
		Confidence: f(0.5),
		Colors:     []ColorShare{{Name: "Black", Percentage: f(50)}},
	}
	first := Project(s)
	second := Project(s)
	assert.Equal(t, first, second)
}

func TestProjectAllFieldsMissing(t *testing.T) {
	p := Project(&Structured{})

	assert.Equal(t, Placeholder, p.Summary.Intent)
	assert.Equal(t, Placeholder, p.Summary.Template)
	assert.Equal(t, Placeholder, p.Summary.GenerateMode)
	assert.Equal(t, Placeholder, p.Summary.ColorCount)
	assert.Equal(t, Placeholder, p.Summary.Style)
	assert.Equal(t, Placeholder, p.Colors)
	assert.Empty(t, p.Confidence, "absent confidence renders an empty indicator, not 0%")
	assert.Equal(t, DefaultIntent, p.Intent)
	assert.Equal(t, DefaultTemplate, p.Template)
	assert.Equal(t, DefaultQuestion, p.Question)
	assert.NotEmpty(t, p.JSON)
}

func TestProjectNilPayload(t *testing.T) {
	p := Project(nil)
	assert.Equal(t, Placeholder, p.Summary.Intent)
	assert.Empty(t, p.JSON)
	assert.Empty(t, p.Confidence)
}

func TestProjectPartialNesting(t *testing.T) {
	// A design object with only a weave must not disturb the other summary
	// fields, and colors without percentages still render.
	p := Project(&Structured{
		Design: &DesignSpec{Weave: "Plain"},
		Colors: []ColorShare{{Name: "Red"}},
	})
	assert.Equal(t, Placeholder, p.Summary.Style)
	assert.Equal(t, "1", p.Summary.ColorCount)
	assert.Equal(t, "Red (—%)", p.Colors)
}

func TestConfidenceRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.82, "82%"},
		{0.005, "1%"},
		{1, "100%"},
		{0, "0%"},
		{0.666, "67%"},
	}
	for _, tc := range cases {
		p := Project(&Structured{Confidence: f(tc.in)})
		assert.Equal(t, tc.want, p.Confidence)
	}
}

func TestQuestionPassedThrough(t *testing.T) {
	p := Project(&Structured{ClarificationRequired: true, Question: "What occasion?"})
	assert.Equal(t, "What occasion?", p.Question)
}
