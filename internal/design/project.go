package design

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered wherever an optional field is missing.
const Placeholder = "—"

// Defaults for the confirmation line when the server omits them.
const (
	DefaultIntent   = "pattern"
	DefaultTemplate = "custom"

	// DefaultQuestion stands in when a clarification carries no question text.
	DefaultQuestion = "Could you tell me a bit more about the design you have in mind?"
)

// Summary is the human-readable design overview panel.
type Summary struct {
	Intent       string
	Template     string
	GenerateMode string
	ColorCount   string
	Style        string
}

// Projection is everything the render layer derives from one Structured
// payload. Projecting the same payload twice yields identical values; there
// is no hidden state.
type Projection struct {
	Summary    Summary
	Colors     string // "Navy (60%), White (40%)" or placeholder
	JSON       string // pretty-printed payload, "" when absent
	Confidence string // "82%", "" when absent
	Question   string // clarification question or DefaultQuestion

	// Intent and Template for the confirmation line, with defaults applied
	// (the Summary fields use the placeholder instead).
	Intent   string
	Template string
}

// Project derives all display values from s. Missing fields, including a nil
// payload or missing nested objects, degrade to placeholders rather than
// failing.
func Project(s *Structured) Projection {
	p := Projection{
		Summary: Summary{
			Intent:       Placeholder,
			Template:     Placeholder,
			GenerateMode: Placeholder,
			ColorCount:   Placeholder,
			Style:        Placeholder,
		},
		Colors:   Placeholder,
		Intent:   DefaultIntent,
		Template: DefaultTemplate,
		Question: DefaultQuestion,
	}
	if s == nil {
		return p
	}

	p.Summary.Intent = orPlaceholder(s.Intent)
	p.Summary.Template = orPlaceholder(s.Template)
	if q := strings.TrimSpace(s.Question); q != "" {
		p.Question = q
	}
	if s.Intent != "" {
		p.Intent = s.Intent
	}
	if s.Template != "" {
		p.Template = s.Template
	}
	if s.Design != nil {
		p.Summary.GenerateMode = orPlaceholder(s.Design.GenerateMode)
		p.Summary.Style = orPlaceholder(s.Design.DesignStyle)
	}
	if len(s.Colors) > 0 {
		p.Summary.ColorCount = strconv.Itoa(len(s.Colors))
		p.Colors = joinColors(s.Colors)
	}
	if s.Confidence != nil {
		p.Confidence = fmt.Sprintf("%d%%", int(math.Round(*s.Confidence*100)))
	}
	if b, err := json.MarshalIndent(s, "", "  "); err == nil {
		p.JSON = string(b)
	}
	return p
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v
}

func joinColors(colors []ColorShare) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		name := orPlaceholder(c.Name)
		pct := Placeholder
		if c.Percentage != nil {
			pct = strconv.FormatFloat(*c.Percentage, 'f', -1, 64)
		}
		parts = append(parts, fmt.Sprintf("%s (%s%%)", name, pct))
	}
	return strings.Join(parts, ", ")
}
