package stubserver

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dobby-design-chat/internal/design"
)

// Template is one canned design answer. Structured is declared in YAML as a
// free-form mapping and converted into the wire shape at load time, so the
// catalogue file can mirror the documented payload field for field.
type Template struct {
	Name       string         `yaml:"name"`
	Intent     string         `yaml:"intent"`
	Keywords   []string       `yaml:"keywords"`
	Confidence float64        `yaml:"confidence"`
	Reply      string         `yaml:"reply"`
	Structured map[string]any `yaml:"structured"`
}

// Catalog holds the canned templates plus the clarification and fallback
// behavior for messages that match nothing.
type Catalog struct {
	Templates []Template `yaml:"templates"`
	Clarify   struct {
		Question string   `yaml:"question"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"clarification"`
	FallbackReply string `yaml:"fallback_reply"`
}

// LoadCatalog reads and validates a YAML catalogue.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if len(c.Templates) == 0 {
		return nil, fmt.Errorf("catalogue %s declares no templates", path)
	}
	for i := range c.Templates {
		if _, err := c.Templates[i].structured(); err != nil {
			return nil, fmt.Errorf("template %q: %w", c.Templates[i].Name, err)
		}
	}
	return &c, nil
}

// Match finds the first template whose keywords appear in the message.
func (c *Catalog) Match(message string) (*Template, bool) {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return nil, false
	}
	for i := range c.Templates {
		if containsAny(m, c.Templates[i].Keywords) {
			return &c.Templates[i], true
		}
	}
	return nil, false
}

// WantsClarification reports whether the message looks design-related but
// matched no template, in which case the stub asks its canned question.
func (c *Catalog) WantsClarification(message string) bool {
	return containsAny(strings.ToLower(message), c.Clarify.Keywords)
}

// Build assembles the structured payload for a matched template.
func (t *Template) Build() (*design.Structured, error) {
	s, err := t.structured()
	if err != nil {
		return nil, err
	}
	s.Intent = t.Intent
	s.Template = t.Name
	conf := t.Confidence
	s.Confidence = &conf
	return s, nil
}

// structured converts the YAML mapping through JSON into the wire type, so
// the catalogue gets the same lenient optional-field semantics as a real
// server response.
func (t *Template) structured() (*design.Structured, error) {
	raw, err := json.Marshal(t.Structured)
	if err != nil {
		return nil, fmt.Errorf("encode structured block: %w", err)
	}
	var s design.Structured
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode structured block: %w", err)
	}
	return &s, nil
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
