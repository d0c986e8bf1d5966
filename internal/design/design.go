// Package design models the structured design payload the assistant can
// return alongside (or instead of) a free-text reply, and projects it into
// display-ready values. Every field is optional: the server fills in whatever
// it could infer and the client substitutes placeholders for the rest.
package design

// Structured is the machine-parseable design object embedded in a chat
// response. A response carrying Structured with ClarificationRequired set is
// a request for more information, not a finished design.
type Structured struct {
	Intent                string   `json:"intent,omitempty"`
	Template              string   `json:"template,omitempty"`
	Confidence            *float64 `json:"confidence,omitempty"`
	ClarificationRequired bool     `json:"clarification_required,omitempty"`
	Question              string   `json:"question,omitempty"`

	Design    *DesignSpec    `json:"design,omitempty"`
	Stripe    *StripeSpec    `json:"stripe,omitempty"`
	Visual    *VisualSpec    `json:"visual,omitempty"`
	Market    *MarketSpec    `json:"market,omitempty"`
	Technical *TechnicalSpec `json:"technical,omitempty"`
	Colors    []ColorShare   `json:"colors,omitempty"`
}

// Range is a numeric min/max pair. Either bound may be absent.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type DesignSpec struct {
	DesignSize        string `json:"designSize,omitempty"`
	DesignSizeRangeCm *Range `json:"designSizeRangeCm,omitempty"`
	DesignStyle       string `json:"designStyle,omitempty"`
	GenerateMode      string `json:"generateMode,omitempty"`
	Weave             string `json:"weave,omitempty"`
}

type StripeSpec struct {
	StripeSizeRangeMm   *Range `json:"stripeSizeRangeMm,omitempty"`
	StripeMultiplyRange *Range `json:"stripeMultiplyRange,omitempty"`
	IsSymmetry          *bool  `json:"isSymmetry,omitempty"`
}

type VisualSpec struct {
	ContrastLevel string `json:"contrastLevel,omitempty"`
}

type MarketSpec struct {
	Occasion string `json:"occasion,omitempty"`
}

type TechnicalSpec struct {
	Construction string   `json:"construction,omitempty"`
	YarnCount    string   `json:"yarnCount,omitempty"`
	GSM          *float64 `json:"gsm,omitempty"`
}

type ColorShare struct {
	Name       string   `json:"name,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}
