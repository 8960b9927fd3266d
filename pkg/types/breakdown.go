// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LineItem is one priced component of a quote.
type LineItem struct {
	Label    string  `json:"label" yaml:"label"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
	UnitCost float64 `json:"unitCost" yaml:"unitCost"`
	Subtotal float64 `json:"subtotal" yaml:"subtotal"`
}

// Line item labels, in output order.
const (
	LabelPaint  = "paint"
	LabelPrimer = "primer"
	LabelLabor  = "labor"
	LabelMarkup = "markup"
)

// QuoteBreakdown is the priced output of the calculation engine.
// LineItems are ordered paint, primer, labor, markup.
type QuoteBreakdown struct {
	LineItems     []LineItem `json:"lineItems" yaml:"lineItems"`
	TotalArea     float64    `json:"totalArea" yaml:"totalArea"`
	Gallons       int        `json:"gallons" yaml:"gallons"`
	MaterialTotal float64    `json:"materialTotal" yaml:"materialTotal"`
	LaborTotal    float64    `json:"laborTotal" yaml:"laborTotal"`
	MarkupAmount  float64    `json:"markupAmount" yaml:"markupAmount"`
	GrandTotal    float64    `json:"grandTotal" yaml:"grandTotal"`
	Warnings      []Warning  `json:"warnings" yaml:"warnings"`
}

// Result is what parse-and-price hands back to the caller. Warnings holds
// the resolver warnings followed by the breakdown warnings.
type Result struct {
	Specification QuoteSpecification `json:"specification" yaml:"specification"`
	Breakdown     QuoteBreakdown     `json:"breakdown" yaml:"breakdown"`
	Warnings      []Warning          `json:"warnings" yaml:"warnings"`
}
