// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match holds the category pattern matchers. Each matcher inspects
// one segment at a time and proposes candidate facts with a specificity
// score; matchers share no mutable state and their execution order does not
// affect the result.
package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

// Specificity levels. Multi-token explicit statements outrank a number or
// currency with its unit, which outranks a keyword in context, which
// outranks a bare keyword.
const (
	SpecKeyword   = 1
	SpecContext   = 2
	SpecPattern   = 3
	SpecExplicit  = 4
	SpecStatement = 5
)

// Value is the typed payload of a candidate: NumberValue, TextValue or
// LaborValue. Pure polarity facts (surfaces, primer) carry no value.
type Value interface {
	fmt.Stringer
	isValue()
}

// NumberValue is a numeric payload.
type NumberValue float64

func (NumberValue) isValue() {}

func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// TextValue is a string payload.
type TextValue string

func (TextValue) isValue() {}

func (v TextValue) String() string { return string(v) }

// LaborValue carries the labor mode and its rate.
type LaborValue struct {
	Mode types.LaborMode
	Rate float64
}

func (LaborValue) isValue() {}

func (v LaborValue) String() string {
	return fmt.Sprintf("%s %s", v.Mode, strconv.FormatFloat(v.Rate, 'f', -1, 64))
}

// Span is a byte range within Segment.Norm.
type Span struct {
	Start int
	End   int
}

// Covers reports whether the span contains the range [start, end).
func (s Span) Covers(start, end int) bool {
	return s.Start <= start && end <= s.End
}

// Candidate is a tentative value for one slot. Candidates are never mutated
// after a matcher returns them.
type Candidate struct {
	Slot        types.SlotKind
	Value       Value
	Segment     scan.Segment
	Span        Span
	Specificity int
	Negated     bool
	Matcher     string
}

// Offset is the position of the candidate in the original input, used to
// order statements: the segment start, then the match position within it.
func (c Candidate) Offset() (int, int) {
	return c.Segment.Start, c.Span.Start
}

// ValueString renders the payload for comparisons and messages.
func (c Candidate) ValueString() string {
	if c.Value == nil {
		if c.Negated {
			return "excluded"
		}
		return "included"
	}
	return c.Value.String()
}

// Phrase returns the matched text from the normalized segment.
func (c Candidate) Phrase() string {
	n := c.Segment.Norm
	if c.Span.Start < 0 || c.Span.End > len(n) || c.Span.Start >= c.Span.End {
		return c.Segment.Text
	}
	return n[c.Span.Start:c.Span.End]
}

// Matcher proposes candidate facts for one category.
type Matcher interface {
	Name() string
	Match(seg scan.Segment) []Candidate
}

// All returns the standard matcher set for cfg.
func All(cfg types.EngineConfig) []Matcher {
	return []Matcher{
		IdentityMatcher{},
		AddressMatcher{},
		MeasurementMatcher{},
		NewPaintMatcher(cfg),
		ScopeMatcher{},
		LaborMatcher{},
		PrimerMatcher{},
	}
}

// Run applies every matcher to every segment.
func Run(matchers []Matcher, segments []scan.Segment) []Candidate {
	var out []Candidate
	for _, seg := range segments {
		for _, m := range matchers {
			out = append(out, m.Match(seg)...)
		}
	}
	return out
}

// num captures a decimal number.
const num = `(\d+(?:\.\d+)?)`

func newCandidate(m Matcher, seg scan.Segment, slot types.SlotKind, v Value, start, end, spec int) Candidate {
	return Candidate{
		Slot:        slot,
		Value:       v,
		Segment:     seg,
		Span:        Span{Start: start, End: end},
		Specificity: spec,
		Matcher:     m.Name(),
	}
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// followedBy reports whether re (anchored with ^) matches the text after end.
func followedBy(norm string, end int, re *regexp.Regexp) bool {
	return re.MatchString(norm[end:])
}

// precededBy reports whether re (anchored with $) matches the text before start.
func precededBy(norm string, start int, re *regexp.Regexp) bool {
	return re.MatchString(norm[:start])
}
