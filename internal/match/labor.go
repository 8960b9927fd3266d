// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"regexp"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

var (
	laborWordRe  = regexp.MustCompile(`(?i)\blabou?r\b`)
	includedRe   = regexp.MustCompile(`(?i)\binclud(?:e|es|ed|ing)\b`)
	perSqftRe    = regexp.MustCompile(`(?i)(?:\bper\s+|\ba\s+|\ban\s+|/\s*)` + sqftUnit + `\b|\bper\s+square\b`)
	perSqftAfter = regexp.MustCompile(`(?i)^\s*(?:per|a|an|/)\s*` + sqftUnit + `\b`)
	hourlyAfter  = regexp.MustCompile(`(?i)^\s*(?:per|an|a|/)\s*(?:hour|hr)\b`)
	hoursRe      = regexp.MustCompile(`(?i)\b` + num + `\s*(?:hours|hrs|hour|hr)\b`)
	flatRe       = regexp.MustCompile(`(?i)\b(?:flat|lump\s*sum|fixed|total)\b|\bfor\s+(?:the\s+)?(?:all\s+(?:the\s+)?)?labou?r\b`)

	markupRe      = regexp.MustCompile(`(?i)\b(?:markup|mark-up|mark\s+up|margin|overhead)\b(?:\s+(?:is|of|at|:|will\s+be))?\s*(?:about\s+)?` + num + `\s*(?:%|percent)`)
	markupAfterRe = regexp.MustCompile(`(?i)\b` + num + `\s*(?:%|percent)\s+(?:markup|mark-up|mark\s+up|margin|overhead)\b`)
)

// LaborMatcher extracts how labor is charged, and the markup percentage.
type LaborMatcher struct{}

func (LaborMatcher) Name() string { return "labor" }

func (m LaborMatcher) Match(seg scan.Segment) []Candidate {
	out := m.labor(seg)
	n := seg.Norm
	for _, re := range []*regexp.Regexp{markupRe, markupAfterRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(n, -1) {
			out = append(out, newCandidate(m, seg, types.SlotMarkup, NumberValue(parseNumber(n[loc[2]:loc[3]])), loc[0], loc[1], SpecExplicit))
		}
	}
	return out
}

// labor applies only to segments that name labor. The amount is the first
// currency after the labor word, else the last one before it.
func (m LaborMatcher) labor(seg scan.Segment) []Candidate {
	n := seg.Norm
	word := laborWordRe.FindStringIndex(n)
	if word == nil {
		return nil
	}
	cur, ok := laborCurrency(seg, word[0])
	if !ok {
		return nil
	}

	start, end := min(word[0], cur.Start), max(word[1], cur.End)
	emit := func(mode types.LaborMode, rate float64, spec int) []Candidate {
		return []Candidate{newCandidate(m, seg, types.SlotLabor, LaborValue{Mode: mode, Rate: rate}, start, end, spec)}
	}

	perSqft := followedBy(n, cur.End, perSqftAfter) || perSqftRe.MatchString(n)
	switch {
	case perSqft && includedRe.MatchString(n):
		return emit(types.LaborIncludedPerSqft, cur.Value, SpecStatement)
	case perSqft:
		return emit(types.LaborSeparateRate, cur.Value, SpecExplicit)
	case followedBy(n, cur.End, hourlyAfter):
		var loc []int
		for _, l := range hoursRe.FindAllStringSubmatchIndex(n, -1) {
			if l[1] <= cur.Start || l[0] >= cur.End {
				loc = l
				break
			}
		}
		if loc == nil {
			// An hourly rate without hours cannot be priced; the amount is
			// reported as unassigned.
			return nil
		}
		hours := parseNumber(n[loc[2]:loc[3]])
		start, end = min(start, loc[0]), max(end, loc[1])
		return emit(types.LaborSeparateFlat, cur.Value*hours, SpecExplicit)
	case flatRe.MatchString(n):
		return emit(types.LaborSeparateFlat, cur.Value, SpecExplicit)
	default:
		return emit(types.LaborSeparateFlat, cur.Value, SpecPattern)
	}
}

func laborCurrency(seg scan.Segment, at int) (scan.Token, bool) {
	var before scan.Token
	found := false
	for _, t := range seg.TokensOf(scan.TokenCurrency) {
		if t.Start >= at {
			return t, true
		}
		before, found = t, true
	}
	return before, found
}
