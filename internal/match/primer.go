// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"regexp"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

var (
	primerWordRe = regexp.MustCompile(`(?i)\bprim(?:er|ing|e)\b`)

	noPrimerRe = regexp.MustCompile(`(?i)\b(?:no|without|skip(?:ping)?(?:\s+the)?|not\s+using|don't\s+need|doesn't\s+need|no\s+need\s+for|no\s+need\s+to)\s+(?:any\s+|the\s+|a\s+)?prim(?:er|ing|e)\b` +
		`|\bprim(?:er|ing)\s+(?:is\s+not|isn't|not|won't\s+be)\s*(?:needed|required|necessary|included)?\b`)

	withPrimerRe = regexp.MustCompile(`(?i)\b(?:with|plus|add|adding|include|including|need|needs|use|using)\s+(?:a\s+|the\s+|some\s+)?(?:coat\s+of\s+)?prim(?:er|ing)\b` +
		`|\bprime\s+(?:the|all|everything)\b|\bprimer\s+coat\b|\bcoat\s+of\s+primer\b`)

	paintWordRe = regexp.MustCompile(`(?i)\bpaint\b`)
)

// maxPrimerGap bounds how far a price may sit from the word primer.
const maxPrimerGap = 40

// PrimerMatcher decides whether primer is in scope and what it costs.
type PrimerMatcher struct{}

func (PrimerMatcher) Name() string { return "primer" }

func (m PrimerMatcher) Match(seg scan.Segment) []Candidate {
	n := seg.Norm
	if !primerWordRe.MatchString(n) {
		return nil
	}

	if loc := noPrimerRe.FindStringIndex(n); loc != nil {
		c := newCandidate(m, seg, types.SlotPrimer, nil, loc[0], loc[1], SpecExplicit)
		c.Negated = true
		return []Candidate{c}
	}

	if tok, ok := primerCurrency(seg); ok {
		word := primerWordRe.FindStringIndex(n)
		start, end := min(word[0], tok.Start), max(word[1], tok.End)
		if loc := gallonAfterRe.FindStringIndex(n[tok.End:]); loc != nil {
			end = max(end, tok.End+loc[1])
		}
		return []Candidate{
			newCandidate(m, seg, types.SlotPrimer, nil, start, end, SpecExplicit),
			newCandidate(m, seg, types.SlotPrimerCost, NumberValue(tok.Value), start, end, SpecExplicit),
		}
	}

	if loc := withPrimerRe.FindStringIndex(n); loc != nil {
		return []Candidate{newCandidate(m, seg, types.SlotPrimer, nil, loc[0], loc[1], SpecContext)}
	}
	return nil
}

// primerCurrency returns the currency amount closest to the first primer
// word in the segment. Labor amounts are never primer amounts, and a segment
// that rules primer out claims no amount.
func primerCurrency(seg scan.Segment) (scan.Token, bool) {
	n := seg.Norm
	word := primerWordRe.FindStringIndex(n)
	if word == nil || laborWordRe.MatchString(n) || noPrimerRe.MatchString(n) {
		return scan.Token{}, false
	}
	var best scan.Token
	bestDist := -1
	for _, t := range seg.TokensOf(scan.TokenCurrency) {
		d := t.Start - word[1]
		between := n[min(word[1], t.Start):max(word[1], t.Start)]
		if t.End <= word[0] {
			d = word[0] - t.End
			between = n[t.End:word[0]]
		}
		if d > maxPrimerGap || paintWordRe.MatchString(between) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist >= 0
}
