// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

var (
	// listGapRe is the text allowed between two surfaces of one list, e.g.
	// "doors, or trim or windows".
	listGapRe = regexp.MustCompile(`(?i)^(?:\s|,|\band\b|\bor\b|\bnor\b|\bthe\b|&|/)*$`)

	// fillerRe is the text allowed between a negation and the verb it negates:
	// "not painting", "not going to paint", "don't need to paint".
	fillerRe = regexp.MustCompile(`(?i)^(?:\s|\bbe\b|\bbeing\b|\bgoing\b|\bto\b|\bgonna\b|\bhave\b|\bneed\b|\bwant\b|\bplanning\b|\bon\b)*$`)

	postNegRe = regexp.MustCompile(`(?i)^\s+(?:(?:are|is|will\s+be|will|should\s+be)\s+(?:not|never)\b|(?:aren't|isn't|won't|wont|don't)\b|(?:are\s+|is\s+)?(?:excluded|out\s+of\s+scope|not\s+included)\b|stay\s+as\s+is\b)`)
	postAffRe = regexp.MustCompile(`(?i)^\s+(?:(?:are|is|will\s+be)\s+(?:included|being\s+painted|to\s+be\s+painted|painted|in\s+scope)\b|(?:too|as\s+well|also)\b)`)

	projectTypeRe = regexp.MustCompile(`(?i)\b(interior|exterior|commercial|cabinets?|inside|outside)\b`)
	projectNounRe = regexp.MustCompile(`(?i)^\s+(?:painting|paint|job|project|work|repaint|refinishing|refinish|remodel)\b`)
)

// ScopeMatcher decides which surfaces are in or out of scope and the project type.
type ScopeMatcher struct{}

func (ScopeMatcher) Name() string { return "scope" }

func (m ScopeMatcher) Match(seg scan.Segment) []Candidate {
	out := m.surfaces(seg)
	return append(out, m.projectType(seg)...)
}

type polarity int

const (
	undecided polarity = iota
	affirmed
	negated
)

// surfaces resolves each surface mention against the nearest cue before it.
// The look-back window stops at the previous surface or a contrast word, so
// "paint the walls but not the ceilings" scopes each cue to its own noun.
func (m ScopeMatcher) surfaces(seg scan.Segment) []Candidate {
	n := seg.Norm
	var out []Candidate
	var pending []scan.Token
	prev := undecided
	boundary := 0
	prevSurfaceEnd := -1

	emit := func(t scan.Token, p polarity, spec int) {
		c := newCandidate(m, seg, types.SurfaceSlot(t.Surface), nil, t.Start, t.End, spec)
		c.Negated = p == negated
		out = append(out, c)
	}
	specFor := func(p polarity) int {
		if p == negated {
			return SpecExplicit
		}
		return SpecPattern
	}

	for _, t := range seg.Tokens {
		switch t.Kind {
		case scan.TokenContrast:
			boundary = t.End
			prev = undecided
			pending = nil
			continue
		case scan.TokenSurface:
		default:
			continue
		}

		p := cueBefore(seg, boundary, t.Start)
		if p == undecided && prevSurfaceEnd >= boundary && prevSurfaceEnd >= 0 &&
			listGapRe.MatchString(n[prevSurfaceEnd:t.Start]) {
			p = prev
		}
		if p == undecided {
			switch {
			case followedBy(n, t.End, postNegRe):
				p = negated
			case followedBy(n, t.End, postAffRe):
				p = affirmed
			}
			if p != undecided {
				for _, q := range pending {
					emit(q, p, specFor(p))
				}
				pending = nil
			}
		}

		if p == undecided {
			if prevSurfaceEnd >= 0 && listGapRe.MatchString(n[prevSurfaceEnd:t.Start]) {
				pending = append(pending, t)
			} else {
				pending = []scan.Token{t}
			}
		} else {
			emit(t, p, specFor(p))
			pending = nil
		}
		prev = p
		prevSurfaceEnd = t.End
		boundary = t.End
	}
	return out
}

// cueBefore finds the nearest negation or affirmation cue in [from, to).
// An affirming verb directly negated ("not painting", "won't be painting")
// counts as a negation.
func cueBefore(seg scan.Segment, from, to int) polarity {
	var last *scan.Token
	var lastNeg *scan.Token
	for i := range seg.Tokens {
		t := &seg.Tokens[i]
		if t.Start < from || t.End > to {
			continue
		}
		switch t.Kind {
		case scan.TokenNegation:
			last = t
			lastNeg = t
		case scan.TokenAffirm:
			last = t
		}
	}
	if last == nil {
		return undecided
	}
	if last.Kind == scan.TokenNegation {
		return negated
	}
	if lastNeg != nil && fillerRe.MatchString(seg.Norm[lastNeg.End:last.Start]) {
		return negated
	}
	return affirmed
}

var projectTypes = map[string]types.ProjectType{
	"interior":   types.ProjectInterior,
	"inside":     types.ProjectInterior,
	"exterior":   types.ProjectExterior,
	"outside":    types.ProjectExterior,
	"commercial": types.ProjectCommercial,
	"cabinet":    types.ProjectCabinet,
	"cabinets":   types.ProjectCabinet,
}

func (m ScopeMatcher) projectType(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	for _, loc := range projectTypeRe.FindAllStringSubmatchIndex(n, -1) {
		word := strings.ToLower(n[loc[2]:loc[3]])
		pt := projectTypes[word]
		spec := SpecPattern
		switch {
		case word == "inside" || word == "outside":
			spec = SpecKeyword
		case followedBy(n, loc[1], projectNounRe):
			spec = SpecExplicit
		}
		out = append(out, newCandidate(m, seg, types.SlotProjectType, TextValue(pt), loc[0], loc[1], spec))
	}
	return out
}
