// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve merges candidate facts into one QuoteSpecification and
// fills what extraction left empty with configured defaults.
package resolve

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/pdiddy/paintquote/internal/match"
	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

// Resolution is the outcome of conflict resolution: the specification, the
// slots the input filled, and the warnings raised along the way.
type Resolution struct {
	Spec     types.QuoteSpecification
	Set      map[types.SlotKind]bool
	Warnings []types.Warning
}

// Resolve selects one winner per slot. Candidates are put in canonical order
// first, so the outcome does not depend on the order matchers ran in.
//
// Scalar slots take the highest specificity, then the latest statement, then
// the first candidate in canonical order. Surface and primer polarity take
// the latest statement. Every losing candidate with a different value is
// reported, as is every currency amount no candidate accounted for.
func Resolve(segments []scan.Segment, candidates []match.Candidate) Resolution {
	res := Resolution{
		Spec: types.NewQuoteSpecification(),
		Set:  make(map[types.SlotKind]bool),
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, canonical)

	bySlot := make(map[types.SlotKind][]match.Candidate)
	var slots []types.SlotKind
	for _, c := range sorted {
		if !valid(c) {
			res.warn(types.NewWarning(types.UnassignedWarning, c.Slot,
				"ignored out-of-range value %s from %q", c.ValueString(), c.Phrase()))
			continue
		}
		if _, ok := bySlot[c.Slot]; !ok {
			slots = append(slots, c.Slot)
		}
		bySlot[c.Slot] = append(bySlot[c.Slot], c)
	}
	slices.Sort(slots)

	for _, slot := range slots {
		cands := bySlot[slot]
		var winner match.Candidate
		if isPolarity(slot) {
			winner = res.pickLatest(slot, cands)
		} else {
			winner = res.pickBest(slot, cands)
		}
		res.apply(winner)
	}

	res.sizeDrivers()
	res.primerCost()
	res.unassigned(segments, sorted)
	return res
}

func (r *Resolution) warn(w types.Warning) {
	r.Warnings = append(r.Warnings, w)
}

// canonical orders candidates by position, slot, specificity and value.
func canonical(a, b match.Candidate) int {
	return cmp.Or(
		cmp.Compare(a.Segment.Start, b.Segment.Start),
		cmp.Compare(a.Span.Start, b.Span.Start),
		cmp.Compare(a.Slot, b.Slot),
		cmp.Compare(a.Specificity, b.Specificity),
		cmp.Compare(a.ValueString(), b.ValueString()),
		cmp.Compare(a.Span.End, b.Span.End),
		cmp.Compare(a.Matcher, b.Matcher),
	)
}

// later reports whether a was stated after b.
func later(a, b match.Candidate) bool {
	as, ap := a.Offset()
	bs, bp := b.Offset()
	if as != bs {
		return as > bs
	}
	return ap > bp
}

func isPolarity(slot types.SlotKind) bool {
	if slot == types.SlotPrimer {
		return true
	}
	_, ok := types.SurfaceOf(slot)
	return ok
}

func (r *Resolution) pickBest(slot types.SlotKind, cands []match.Candidate) match.Candidate {
	winner := cands[0]
	for _, c := range cands[1:] {
		switch {
		case c.Specificity > winner.Specificity:
			winner = c
		case c.Specificity == winner.Specificity && later(c, winner):
			winner = c
		}
	}
	seen := map[string]bool{winner.ValueString(): true}
	for _, c := range cands {
		v := c.ValueString()
		if seen[v] {
			continue
		}
		seen[v] = true
		r.conflict(slot, winner, c)
	}
	return winner
}

func (r *Resolution) pickLatest(slot types.SlotKind, cands []match.Candidate) match.Candidate {
	winner := cands[0]
	for _, c := range cands[1:] {
		if later(c, winner) || (!later(winner, c) && c.Specificity > winner.Specificity) {
			winner = c
		}
	}
	for _, c := range cands {
		if c.Negated != winner.Negated {
			r.conflict(slot, winner, c)
			break
		}
	}
	return winner
}

func (r *Resolution) conflict(slot types.SlotKind, winner, loser match.Candidate) {
	zap.L().Debug("resolve: conflicting candidates",
		zap.String("slot", string(slot)),
		zap.String("winner", winner.ValueString()),
		zap.String("winner_matcher", winner.Matcher),
		zap.Int("winner_specificity", winner.Specificity),
		zap.String("loser", loser.ValueString()),
		zap.String("loser_matcher", loser.Matcher),
		zap.Int("loser_specificity", loser.Specificity),
	)
	r.warn(types.NewWarning(types.ConflictWarning, slot,
		"using %s from %q over %s from %q", winner.ValueString(), winner.Phrase(), loser.ValueString(), loser.Phrase()))
}

// valid drops numeric candidates that would break specification invariants.
func valid(c match.Candidate) bool {
	v, ok := c.Value.(match.NumberValue)
	if !ok {
		return true
	}
	f := float64(v)
	switch c.Slot {
	case types.SlotCeilingHeight, types.SlotSpreadRate, types.SlotLinearFeet, types.SlotSquareFootage:
		return f > 0
	case types.SlotCoats:
		return f >= 1
	}
	return f >= 0
}

func (r *Resolution) apply(c match.Candidate) {
	s := &r.Spec
	r.Set[c.Slot] = true

	if surface, ok := types.SurfaceOf(c.Slot); ok {
		s.Surfaces[surface] = types.SurfaceState{Included: !c.Negated, Explicit: true}
		return
	}

	num := func() float64 {
		if v, ok := c.Value.(match.NumberValue); ok {
			return float64(v)
		}
		return 0
	}
	ptr := func() *float64 {
		v := num()
		return &v
	}
	count := func() *int {
		v := int(math.Round(num()))
		return &v
	}

	switch c.Slot {
	case types.SlotCustomerName:
		s.CustomerName = c.ValueString()
	case types.SlotAddress:
		s.Address = c.ValueString()
	case types.SlotProjectType:
		s.ProjectType = types.ProjectType(c.ValueString())
	case types.SlotLinearFeet:
		s.LinearFeet = ptr()
	case types.SlotSquareFootage:
		s.SquareFootage = ptr()
	case types.SlotCeilingHeight:
		s.CeilingHeight = num()
	case types.SlotCeilingArea:
		s.CeilingArea = ptr()
	case types.SlotTrimLinearFeet:
		s.TrimLinearFeet = ptr()
	case types.SlotDoorCount:
		s.DoorCount = count()
	case types.SlotWindowCount:
		s.WindowCount = count()
	case types.SlotPaintCost:
		s.Paint.CostPerGallon = num()
	case types.SlotPaintFinish:
		s.Paint.Finish = c.ValueString()
	case types.SlotPaintBrand:
		s.Paint.Brand = c.ValueString()
	case types.SlotSpreadRate:
		s.Paint.SpreadRateSqftPerGallon = num()
	case types.SlotCoats:
		s.Paint.Coats = int(math.Round(num()))
	case types.SlotPrimer:
		s.Primer.Included = !c.Negated
	case types.SlotPrimerCost:
		s.Primer.CostPerGallon = ptr()
	case types.SlotLabor:
		if lv, ok := c.Value.(match.LaborValue); ok {
			s.Labor = types.LaborSpec{Mode: lv.Mode, Rate: lv.Rate}
		}
	case types.SlotMarkup:
		s.MarkupPercent = num()
	}
}

// sizeDrivers keeps squareFootage authoritative when both drivers are stated.
func (r *Resolution) sizeDrivers() {
	s := r.Spec
	if s.SquareFootage == nil || s.LinearFeet == nil {
		return
	}
	r.warn(types.NewWarning(types.ConflictWarning, types.SlotLinearFeet,
		"both linearFeet (%s) and squareFootage (%s) given; squareFootage is used for area",
		formatNumber(*s.LinearFeet), formatNumber(*s.SquareFootage)))
}

func (r *Resolution) primerCost() {
	s := r.Spec
	if !r.Set[types.SlotPrimer] || s.Primer.Included || s.Primer.CostPerGallon == nil {
		return
	}
	r.warn(types.NewWarning(types.ConflictWarning, types.SlotPrimerCost,
		"primer cost $%.2f per gallon ignored because primer is excluded", *s.Primer.CostPerGallon))
}

// unassigned reports currency amounts that no candidate span covers.
func (r *Resolution) unassigned(segments []scan.Segment, cands []match.Candidate) {
	bySeg := make(map[int][]match.Candidate)
	for _, c := range cands {
		bySeg[c.Segment.Index] = append(bySeg[c.Segment.Index], c)
	}
	for _, seg := range segments {
		for _, tok := range seg.TokensOf(scan.TokenCurrency) {
			covered := slices.ContainsFunc(bySeg[seg.Index], func(c match.Candidate) bool {
				return c.Span.Covers(tok.Start, tok.End)
			})
			if !covered {
				r.warn(types.NewWarning(types.UnassignedWarning, "",
					"amount %s in %q was not assigned to any field", tok.Text, seg.Text))
			}
		}
	}
}

func formatNumber(v float64) string {
	return fmt.Sprint(v)
}
