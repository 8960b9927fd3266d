// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"math"
	"regexp"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

const (
	feetUnit   = `(?:feet|foot|ft\.?|')`
	sqftUnit   = `(?:square\s*(?:feet|foot|ft)|sq\.?\s*(?:ft|feet|foot)\.?|sqft|sf)`
	trimNouns  = `(?:trim|baseboards?|mouldings?|moldings?|casings?)`
	gallonUnit = `(?:gallons?|gal)`
)

var (
	linearRe    = regexp.MustCompile(`(?i)\b` + num + `\s*(?:linear|lin\.?)\s*` + feetUnit)
	linearLFRe  = regexp.MustCompile(`(?i)\b` + num + `\s*(?:lf\b|l\.f\.)`)
	ofTrimRe    = regexp.MustCompile(`(?i)^\s+of\s+(?:the\s+)?` + trimNouns + `\b`)
	trimOfRe    = regexp.MustCompile(`(?i)\b` + trimNouns + `\s+(?:is|are|runs?|totals?)\s+(?:about\s+)?$`)
	squareRe    = regexp.MustCompile(`(?i)\b` + num + `\s*` + sqftUnit + `\b`)
	footageRe   = regexp.MustCompile(`(?i)\bsquare\s+footage\s+(?:is\s+|of\s+|:\s*)?(?:about\s+|around\s+)?` + num)
	perGallonRe = regexp.MustCompile(`(?i)^\s*(?:per|a|an|/|each|to\s+the|to\s+a)\s*` + gallonUnit + `\b`)
	coverageRe  = regexp.MustCompile(`(?i)(?:spread\s*rate|covers?|coverage)(?:\s+(?:is|of|about))?\s*$`)
	ceilingPre  = regexp.MustCompile(`(?i)\bceilings?(?:\s+area)?\s+(?:are|is|total|totals|of|measure|measures)?\s*(?:about\s+)?$`)
	ofCeiling   = regexp.MustCompile(`(?i)^\s*(?:of\s+(?:the\s+)?)?ceilings?\b`)

	tallRe        = regexp.MustCompile(`(?i)\b` + num + `\s*` + feetUnit + `\s*(?:tall|high)\b`)
	ceilingsAreRe = regexp.MustCompile(`(?i)\bceilings?\s+(?:are|is)\s+(?:about\s+)?` + num + `\s*` + feetUnit)
	footCeilRe    = regexp.MustCompile(`(?i)\b` + num + `[\s-]*(?:foot|ft|feet)\s+ceilings?\b`)
	heightRe      = regexp.MustCompile(`(?i)\b(?:ceiling|wall)\s+height\s+(?:is\s+|of\s+|:\s*)?` + num)
	wallsAreRe    = regexp.MustCompile(`(?i)\bwalls?\s+(?:are|is)\s+(?:about\s+)?` + num + `\s*` + feetUnit)
	longWideRe    = regexp.MustCompile(`(?i)^\s*(?:long|wide|of)\b`)

	doorCountRe   = regexp.MustCompile(`(?i)\b(\d+)\s+(?:interior\s+|exterior\s+|entry\s+|closet\s+)?doors?\b`)
	windowCountRe = regexp.MustCompile(`(?i)\b(\d+)\s+(?:small\s+|large\s+)?windows?\b`)
)

// MeasurementMatcher extracts size drivers, ceiling height and unit counts.
type MeasurementMatcher struct{}

func (MeasurementMatcher) Name() string { return "measurement" }

func (m MeasurementMatcher) Match(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	add := func(slot types.SlotKind, loc []int, spec int) {
		v := parseNumber(n[loc[2]:loc[3]])
		out = append(out, newCandidate(m, seg, slot, NumberValue(v), loc[0], loc[1], spec))
	}

	linear := func(re *regexp.Regexp, spec int) {
		for _, loc := range re.FindAllStringSubmatchIndex(n, -1) {
			slot := types.SlotLinearFeet
			if followedBy(n, loc[1], ofTrimRe) || precededBy(n, loc[0], trimOfRe) {
				slot = types.SlotTrimLinearFeet
			}
			add(slot, loc, spec)
		}
	}
	linear(linearRe, SpecExplicit)
	linear(linearLFRe, SpecPattern)

	for _, loc := range squareRe.FindAllStringSubmatchIndex(n, -1) {
		if followedBy(n, loc[1], perGallonRe) || precededBy(n, loc[0], coverageRe) {
			continue
		}
		slot := types.SlotSquareFootage
		if precededBy(n, loc[0], ceilingPre) || followedBy(n, loc[1], ofCeiling) {
			slot = types.SlotCeilingArea
		}
		add(slot, loc, SpecExplicit)
	}
	for _, loc := range footageRe.FindAllStringSubmatchIndex(n, -1) {
		add(types.SlotSquareFootage, loc, SpecExplicit)
	}

	for _, loc := range heightRe.FindAllStringSubmatchIndex(n, -1) {
		add(types.SlotCeilingHeight, loc, SpecStatement)
	}
	for _, loc := range tallRe.FindAllStringSubmatchIndex(n, -1) {
		add(types.SlotCeilingHeight, loc, SpecExplicit)
	}
	for _, loc := range ceilingsAreRe.FindAllStringSubmatchIndex(n, -1) {
		add(types.SlotCeilingHeight, loc, SpecExplicit)
	}
	for _, loc := range footCeilRe.FindAllStringSubmatchIndex(n, -1) {
		add(types.SlotCeilingHeight, loc, SpecExplicit)
	}
	for _, loc := range wallsAreRe.FindAllStringSubmatchIndex(n, -1) {
		if followedBy(n, loc[1], longWideRe) {
			continue
		}
		add(types.SlotCeilingHeight, loc, SpecPattern)
	}

	count := func(re *regexp.Regexp, slot types.SlotKind) {
		for _, loc := range re.FindAllStringSubmatchIndex(n, -1) {
			v := math.Round(parseNumber(n[loc[2]:loc[3]]))
			out = append(out, newCandidate(m, seg, slot, NumberValue(v), loc[0], loc[1], SpecExplicit))
		}
	}
	count(doorCountRe, types.SlotDoorCount)
	count(windowCountRe, types.SlotWindowCount)

	return out
}
