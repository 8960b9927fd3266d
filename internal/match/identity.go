// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

// Identity patterns. Names must be capitalized unless they are pinned
// between "for" and an "at <number>" address.
var (
	// forNameRe matches "It's for Cici", "this is for Dana Smith". Number
	// words are already digits, so "this one is" arrives as "this 1 is".
	forNameRe = regexp.MustCompile(`(?i:\b(?:it'?s|it is|this is|this (?:one|1) is|quote is|job is|estimate is|bid is)\s+for)\s+(?:(?i:mr|mrs|ms|dr)\.?\s+)?([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*){0,2})`)

	// customerRe matches "customer is Dana Smith", "client: Lee".
	customerRe = regexp.MustCompile(`(?i:\b(?:customer|client|homeowner)(?:'s)?(?:\s+name)?(?:\s+is|\s*:))\s+([A-Za-z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*){0,2})`)

	// lowerForAtRe matches "for cici at 9090 ..." where the name is not capitalized.
	lowerForAtRe = regexp.MustCompile(`(?i)\bfor\s+([a-z][a-z'-]+(?:\s+[a-z][a-z'-]+)?)\s+at\s+\d`)
)

// notNames are words that follow "it's for" without being a customer.
var notNames = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "our": true, "this": true,
	"interior": true, "exterior": true, "commercial": true, "cabinet": true, "cabinets": true,
	"walls": true, "ceilings": true, "doors": true, "trim": true, "windows": true,
	"painting": true, "paint": true, "labor": true, "labour": true, "primer": true,
}

var titleCaser = cases.Title(language.English)

// IdentityMatcher extracts the customer name.
type IdentityMatcher struct{}

func (IdentityMatcher) Name() string { return "identity" }

func (m IdentityMatcher) Match(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm

	emit := func(loc []int, name string, spec int) {
		name = strings.TrimSpace(name)
		first := strings.ToLower(strings.Fields(name + " x")[0])
		if name == "" || notNames[first] {
			return
		}
		out = append(out, newCandidate(m, seg, types.SlotCustomerName, TextValue(name), loc[0], loc[1], spec))
	}

	for _, loc := range forNameRe.FindAllStringSubmatchIndex(n, -1) {
		emit(loc, n[loc[2]:loc[3]], SpecExplicit)
	}
	for _, loc := range customerRe.FindAllStringSubmatchIndex(n, -1) {
		emit(loc, titleCaser.String(n[loc[2]:loc[3]]), SpecExplicit)
	}
	if len(out) == 0 {
		for _, loc := range lowerForAtRe.FindAllStringSubmatchIndex(n, -1) {
			emit(loc, titleCaser.String(n[loc[2]:loc[3]]), SpecContext)
		}
	}
	return out
}

const streetSuffix = `street|st|drive|dr|avenue|ave|road|rd|lane|ln|court|ct|boulevard|blvd|way|place|pl|circle|cir|terrace|ter|trail|trl|parkway|pkwy|highway|hwy|loop|pike|row`

var (
	// addressRe requires a house number, up to four street-name tokens and a
	// street suffix, then optionally a unit, city, state and ZIP.
	addressRe = regexp.MustCompile(`\b\d{1,6}(?:\s+[A-Za-z0-9][A-Za-z0-9'-]*){0,4}?\s+(?i:` + streetSuffix + `)\b\.?` +
		`(?:\s+(?i:apt|unit|suite|ste)\.?\s*#?[A-Za-z0-9-]+)?` +
		`(?:,\s*[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*(?:,?\s+[A-Z]{2}(?:\s+\d{5})?)?)?`)

	addressLeadRe = regexp.MustCompile(`(?i)\b(?:at|address(?:\s+is)?:?|located\s+at|on)\s+$`)

	// addressIsRe captures free text after "address is" when no street
	// suffix is present.
	addressIsRe = regexp.MustCompile(`(?i:\baddress(?:\s+is|\s*:))\s+(\d{1,6}\s+[A-Za-z0-9 ,'#.-]{3,80})`)
)

// unitWords disqualify an address candidate: "500 square feet all the way"
// is a measurement, not a street.
var unitWords = map[string]bool{
	"feet": true, "foot": true, "ft": true, "sq": true, "square": true, "linear": true,
	"gallon": true, "gallons": true, "gal": true, "coat": true, "coats": true,
	"hour": true, "hours": true, "doors": true, "windows": true, "percent": true,
	"per": true, "tall": true, "high": true,
}

// AddressMatcher extracts the job address.
type AddressMatcher struct{}

func (AddressMatcher) Name() string { return "address" }

func (m AddressMatcher) Match(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	for _, loc := range addressRe.FindAllStringIndex(n, -1) {
		addr := strings.TrimRight(n[loc[0]:loc[1]], ". ")
		if hasUnitWord(addr) {
			continue
		}
		spec := SpecPattern
		if precededBy(n, loc[0], addressLeadRe) {
			spec = SpecExplicit
		}
		out = append(out, newCandidate(m, seg, types.SlotAddress, TextValue(addr), loc[0], loc[1], spec))
	}
	if len(out) == 0 {
		for _, loc := range addressIsRe.FindAllStringSubmatchIndex(n, -1) {
			addr := strings.TrimRight(n[loc[2]:loc[3]], ".,; ")
			if hasUnitWord(addr) {
				continue
			}
			out = append(out, newCandidate(m, seg, types.SlotAddress, TextValue(addr), loc[0], loc[1], SpecContext))
		}
	}
	return out
}

func hasUnitWord(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if unitWords[strings.Trim(w, ".,")] {
			return true
		}
	}
	return false
}
