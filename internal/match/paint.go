// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

var (
	gallonAfterRe = regexp.MustCompile(`(?i)^\s*(?:per|a|an|/|each|for\s+(?:a|each|one|the))?\s*` + gallonUnit + `\b(?:\s+(?:bucket|can|pail))?`)
	bucketAfterRe = regexp.MustCompile(`(?i)^\s*(?:per|a|an|/|each|for\s+(?:a|each|one|the))?\s*(?:bucket|can|pail)\b`)
	gallonCostsRe = regexp.MustCompile(`(?i)\b(?:gallon|bucket|can)\s+(?:costs?|is|runs?|at|price\s+is|goes\s+for)\s*(?:about\s+)?$`)
	paintCostsRe  = regexp.MustCompile(`(?i)\bpaint\s+(?:costs?|is|runs?|at|price\s+is|goes\s+for)\s*(?:about\s+)?$`)

	spreadStmtRe = regexp.MustCompile(`(?i)\bspread\s*rate\s+(?:is\s+|of\s+|:\s*)?(?:about\s+)?` + num + `\s*` + sqftUnit + `?\s*(?:per|a|an|/)\s*` + gallonUnit + `\b`)
	spreadBareRe = regexp.MustCompile(`(?i)\bspread\s*rate\s+(?:is\s+|of\s+|:\s*)?(?:about\s+)?` + num)
	coverRe      = regexp.MustCompile(`(?i)\b` + num + `\s*` + sqftUnit + `\s*(?:per|a|an|/|to\s+the|to\s+a)\s*` + gallonUnit + `\b`)

	coatsRe      = regexp.MustCompile(`(?i)\b` + num + `\s*coats?\b`)
	ofPrimerRe   = regexp.MustCompile(`(?i)^\s+of\s+(?:the\s+)?prim(?:er|ing)\b`)
	primerNearRe = regexp.MustCompile(`(?i)\bprim(?:er|ing)\s*$`)

	paintContextRe = regexp.MustCompile(`(?i)\b(?:paint|gallon|gal|bucket|can|finish|sheen|coat|coats)\b`)
	notFinishRe    = regexp.MustCompile(`(?i)^\s*(?:rate|fee|labou?r|price|amount|\$)`)

	brandWordRe = regexp.MustCompile(`[A-Za-z]+(?:['-][A-Za-z]+)*|&`)
)

type finish struct {
	name string
	re   *regexp.Regexp
}

type brand struct {
	name string
	key  string
}

// PaintMatcher extracts paint economics: price per gallon, finish, brand,
// spread rate and coats. Finish and brand vocabularies come from config.
type PaintMatcher struct {
	finishes []finish
	brands   []brand
}

// NewPaintMatcher compiles the finish and brand vocabularies of cfg.
// Finishes are tried longest first so "semi-gloss" wins over "gloss".
func NewPaintMatcher(cfg types.EngineConfig) PaintMatcher {
	var pm PaintMatcher
	names := append([]string(nil), cfg.KnownFinishes...)
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == ' ' })
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}
		pm.finishes = append(pm.finishes, finish{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + strings.Join(parts, `[\s-]?`) + `\b`),
		})
	}
	for _, name := range cfg.KnownBrands {
		if key := brandKey(name); key != "" {
			pm.brands = append(pm.brands, brand{name: strings.TrimSpace(name), key: key})
		}
	}
	return pm
}

func (PaintMatcher) Name() string { return "paint" }

func (m PaintMatcher) Match(seg scan.Segment) []Candidate {
	var out []Candidate
	out = append(out, m.prices(seg)...)
	out = append(out, m.spread(seg)...)
	out = append(out, m.coats(seg)...)
	out = append(out, m.finish(seg)...)
	out = append(out, m.brand(seg)...)
	return out
}

// prices ties currency amounts to gallons. The amount primer claims is skipped.
func (m PaintMatcher) prices(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	claimed, hasPrimer := primerCurrency(seg)
	for _, tok := range seg.TokensOf(scan.TokenCurrency) {
		if hasPrimer && tok.Start == claimed.Start {
			continue
		}
		if loc := gallonAfterRe.FindStringIndex(n[tok.End:]); loc != nil {
			out = append(out, newCandidate(m, seg, types.SlotPaintCost, NumberValue(tok.Value), tok.Start, tok.End+loc[1], SpecExplicit))
			continue
		}
		if loc := bucketAfterRe.FindStringIndex(n[tok.End:]); loc != nil {
			out = append(out, newCandidate(m, seg, types.SlotPaintCost, NumberValue(tok.Value), tok.Start, tok.End+loc[1], SpecPattern))
			continue
		}
		if loc := gallonCostsRe.FindStringIndex(n[:tok.Start]); loc != nil {
			out = append(out, newCandidate(m, seg, types.SlotPaintCost, NumberValue(tok.Value), loc[0], tok.End, SpecPattern))
			continue
		}
		if loc := paintCostsRe.FindStringIndex(n[:tok.Start]); loc != nil {
			out = append(out, newCandidate(m, seg, types.SlotPaintCost, NumberValue(tok.Value), loc[0], tok.End, SpecContext))
		}
	}
	return out
}

func (m PaintMatcher) spread(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	for _, loc := range spreadStmtRe.FindAllStringSubmatchIndex(n, -1) {
		out = append(out, newCandidate(m, seg, types.SlotSpreadRate, NumberValue(parseNumber(n[loc[2]:loc[3]])), loc[0], loc[1], SpecStatement))
	}
	for _, loc := range spreadBareRe.FindAllStringSubmatchIndex(n, -1) {
		out = append(out, newCandidate(m, seg, types.SlotSpreadRate, NumberValue(parseNumber(n[loc[2]:loc[3]])), loc[0], loc[1], SpecExplicit))
	}
	for _, loc := range coverRe.FindAllStringSubmatchIndex(n, -1) {
		if precededBy(n, loc[0], primerNearRe) {
			continue
		}
		out = append(out, newCandidate(m, seg, types.SlotSpreadRate, NumberValue(parseNumber(n[loc[2]:loc[3]])), loc[0], loc[1], SpecPattern))
	}
	return out
}

func (m PaintMatcher) coats(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	for _, loc := range coatsRe.FindAllStringSubmatchIndex(n, -1) {
		if followedBy(n, loc[1], ofPrimerRe) {
			continue
		}
		v := parseNumber(n[loc[2]:loc[3]])
		if v < 1 {
			continue
		}
		out = append(out, newCandidate(m, seg, types.SlotCoats, NumberValue(v), loc[0], loc[1], SpecExplicit))
	}
	return out
}

// finish emits at most one candidate per non-overlapping vocabulary hit.
func (m PaintMatcher) finish(seg scan.Segment) []Candidate {
	var out []Candidate
	n := seg.Norm
	spec := SpecContext
	if paintContextRe.MatchString(n) {
		spec = SpecPattern
	}
	var taken []Span
	for _, f := range m.finishes {
		for _, loc := range f.re.FindAllStringIndex(n, -1) {
			if overlaps(taken, loc[0], loc[1]) {
				continue
			}
			if f.name == "flat" && notFlatFinish(seg, loc[0], loc[1]) {
				continue
			}
			taken = append(taken, Span{Start: loc[0], End: loc[1]})
			out = append(out, newCandidate(m, seg, types.SlotPaintFinish, TextValue(f.name), loc[0], loc[1], spec))
		}
	}
	return out
}

// notFlatFinish reports whether "flat" at [start, end) describes a price
// rather than a sheen: "flat rate", "$800 flat", "labor is flat".
func notFlatFinish(seg scan.Segment, start, end int) bool {
	n := seg.Norm
	if followedBy(n, end, notFinishRe) {
		return true
	}
	for _, t := range seg.TokensOf(scan.TokenCurrency) {
		if t.End <= start && strings.TrimSpace(n[t.End:start]) == "" {
			return true
		}
	}
	return laborWordRe.MatchString(n) && !paintContextRe.MatchString(n)
}

// brand looks for the known brands in one to three word windows. Keys are
// compared letters-only and lowercased; short keys must match exactly and
// longer keys tolerate one or two edits.
func (m PaintMatcher) brand(seg scan.Segment) []Candidate {
	if len(m.brands) == 0 {
		return nil
	}
	var out []Candidate
	n := seg.Norm
	words := brandWordRe.FindAllStringIndex(n, -1)
	for i := 0; i < len(words); {
		best, bestDist, bestLen := -1, 0, 0
		for size := 3; size >= 1; size-- {
			if i+size > len(words) {
				continue
			}
			first := n[words[i][0]:words[i][1]]
			last := n[words[i+size-1][0]:words[i+size-1][1]]
			if isJoiner(first) || isJoiner(last) {
				continue
			}
			key := brandKey(n[words[i][0]:words[i+size-1][1]])
			for bi, b := range m.brands {
				d, ok := brandDistance(key, b.key)
				if !ok {
					continue
				}
				if best < 0 || d < bestDist {
					best, bestDist, bestLen = bi, d, size
				}
			}
		}
		if best < 0 {
			i++
			continue
		}
		start, end := words[i][0], words[i+bestLen-1][1]
		spec := SpecPattern
		if bestDist > 0 {
			spec = SpecContext
		}
		out = append(out, newCandidate(m, seg, types.SlotPaintBrand, TextValue(m.brands[best].name), start, end, spec))
		i += bestLen
	}
	return out
}

// brandDistance reports the edit distance between a text key and a brand key
// when it is within tolerance.
func brandDistance(key, target string) (int, bool) {
	if key == "" || key[0] != target[0] {
		return 0, false
	}
	diff := len(key) - len(target)
	if diff < -2 || diff > 2 {
		return 0, false
	}
	allowed := 0
	switch {
	case len(target) >= 12:
		allowed = 2
	case len(target) >= 8:
		allowed = 1
	}
	if allowed == 0 {
		return 0, key == target
	}
	d := levenshtein.Distance(key, target, nil)
	return d, d <= allowed
}

// brandKey lowercases s and keeps letters only, dropping the joiners "and"
// and "&" so "Farrow and Ball" and "Farrow & Ball" compare equal.
func brandKey(s string) string {
	var b strings.Builder
	for _, w := range strings.FieldsFunc(s, func(r rune) bool { return unicode.IsSpace(r) }) {
		if isJoiner(w) {
			continue
		}
		for _, r := range strings.ToLower(w) {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isJoiner(w string) bool {
	return w == "&" || strings.EqualFold(w, "and")
}

func overlaps(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && s.Start < end {
			return true
		}
	}
	return false
}
