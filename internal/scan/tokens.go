// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/paintquote/pkg/types"
)

// TokenKind classifies a primitive token found in a segment.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenCurrency
	TokenSurface
	TokenNegation
	TokenAffirm
	TokenContrast
)

var tokenKindNames = [...]string{"number", "currency", "surface", "negation", "affirm", "contrast"}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// Token is a primitive found in Segment.Norm. Start and End are byte offsets
// into Norm.
type Token struct {
	Kind    TokenKind
	Start   int
	End     int
	Text    string
	Value   float64
	Surface types.SurfaceKind
}

// Token patterns, applied to normalized text.
var (
	numberRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	currencyRe = regexp.MustCompile(`(?i)\$\s?(\d+(?:\.\d+)?)|\b(\d+(?:\.\d+)?)\s?(?:dollars|bucks)\b`)
	surfaceRe  = regexp.MustCompile(`(?i)\b(walls?|ceilings?|doors?|trims?|baseboards?|mouldings?|moldings?|casings?|windows?)\b`)
	negationRe = regexp.MustCompile(`(?i)\b(?:not|no|never|without|excluding|exclude[sd]?|except|skip(?:ping|ped)?|minus|none|[a-z]+n't)\b`)
	affirmRe   = regexp.MustCompile(`(?i)\b(?:paint(?:s|ing|ed)?|includ(?:e|es|ed|ing)|plus|also|refinish(?:ing)?|cover(?:ing)?|doing)\b`)
	contrastRe = regexp.MustCompile(`(?i)\b(?:but|however|though|although|only|just|instead)\b`)
)

var surfaceSynonyms = map[string]types.SurfaceKind{
	"wall":      types.SurfaceWalls,
	"ceiling":   types.SurfaceCeilings,
	"door":      types.SurfaceDoors,
	"trim":      types.SurfaceTrim,
	"baseboard": types.SurfaceTrim,
	"moulding":  types.SurfaceTrim,
	"molding":   types.SurfaceTrim,
	"casing":    types.SurfaceTrim,
	"window":    types.SurfaceWindows,
}

// SurfaceFor maps a surface noun (singular or plural, any case) to its kind.
func SurfaceFor(word string) (types.SurfaceKind, bool) {
	w := strings.ToLower(word)
	if k, ok := surfaceSynonyms[w]; ok {
		return k, true
	}
	k, ok := surfaceSynonyms[strings.TrimSuffix(w, "s")]
	return k, ok
}

// tokenize extracts the primitive tokens of a normalized segment, sorted by
// position then kind.
func tokenize(norm string) []Token {
	var tokens []Token

	for _, m := range currencyRe.FindAllStringSubmatchIndex(norm, -1) {
		g := 2
		if m[2] < 0 {
			g = 4
		}
		v, _ := strconv.ParseFloat(norm[m[g]:m[g+1]], 64)
		tokens = append(tokens, Token{Kind: TokenCurrency, Start: m[0], End: m[1], Text: norm[m[0]:m[1]], Value: v})
	}
	for _, m := range numberRe.FindAllStringIndex(norm, -1) {
		v, _ := strconv.ParseFloat(norm[m[0]:m[1]], 64)
		tokens = append(tokens, Token{Kind: TokenNumber, Start: m[0], End: m[1], Text: norm[m[0]:m[1]], Value: v})
	}
	for _, m := range surfaceRe.FindAllStringIndex(norm, -1) {
		text := norm[m[0]:m[1]]
		kind, _ := SurfaceFor(text)
		tokens = append(tokens, Token{Kind: TokenSurface, Start: m[0], End: m[1], Text: text, Surface: kind})
	}
	add := func(kind TokenKind, re *regexp.Regexp) {
		for _, m := range re.FindAllStringIndex(norm, -1) {
			tokens = append(tokens, Token{Kind: kind, Start: m[0], End: m[1], Text: norm[m[0]:m[1]]})
		}
	}
	add(TokenNegation, negationRe)
	add(TokenAffirm, affirmRe)
	add(TokenContrast, contrastRe)

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Start != tokens[j].Start {
			return tokens[i].Start < tokens[j].Start
		}
		return tokens[i].Kind < tokens[j].Kind
	})
	return tokens
}
