// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan splits a free-form job description into segments (sentences
// and independent clauses) and extracts primitive tokens from each one.
// Segment boundaries are fixed here; every later stage refers to them.
package scan

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Segment is a contiguous span of the input. Start and End are byte offsets
// into the original text and Text is the original substring. Norm is the
// form matchers work on; Tokens are positioned in Norm.
type Segment struct {
	Index  int
	Start  int
	End    int
	Text   string
	Norm   string
	Tokens []Token
}

// TokensOf returns the segment tokens of the given kind, in position order.
func (s Segment) TokensOf(kind TokenKind) []Token {
	var out []Token
	for _, t := range s.Tokens {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Scan returns a lazy sequence over the segments of text. The sequence is
// finite and can be ranged over any number of times. Whitespace-only input
// yields nothing.
func Scan(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		index := 0
		for _, cl := range clauses(text) {
			for _, part := range splitOnAnd(text, cl) {
				seg, ok := newSegment(text, part, index)
				if !ok {
					continue
				}
				if !yield(seg) {
					return
				}
				index++
			}
		}
	}
}

// Segments collects Scan(text).
func Segments(text string) []Segment {
	return slices.Collect(Scan(text))
}

type span struct{ start, end int }

// clauses splits on sentence terminals (. ! ? followed by whitespace or end
// of input), semicolons and newlines. A period between digits is a decimal
// point, not a boundary, and neither is the period of an abbreviation.
func clauses(text string) []span {
	var out []span
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		boundary := false
		switch c {
		case ';', '\n', '\r':
			boundary = true
		case '.':
			boundary = (i+1 == len(text) || isSpaceByte(text[i+1])) && !abbreviationAt(text, i)
		case '!', '?':
			boundary = i+1 == len(text) || isSpaceByte(text[i+1])
		}
		if boundary {
			out = append(out, span{start, i})
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, span{start, len(text)})
	}
	return out
}

var (
	// honorifics never end a sentence.
	honorifics = map[string]bool{"mr": true, "mrs": true, "ms": true}

	// abbreviations end a sentence only when a capital or digit follows.
	abbreviations = map[string]bool{
		"st": true, "ave": true, "rd": true, "blvd": true, "apt": true,
		"ft": true, "sq": true, "gal": true, "hr": true, "hrs": true, "approx": true,
	}
)

// abbreviationAt reports whether the period at text[i] closes an
// abbreviation inside a sentence. "Dr." is a title unless it follows a
// capitalized street name, where it reads as Drive.
func abbreviationAt(text string, i int) bool {
	j := i
	for j > 0 && isLetterByte(text[j-1]) {
		j--
	}
	word := strings.ToLower(text[j:i])
	switch {
	case word == "":
		return false
	case honorifics[word]:
		return true
	case word == "dr" && !prevWordCapitalized(text, j):
		return true
	case word == "dr" || abbreviations[word]:
		return nextWordLower(text, i+1)
	}
	return false
}

func prevWordCapitalized(text string, end int) bool {
	k := end
	for k > 0 && isSpaceByte(text[k-1]) {
		k--
	}
	if k == end {
		return false
	}
	start := k
	for start > 0 && isLetterByte(text[start-1]) {
		start--
	}
	return start < k && text[start] >= 'A' && text[start] <= 'Z'
}

func nextWordLower(text string, from int) bool {
	for from < len(text) && isSpaceByte(text[from]) {
		from++
	}
	return from < len(text) && text[from] >= 'a' && text[from] <= 'z'
}

var andRe = regexp.MustCompile(`(?i),?\s+and\s+`)

// splitOnAnd splits a clause on "and" when both sides carry a quantity, so
// "500 linear feet and $50 a gallon" becomes two facts while lists like
// "doors and trim" stay in one segment and keep their negation scope.
func splitOnAnd(text string, s span) []span {
	clause := text[s.start:s.end]
	locs := andRe.FindAllStringIndex(clause, -1)
	if len(locs) == 0 {
		return []span{s}
	}

	var out []span
	from := 0
	for i, loc := range locs {
		nextEnd := len(clause)
		if i+1 < len(locs) {
			nextEnd = locs[i+1][0]
		}
		left := clause[from:loc[0]]
		right := clause[loc[1]:nextEnd]
		if hasQuantity(left) && hasQuantity(right) {
			out = append(out, span{s.start + from, s.start + loc[0]})
			from = loc[1]
		}
	}
	out = append(out, span{s.start + from, s.end})
	return out
}

func hasQuantity(s string) bool {
	return strings.ContainsFunc(rewriteNumberWords(s), func(r rune) bool {
		return unicode.IsDigit(r) || r == '$'
	})
}

// newSegment trims whitespace and trailing punctuation from the span and
// builds the normalized form. It reports false for empty spans.
func newSegment(text string, s span, index int) (Segment, bool) {
	for s.start < s.end && isSpaceByte(text[s.start]) {
		s.start++
	}
	for s.end > s.start && (isSpaceByte(text[s.end-1]) || strings.IndexByte(",.!?:", text[s.end-1]) >= 0) {
		s.end--
	}
	if s.start >= s.end {
		return Segment{}, false
	}
	raw := text[s.start:s.end]
	n := Normalize(raw)
	if n == "" {
		return Segment{}, false
	}
	return Segment{
		Index:  index,
		Start:  s.start,
		End:    s.end,
		Text:   raw,
		Norm:   n,
		Tokens: tokenize(n),
	}, true
}

var (
	punctFolder = strings.NewReplacer(
		"\u2018", "'", "\u2019", "'", "\u201b", "'",
		"\u201c", `"`, "\u201d", `"`,
		"\u2013", "-", "\u2014", "-",
	)
	thousandsRe = regexp.MustCompile(`(\d),(\d{3})\b`)
)

// Normalize produces the matching form of a piece of text: NFKC, ASCII
// quotes and dashes, collapsed whitespace, no thousands separators, and
// number words rewritten as digits. Case is preserved.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = punctFolder.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	for thousandsRe.MatchString(s) {
		s = thousandsRe.ReplaceAllString(s, "$1$2")
	}
	return rewriteNumberWords(s)
}

func isLetterByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
