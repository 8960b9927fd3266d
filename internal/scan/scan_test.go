// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paintquote/pkg/types"
)

func segmentTexts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits sentences",
			input: "It's for Cici at 9090 Hillside Drive. We are not painting the ceilings.",
			want:  []string{"It's for Cici at 9090 Hillside Drive", "We are not painting the ceilings"},
		},
		{
			name:  "keeps decimal points",
			input: "labor at $1.50. Next job is small",
			want:  []string{"labor at $1.50", "Next job is small"},
		},
		{
			name:  "splits on semicolons and newlines",
			input: "500 linear feet; eggshell\nno primer",
			want:  []string{"500 linear feet", "eggshell", "no primer"},
		},
		{
			name:  "splits on and between quantities",
			input: "500 linear feet and $50 a gallon",
			want:  []string{"500 linear feet", "$50 a gallon"},
		},
		{
			name:  "keeps lists joined by and",
			input: "We are not painting doors and trim",
			want:  []string{"We are not painting doors and trim"},
		},
		{
			name:  "number words count as quantities",
			input: "nine foot ceilings and fifty dollars a gallon",
			want:  []string{"nine foot ceilings", "fifty dollars a gallon"},
		},
		{
			name:  "question and exclamation marks",
			input: "Can you price it? Two coats!",
			want:  []string{"Can you price it", "Two coats"},
		},
		{
			name:  "honorifics stay in the sentence",
			input: "It's for Mr. Jones at 12 Oak St. Mrs. Jones wants satin",
			want:  []string{"It's for Mr. Jones at 12 Oak St", "Mrs. Jones wants satin"},
		},
		{
			name:  "title dr against drive",
			input: "Quote for Dr. Lee at 4 Elm Dr. Two coats",
			want:  []string{"Quote for Dr. Lee at 4 Elm Dr", "Two coats"},
		},
		{
			name:  "unit abbreviations before lowercase",
			input: "about 400 sq. ft. of wall. 2 coats",
			want:  []string{"about 400 sq. ft. of wall", "2 coats"},
		},
		{
			name:  "abbreviation ends sentence before a digit",
			input: "walls are 9 ft. 500 linear feet",
			want:  []string{"walls are 9 ft", "500 linear feet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.input)
			assert.Equal(t, tt.want, segmentTexts(got))
			for i, seg := range got {
				assert.Equal(t, i, seg.Index)
				assert.Equal(t, tt.input[seg.Start:seg.End], seg.Text, "offsets must address the original text")
			}
		})
	}
}

func TestSegmentsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \n", " . ; "} {
		assert.Empty(t, Segments(input), "input %q", input)
	}
}

func TestScanIsRestartable(t *testing.T) {
	seq := Scan("One coat. Two gallons. Three doors.")

	var first, second []string
	for seg := range seq {
		first = append(first, seg.Text)
	}
	for seg := range seq {
		second = append(second, seg.Text)
	}
	assert.Equal(t, []string{"One coat", "Two gallons", "Three doors"}, first)
	assert.Equal(t, first, second)
}

func TestScanStopsEarly(t *testing.T) {
	n := 0
	for range Scan("a. b. c. d.") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"nine feet tall", "9 feet tall"},
		{"three hundred and fifty square feet", "350 square feet"},
		{"twenty-five doors", "25 doors"},
		{"two thousand five hundred sqft", "2500 sqft"},
		{"1,500 square feet", "1500 square feet"},
		{"$1,250,000", "$1250000"},
		{"It\u2019s   for\tCici", "It's for Cici"},
		{"semi\u2014gloss", "semi-gloss"},
		{"Sherwin Williams", "Sherwin Williams"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestTokens(t *testing.T) {
	segs := Segments("Don't paint the baseboards, $50 a gallon or 45 dollars")
	require.Len(t, segs, 1)
	seg := segs[0]

	currency := seg.TokensOf(TokenCurrency)
	require.Len(t, currency, 2)
	assert.Equal(t, 50.0, currency[0].Value)
	assert.Equal(t, "$50", currency[0].Text)
	assert.Equal(t, 45.0, currency[1].Value)

	surfaces := seg.TokensOf(TokenSurface)
	require.Len(t, surfaces, 1)
	assert.Equal(t, types.SurfaceTrim, surfaces[0].Surface)

	neg := seg.TokensOf(TokenNegation)
	require.Len(t, neg, 1)
	assert.Equal(t, "Don't", neg[0].Text)

	aff := seg.TokensOf(TokenAffirm)
	require.Len(t, aff, 1)
	assert.Equal(t, "paint", aff[0].Text)

	for i := 1; i < len(seg.Tokens); i++ {
		assert.LessOrEqual(t, seg.Tokens[i-1].Start, seg.Tokens[i].Start, "tokens are position ordered")
	}
}

func TestSurfaceFor(t *testing.T) {
	tests := map[string]types.SurfaceKind{
		"Walls":     types.SurfaceWalls,
		"ceiling":   types.SurfaceCeilings,
		"DOORS":     types.SurfaceDoors,
		"moldings":  types.SurfaceTrim,
		"casing":    types.SurfaceTrim,
		"windows":   types.SurfaceWindows,
		"baseboard": types.SurfaceTrim,
	}
	for word, want := range tests {
		got, ok := SurfaceFor(word)
		assert.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}
	_, ok := SurfaceFor("roof")
	assert.False(t, ok)
}
