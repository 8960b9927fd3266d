// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

// --- test helpers ---

func runMatcher(m Matcher, text string) []Candidate {
	return Run([]Matcher{m}, scan.Segments(text))
}

func ofSlot(cands []Candidate, slot types.SlotKind) []Candidate {
	var out []Candidate
	for _, c := range cands {
		if c.Slot == slot {
			out = append(out, c)
		}
	}
	return out
}

// best returns the highest-specificity candidate for slot.
func best(t *testing.T, cands []Candidate, slot types.SlotKind) Candidate {
	t.Helper()
	got := ofSlot(cands, slot)
	require.NotEmpty(t, got, "no candidate for %s", slot)
	b := got[0]
	for _, c := range got[1:] {
		if c.Specificity > b.Specificity {
			b = c
		}
	}
	return b
}

// --- identity and address ---

func TestIdentityMatcher(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		spec int
	}{
		{"its for", "It's for Cici at 9090 Hillside Drive", "Cici", SpecExplicit},
		{"two word name", "This is for Dana Smith, kitchen and hall", "Dana Smith", SpecExplicit},
		{"honorific", "Quote is for Mrs Alvarez", "Alvarez", SpecExplicit},
		{"abbreviated honorific", "It's for Mr. Jones at 12 Oak St.", "Jones", SpecExplicit},
		{"this one is", "This one is for Dana", "Dana", SpecExplicit},
		{"customer is", "customer is Dana Smith", "Dana Smith", SpecExplicit},
		{"lowercase before address", "quote for cici at 12 Main St", "Cici", SpecContext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := best(t, runMatcher(IdentityMatcher{}, tt.text), types.SlotCustomerName)
			assert.Equal(t, tt.want, c.ValueString())
			assert.Equal(t, tt.spec, c.Specificity)
		})
	}
}

func TestIdentityMatcherRejectsNonNames(t *testing.T) {
	for _, text := range []string{
		"It's for Interior painting",
		"500 linear feet of interior painting",
		"it is for the walls only",
	} {
		assert.Empty(t, runMatcher(IdentityMatcher{}, text), text)
	}
}

func TestAddressMatcher(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		spec int
	}{
		{"after at", "It's for Cici at 9090 Hillside Drive.", "9090 Hillside Drive", SpecExplicit},
		{"city state zip", "Job at 12 Oak St, Springfield, IL 62704", "12 Oak St, Springfield, IL 62704", SpecExplicit},
		{"bare", "9 Elm Court needs a repaint", "9 Elm Court", SpecPattern},
		{"unit", "at 400 Pine Avenue Apt 3B", "400 Pine Avenue Apt 3B", SpecExplicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := best(t, runMatcher(AddressMatcher{}, tt.text), types.SlotAddress)
			assert.Equal(t, tt.want, c.ValueString())
			assert.Equal(t, tt.spec, c.Specificity)
		})
	}
}

func TestAddressMatcherRejectsMeasurements(t *testing.T) {
	for _, text := range []string{
		"The project is a 500 linear feet of interior painting",
		"spread rate is 350 square feet per gallon",
		"Ceilings are 9 feet tall",
	} {
		assert.Empty(t, runMatcher(AddressMatcher{}, text), text)
	}
}

// --- measurement ---

func TestMeasurementMatcher(t *testing.T) {
	tests := []struct {
		name string
		text string
		slot types.SlotKind
		want string
	}{
		{"linear feet", "The project is a 500 linear feet of interior painting", types.SlotLinearFeet, "500"},
		{"linear feet words", "two hundred linear ft", types.SlotLinearFeet, "200"},
		{"lf", "320 LF of wall", types.SlotLinearFeet, "320"},
		{"trim length", "180 linear feet of baseboards", types.SlotTrimLinearFeet, "180"},
		{"square feet", "about 1,200 sq ft of walls", types.SlotSquareFootage, "1200"},
		{"square footage", "square footage is 950", types.SlotSquareFootage, "950"},
		{"ceiling area", "ceilings are 400 square feet", types.SlotCeilingArea, "400"},
		{"feet tall", "Ceilings are 9 feet tall", types.SlotCeilingHeight, "9"},
		{"foot ceilings", "nine foot ceilings throughout", types.SlotCeilingHeight, "9"},
		{"ceiling height", "ceiling height is 10", types.SlotCeilingHeight, "10"},
		{"door count", "3 interior doors", types.SlotDoorCount, "3"},
		{"window count", "twelve windows", types.SlotWindowCount, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := best(t, runMatcher(MeasurementMatcher{}, tt.text), tt.slot)
			assert.Equal(t, tt.want, c.ValueString())
		})
	}
}

func TestMeasurementMatcherSkipsCoverage(t *testing.T) {
	cands := runMatcher(MeasurementMatcher{}, "spread rate is 350 square feet per gallon")
	assert.Empty(t, ofSlot(cands, types.SlotSquareFootage))

	cands = runMatcher(MeasurementMatcher{}, "one gallon covers 400 sqft")
	assert.Empty(t, ofSlot(cands, types.SlotSquareFootage))
}

// --- paint economics ---

func TestPaintMatcherWorkedExample(t *testing.T) {
	pm := NewPaintMatcher(types.DefaultEngineConfig())
	cands := runMatcher(pm, "$50 a gallon bucket eggshell shirwin williams")

	cost := best(t, cands, types.SlotPaintCost)
	assert.Equal(t, "50", cost.ValueString())
	assert.Equal(t, SpecExplicit, cost.Specificity)

	finish := best(t, cands, types.SlotPaintFinish)
	assert.Equal(t, "eggshell", finish.ValueString())
	assert.Equal(t, SpecPattern, finish.Specificity)

	brand := best(t, cands, types.SlotPaintBrand)
	assert.Equal(t, "Sherwin Williams", brand.ValueString())
	assert.Equal(t, SpecContext, brand.Specificity, "misspelled brands score below exact ones")
}

func TestPaintMatcher(t *testing.T) {
	pm := NewPaintMatcher(types.DefaultEngineConfig())
	tests := []struct {
		name string
		text string
		slot types.SlotKind
		want string
		spec int
	}{
		{"per gallon slash", "paint is $42/gallon", types.SlotPaintCost, "42", SpecExplicit},
		{"dollars per gallon", "forty five dollars per gallon", types.SlotPaintCost, "45", SpecExplicit},
		{"bucket", "$180 a bucket", types.SlotPaintCost, "180", SpecPattern},
		{"paint costs", "the paint costs $38", types.SlotPaintCost, "38", SpecContext},
		{"spread statement", "spread rate is 350 square feet per gallon", types.SlotSpreadRate, "350", SpecStatement},
		{"spread bare", "spread rate 300", types.SlotSpreadRate, "300", SpecExplicit},
		{"coverage", "it covers 400 sqft per gallon", types.SlotSpreadRate, "400", SpecPattern},
		{"coats", "two coats on everything", types.SlotCoats, "2", SpecExplicit},
		{"exact brand", "Benjamin Moore regal", types.SlotPaintBrand, "Benjamin Moore", SpecPattern},
		{"hyphenated brand", "sherwin-williams duration", types.SlotPaintBrand, "Sherwin Williams", SpecPattern},
		{"ampersand brand", "farrow and ball", types.SlotPaintBrand, "Farrow & Ball", SpecPattern},
		{"semi gloss", "semi gloss paint on trim", types.SlotPaintFinish, "semi-gloss", SpecPattern},
		{"finish without context", "satin", types.SlotPaintFinish, "satin", SpecContext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := best(t, runMatcher(pm, tt.text), tt.slot)
			assert.Equal(t, tt.want, c.ValueString())
			assert.Equal(t, tt.spec, c.Specificity)
		})
	}
}

func TestPaintMatcherNegativeCases(t *testing.T) {
	pm := NewPaintMatcher(types.DefaultEngineConfig())

	cands := runMatcher(pm, "semi-gloss on the doors")
	finishes := ofSlot(cands, types.SlotPaintFinish)
	require.Len(t, finishes, 1, "gloss must not match inside semi-gloss")
	assert.Equal(t, "semi-gloss", finishes[0].ValueString())

	assert.Empty(t, ofSlot(runMatcher(pm, "flat rate of $2000 for labor"), types.SlotPaintFinish))
	assert.Empty(t, ofSlot(runMatcher(pm, "1 coat of primer"), types.SlotCoats))
	assert.Empty(t, ofSlot(runMatcher(pm, "primer is $30 a gallon"), types.SlotPaintCost))
	assert.Empty(t, ofSlot(runMatcher(pm, "bear in mind the walls"), types.SlotPaintBrand))
}

func TestPaintMatcherFlatPrices(t *testing.T) {
	pm := NewPaintMatcher(types.DefaultEngineConfig())
	for _, text := range []string{
		"Labor is $800 flat",
		"labor is flat",
		"$1200 flat for the whole job",
	} {
		assert.Empty(t, ofSlot(runMatcher(pm, text), types.SlotPaintFinish), text)
	}

	c := best(t, runMatcher(pm, "flat paint on the ceilings"), types.SlotPaintFinish)
	assert.Equal(t, "flat", c.ValueString())
}

func TestPaintMatcherPriceBesideRejectedPrimer(t *testing.T) {
	pm := NewPaintMatcher(types.DefaultEngineConfig())
	for _, text := range []string{
		"No primer, $50 a gallon eggshell",
		"skip the primer, paint is $50 a gallon",
	} {
		c := best(t, runMatcher(pm, text), types.SlotPaintCost)
		assert.Equal(t, "50", c.ValueString(), text)
	}
}

func TestBrandDistance(t *testing.T) {
	tests := []struct {
		key, target string
		ok          bool
	}{
		{"sherwinwilliams", "sherwinwilliams", true},
		{"shirwinwilliams", "sherwinwilliams", true},
		{"sherwinwiliam", "sherwinwilliams", true},
		{"benjaminmore", "benjaminmoore", true},
		{"valspr", "valspar", false},
		{"bear", "behr", false},
		{"glidden", "glidden", true},
		{"xherwinwilliams", "sherwinwilliams", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, ok := brandDistance(tt.key, tt.target)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

// --- scope ---

func surfacePolarity(cands []Candidate) map[types.SurfaceKind]bool {
	out := make(map[types.SurfaceKind]bool)
	for _, c := range cands {
		if s, ok := types.SurfaceOf(c.Slot); ok {
			out[s] = !c.Negated
		}
	}
	return out
}

func TestScopeMatcherSurfaces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[types.SurfaceKind]bool
	}{
		{
			name: "negated verb",
			text: "We are not painting the ceilings",
			want: map[types.SurfaceKind]bool{types.SurfaceCeilings: false},
		},
		{
			name: "list inherits negation",
			text: "We are not painting doors, or trim or windows",
			want: map[types.SurfaceKind]bool{
				types.SurfaceDoors:   false,
				types.SurfaceTrim:    false,
				types.SurfaceWindows: false,
			},
		},
		{
			name: "contrast resets scope",
			text: "Paint the walls but not the ceilings",
			want: map[types.SurfaceKind]bool{
				types.SurfaceWalls:    true,
				types.SurfaceCeilings: false,
			},
		},
		{
			name: "contraction then contrast",
			text: "Don't paint the trim, but paint the doors",
			want: map[types.SurfaceKind]bool{
				types.SurfaceTrim:  false,
				types.SurfaceDoors: true,
			},
		},
		{
			name: "trailing negation covers list",
			text: "The walls and ceilings are not included",
			want: map[types.SurfaceKind]bool{
				types.SurfaceWalls:    false,
				types.SurfaceCeilings: false,
			},
		},
		{
			name: "excluding",
			text: "everything excluding windows",
			want: map[types.SurfaceKind]bool{types.SurfaceWindows: false},
		},
		{
			name: "going to paint",
			text: "we're not going to paint the baseboards",
			want: map[types.SurfaceKind]bool{types.SurfaceTrim: false},
		},
		{
			name: "bare mention",
			text: "Ceilings are 9 feet tall",
			want: map[types.SurfaceKind]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := ScopeMatcher{}.surfaces(scan.Segments(tt.text)[0])
			assert.Equal(t, tt.want, surfacePolarity(cands))
			for _, c := range cands {
				if c.Negated {
					assert.Equal(t, SpecExplicit, c.Specificity)
				}
			}
		})
	}
}

func TestScopeMatcherProjectType(t *testing.T) {
	c := best(t, runMatcher(ScopeMatcher{}, "The project is a 500 linear feet of interior painting"), types.SlotProjectType)
	assert.Equal(t, "interior", c.ValueString())
	assert.Equal(t, SpecExplicit, c.Specificity)

	c = best(t, runMatcher(ScopeMatcher{}, "kitchen cabinets, white"), types.SlotProjectType)
	assert.Equal(t, "cabinet", c.ValueString())
	assert.Equal(t, SpecPattern, c.Specificity)

	c = best(t, runMatcher(ScopeMatcher{}, "all outside"), types.SlotProjectType)
	assert.Equal(t, "exterior", c.ValueString())
	assert.Equal(t, SpecKeyword, c.Specificity)
}

// --- labor ---

func TestLaborMatcher(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode types.LaborMode
		rate float64
		spec int
	}{
		{"included per sqft", "labour is included in the cost per square foot at $1.50", types.LaborIncludedPerSqft, 1.5, SpecStatement},
		{"separate rate", "labor is $2 per square foot", types.LaborSeparateRate, 2, SpecExplicit},
		{"flat", "labor is $3000 flat", types.LaborSeparateFlat, 3000, SpecExplicit},
		{"for labor", "$2500 for labor", types.LaborSeparateFlat, 2500, SpecExplicit},
		{"plain amount", "labor runs $1800", types.LaborSeparateFlat, 1800, SpecPattern},
		{"hourly with hours", "$45 an hour for labor, about 20 hours", types.LaborSeparateFlat, 900, SpecExplicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := best(t, runMatcher(LaborMatcher{}, tt.text), types.SlotLabor)
			lv, ok := c.Value.(LaborValue)
			require.True(t, ok)
			assert.Equal(t, tt.mode, lv.Mode)
			assert.InDelta(t, tt.rate, lv.Rate, 1e-9)
			assert.Equal(t, tt.spec, c.Specificity)
		})
	}
}

func TestLaborMatcherSkips(t *testing.T) {
	assert.Empty(t, ofSlot(runMatcher(LaborMatcher{}, "labor is $40 an hour"), types.SlotLabor),
		"an hourly rate without hours cannot be priced")
	assert.Empty(t, ofSlot(runMatcher(LaborMatcher{}, "$50 a gallon"), types.SlotLabor))
	assert.Empty(t, ofSlot(runMatcher(LaborMatcher{}, "labor is on us"), types.SlotLabor))
}

func TestLaborMatcherMarkup(t *testing.T) {
	for text, want := range map[string]string{
		"15% markup":            "15",
		"markup is 10 percent":  "10",
		"add a margin of 12.5%": "12.5",
	} {
		c := best(t, runMatcher(LaborMatcher{}, text), types.SlotMarkup)
		assert.Equal(t, want, c.ValueString(), text)
	}
}

// --- primer ---

func TestPrimerMatcher(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		negated bool
		cost    string
		spec    int
	}{
		{"no primer", "No primer", true, "", SpecExplicit},
		{"not needed", "primer not needed", true, "", SpecExplicit},
		{"skip", "skip the primer", true, "", SpecExplicit},
		{"priced", "primer is $30 a gallon", false, "30", SpecExplicit},
		{"with primer", "two coats with primer", false, "", SpecContext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := runMatcher(PrimerMatcher{}, tt.text)
			c := best(t, cands, types.SlotPrimer)
			assert.Equal(t, tt.negated, c.Negated)
			assert.Equal(t, tt.spec, c.Specificity)
			costs := ofSlot(cands, types.SlotPrimerCost)
			if tt.cost == "" {
				assert.Empty(t, costs)
				return
			}
			require.Len(t, costs, 1)
			assert.Equal(t, tt.cost, costs[0].ValueString())
		})
	}
	assert.Empty(t, runMatcher(PrimerMatcher{}, "$50 a gallon eggshell"))
}

// --- shared behavior ---

func TestMatchersAreStateless(t *testing.T) {
	text := "It's for Cici at 9090 Hillside Drive. 500 linear feet. $50 a gallon eggshell. No primer."
	segs := scan.Segments(text)
	for _, m := range All(types.DefaultEngineConfig()) {
		first := Run([]Matcher{m}, segs)
		second := Run([]Matcher{m}, segs)
		assert.Equal(t, first, second, m.Name())
	}
}

func TestCandidateValueString(t *testing.T) {
	assert.Equal(t, "1.5", NumberValue(1.5).String())
	assert.Equal(t, "350", NumberValue(350).String())
	assert.Equal(t, "includedPerSqft 1.5", LaborValue{Mode: types.LaborIncludedPerSqft, Rate: 1.5}.String())
	assert.Equal(t, "excluded", Candidate{Negated: true}.ValueString())
	assert.Equal(t, "included", Candidate{}.ValueString())
}
