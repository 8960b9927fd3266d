// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWarningText(t *testing.T) {
	tests := []struct {
		name string
		w    Warning
		text string
	}{
		{"with slot", NewWarning(ConflictWarning, SlotPaintCost, "using %d over %d", 50, 45), "conflict (paint.costPerGallon): using 50 over 45"},
		{"without slot", NewWarning(UnassignedWarning, "", "amount $75 was not assigned"), "unassigned: amount $75 was not assigned"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.w)
			require.NoError(t, err)
			assert.JSONEq(t, `"`+tt.text+`"`, string(data))

			var back Warning
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.w, back)

			out, err := yaml.Marshal([]Warning{tt.w})
			require.NoError(t, err)
			assert.Contains(t, string(out), tt.text)
		})
	}
}

func TestWarningUnmarshalFreeText(t *testing.T) {
	var w Warning
	require.NoError(t, w.UnmarshalText([]byte("Something Odd happened")))
	assert.Equal(t, Warning{Message: "Something Odd happened"}, w)
}

func TestMarkDefaulted(t *testing.T) {
	s := NewQuoteSpecification()
	s.MarkDefaulted(SlotProjectType, true)
	s.MarkDefaulted(SlotCoats, false)
	s.MarkDefaulted(SlotPaintCost, true)
	s.MarkDefaulted(SlotCoats, false)
	s.MarkMissing(SlotLinearFeet)

	assert.Equal(t, []SlotKind{SlotCoats, SlotPaintCost, SlotProjectType}, s.Defaulted)
	assert.Equal(t, []SlotKind{SlotLinearFeet, SlotPaintCost, SlotProjectType}, s.Completeness.MissingCriticalFields)
	assert.True(t, s.Completeness.Incomplete())
}

func TestSurfaceSlots(t *testing.T) {
	assert.Len(t, NewQuoteSpecification().Surfaces, len(AllSurfaces))
	for _, s := range AllSurfaces {
		got, ok := SurfaceOf(SurfaceSlot(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := SurfaceOf(SlotPaintCost)
	assert.False(t, ok)
}

func TestSizeDriver(t *testing.T) {
	lf, sq := 500.0, 1200.0
	s := NewQuoteSpecification()
	assert.Equal(t, SlotKind(""), s.SizeDriver())
	s.LinearFeet = &lf
	assert.Equal(t, SlotLinearFeet, s.SizeDriver())
	s.SquareFootage = &sq
	assert.Equal(t, SlotSquareFootage, s.SizeDriver())
}

func TestEngineConfigValidate(t *testing.T) {
	require.NoError(t, DefaultEngineConfig().Validate())

	cfg := DefaultEngineConfig()
	cfg.DefaultCoats = 0
	cfg.PrimerSpreadRate = 0
	cfg.PerUnitAreaConstants.Door = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_coats")
	assert.Contains(t, err.Error(), "primer_spread_rate")
	assert.Contains(t, err.Error(), "per_unit_area_constants")
}

func TestErrors(t *testing.T) {
	var err error = &InsufficientDataError{Missing: []SlotKind{SlotLinearFeet, SlotSquareFootage}}
	assert.Equal(t, "insufficient data: no area derivable, missing linearFeet or squareFootage", err.Error())

	var empty EmptyInputError
	assert.True(t, errors.As(EmptyInputError{}, &empty))
}
