// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// AreaConstants holds the per-unit area models for surfaces that do not
// scale with wall area.
type AreaConstants struct {
	// Door is the paintable area of one door, in square feet.
	Door float64 `json:"door" yaml:"door" mapstructure:"door"`

	// Window is the paintable frame and sash area of one window, in square feet.
	Window float64 `json:"window" yaml:"window" mapstructure:"window"`

	// TrimLinearFoot is the paintable area of one linear foot of trim, in square feet.
	TrimLinearFoot float64 `json:"trimLinearFoot" yaml:"trim_linear_foot" mapstructure:"trim_linear_foot"`
}

// EngineConfig carries every domain constant the pipeline uses. It is loaded
// once at startup and treated as read-only afterwards.
type EngineConfig struct {
	// DefaultLaborRatePerSqft is the separate labor rate used when the input
	// says nothing about labor.
	DefaultLaborRatePerSqft float64 `json:"defaultLaborRatePerSqft" yaml:"default_labor_rate_per_sqft" mapstructure:"default_labor_rate_per_sqft"`

	// DefaultMarkupPercent is applied when no markup is stated (15 means 15%).
	DefaultMarkupPercent float64 `json:"defaultMarkupPercent" yaml:"default_markup_percent" mapstructure:"default_markup_percent"`

	// DefaultCeilingHeight in feet (residential interior convention).
	DefaultCeilingHeight float64 `json:"defaultCeilingHeight" yaml:"default_ceiling_height" mapstructure:"default_ceiling_height"`

	// DefaultSpreadRate is the coverage in square feet per gallon.
	DefaultSpreadRate float64 `json:"defaultSpreadRate" yaml:"default_spread_rate" mapstructure:"default_spread_rate"`

	// DefaultCoats is the number of finish coats.
	DefaultCoats int `json:"defaultCoats" yaml:"default_coats" mapstructure:"default_coats"`

	// DefaultPaintCostPerGallon prices paint when the input gives no price.
	DefaultPaintCostPerGallon float64 `json:"defaultPaintCostPerGallon" yaml:"default_paint_cost_per_gallon" mapstructure:"default_paint_cost_per_gallon"`

	// DefaultPrimerCostPerGallon prices primer that is in scope without a price.
	DefaultPrimerCostPerGallon float64 `json:"defaultPrimerCostPerGallon" yaml:"default_primer_cost_per_gallon" mapstructure:"default_primer_cost_per_gallon"`

	// PrimerSpreadRate is the primer coverage in square feet per gallon.
	PrimerSpreadRate float64 `json:"primerSpreadRate" yaml:"primer_spread_rate" mapstructure:"primer_spread_rate"`

	PerUnitAreaConstants AreaConstants `json:"perUnitAreaConstants" yaml:"per_unit_area_constants" mapstructure:"per_unit_area_constants"`

	// KnownBrands lists canonical brand names; matching is case-insensitive
	// and tolerates minor misspellings.
	KnownBrands []string `json:"knownBrands" yaml:"known_brands" mapstructure:"known_brands"`

	// KnownFinishes lists finish names (eggshell, satin, ...).
	KnownFinishes []string `json:"knownFinishes" yaml:"known_finishes" mapstructure:"known_finishes"`
}

// DefaultEngineConfig returns the stock configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultLaborRatePerSqft:    1.25,
		DefaultMarkupPercent:       0,
		DefaultCeilingHeight:       8,
		DefaultSpreadRate:          350,
		DefaultCoats:               2,
		DefaultPaintCostPerGallon:  35,
		DefaultPrimerCostPerGallon: 25,
		PrimerSpreadRate:           300,
		PerUnitAreaConstants: AreaConstants{
			Door:           21,
			Window:         15,
			TrimLinearFoot: 0.5,
		},
		KnownBrands: []string{
			"Sherwin Williams",
			"Benjamin Moore",
			"Behr",
			"Valspar",
			"PPG",
			"Glidden",
			"Dunn-Edwards",
			"Kelly-Moore",
			"Farrow & Ball",
			"Pratt & Lambert",
			"Dutch Boy",
			"Kilz",
		},
		KnownFinishes: []string{
			"flat",
			"matte",
			"eggshell",
			"satin",
			"pearl",
			"semi-gloss",
			"gloss",
			"high-gloss",
		},
	}
}

// Validate checks the invariants the pipeline relies on.
func (c EngineConfig) Validate() error {
	var errs []error
	if c.DefaultCeilingHeight <= 0 {
		errs = append(errs, fmt.Errorf("default_ceiling_height must be > 0, got %v", c.DefaultCeilingHeight))
	}
	if c.DefaultSpreadRate <= 0 {
		errs = append(errs, fmt.Errorf("default_spread_rate must be > 0, got %v", c.DefaultSpreadRate))
	}
	if c.PrimerSpreadRate <= 0 {
		errs = append(errs, fmt.Errorf("primer_spread_rate must be > 0, got %v", c.PrimerSpreadRate))
	}
	if c.DefaultCoats < 1 {
		errs = append(errs, fmt.Errorf("default_coats must be >= 1, got %d", c.DefaultCoats))
	}
	if c.DefaultLaborRatePerSqft < 0 {
		errs = append(errs, fmt.Errorf("default_labor_rate_per_sqft must be >= 0, got %v", c.DefaultLaborRatePerSqft))
	}
	if c.DefaultPaintCostPerGallon < 0 || c.DefaultPrimerCostPerGallon < 0 {
		errs = append(errs, errors.New("default paint and primer costs must be >= 0"))
	}
	if c.DefaultMarkupPercent < 0 {
		errs = append(errs, fmt.Errorf("default_markup_percent must be >= 0, got %v", c.DefaultMarkupPercent))
	}
	a := c.PerUnitAreaConstants
	if a.Door < 0 || a.Window < 0 || a.TrimLinearFoot < 0 {
		errs = append(errs, errors.New("per_unit_area_constants must be >= 0"))
	}
	return errors.Join(errs...)
}
