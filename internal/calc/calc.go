// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calc prices a resolved QuoteSpecification. Calculate is a pure
// function of its inputs.
package calc

import (
	"fmt"
	"math"

	"github.com/pdiddy/paintquote/pkg/types"
)

// epsilon absorbs floating-point noise before rounding gallons up, so an
// exact 10.0 gallons never becomes 11.
const epsilon = 1e-9

// Calculate derives areas, gallons, costs and the line items for spec.
// It returns *types.InsufficientDataError when no area can be derived.
func Calculate(spec types.QuoteSpecification, cfg types.EngineConfig) (types.QuoteBreakdown, error) {
	bd := types.QuoteBreakdown{
		LineItems: []types.LineItem{},
		Warnings:  []types.Warning{},
	}
	warn := func(kind types.WarningKind, slot types.SlotKind, format string, args ...any) {
		bd.Warnings = append(bd.Warnings, types.NewWarning(kind, slot, format, args...))
	}

	for _, slot := range spec.Completeness.MissingCriticalFields {
		if slot == types.SlotLinearFeet || slot == types.SlotSquareFootage {
			continue
		}
		warn(types.DefaultedFieldWarning, slot, "%s", defaultedMessage(spec, slot))
	}

	base, err := BaseArea(spec)
	if err != nil {
		return types.QuoteBreakdown{}, err
	}

	area := 0.0
	consts := cfg.PerUnitAreaConstants
	for _, surface := range types.AllSurfaces {
		if !spec.Surfaces[surface].Included {
			continue
		}
		switch surface {
		case types.SurfaceWalls:
			area += base
		case types.SurfaceCeilings:
			if spec.CeilingArea == nil {
				warn(types.CalculationWarning, types.SlotCeilingArea,
					"ceilings are included but their area is unknown; no ceiling area added")
				continue
			}
			area += *spec.CeilingArea
		case types.SurfaceDoors:
			if spec.DoorCount == nil {
				warn(types.CalculationWarning, types.SlotDoorCount,
					"doors are included but no door count was given; no door area added")
				continue
			}
			area += float64(*spec.DoorCount) * consts.Door
		case types.SurfaceWindows:
			if spec.WindowCount == nil {
				warn(types.CalculationWarning, types.SlotWindowCount,
					"windows are included but no window count was given; no window area added")
				continue
			}
			area += float64(*spec.WindowCount) * consts.Window
		case types.SurfaceTrim:
			feet := spec.TrimLinearFeet
			if feet == nil {
				feet = spec.LinearFeet
			}
			if feet == nil {
				warn(types.CalculationWarning, types.SlotTrimLinearFeet,
					"trim is included but its length is unknown; no trim area added")
				continue
			}
			area += *feet * consts.TrimLinearFoot
		}
	}
	if area == 0 {
		warn(types.CalculationWarning, "", "no included surface adds any area; nothing is priced by area")
	}
	bd.TotalArea = round2(area)

	bd.Gallons = Gallons(area, spec.Paint.Coats, spec.Paint.SpreadRateSqftPerGallon)
	paint := types.LineItem{
		Label:    types.LabelPaint,
		Quantity: float64(bd.Gallons),
		Unit:     "gallon",
		UnitCost: spec.Paint.CostPerGallon,
		Subtotal: round2(float64(bd.Gallons) * spec.Paint.CostPerGallon),
	}
	bd.LineItems = append(bd.LineItems, paint)
	material := paint.Subtotal

	if spec.Primer.Included {
		cost := 0.0
		if spec.Primer.CostPerGallon != nil {
			cost = *spec.Primer.CostPerGallon
		}
		gallons := Gallons(area, 1, cfg.PrimerSpreadRate)
		primer := types.LineItem{
			Label:    types.LabelPrimer,
			Quantity: float64(gallons),
			Unit:     "gallon",
			UnitCost: cost,
			Subtotal: round2(float64(gallons) * cost),
		}
		bd.LineItems = append(bd.LineItems, primer)
		material += primer.Subtotal
	}

	labor := laborItem(spec.Labor, area)
	bd.LineItems = append(bd.LineItems, labor)

	bd.MaterialTotal = round2(material)
	bd.LaborTotal = labor.Subtotal
	bd.MarkupAmount = round2((bd.MaterialTotal + bd.LaborTotal) * spec.MarkupPercent / 100)
	if bd.MarkupAmount > 0 {
		bd.LineItems = append(bd.LineItems, types.LineItem{
			Label:    types.LabelMarkup,
			Quantity: spec.MarkupPercent,
			Unit:     "percent",
			UnitCost: round2(bd.MaterialTotal + bd.LaborTotal),
			Subtotal: bd.MarkupAmount,
		})
	}
	bd.GrandTotal = round2(bd.MaterialTotal + bd.LaborTotal + bd.MarkupAmount)
	return bd, nil
}

// BaseArea is the wall area the quote is driven by: the caller override,
// else square footage, else linear feet times ceiling height.
func BaseArea(spec types.QuoteSpecification) (float64, error) {
	switch {
	case spec.AreaOverride != nil:
		return *spec.AreaOverride, nil
	case spec.SquareFootage != nil:
		return *spec.SquareFootage, nil
	case spec.LinearFeet != nil:
		return *spec.LinearFeet * spec.CeilingHeight, nil
	}
	return 0, &types.InsufficientDataError{
		Missing: []types.SlotKind{types.SlotLinearFeet, types.SlotSquareFootage},
	}
}

// Gallons is the smallest whole number of gallons covering area with the
// given number of coats. Partial gallons always round up.
func Gallons(area float64, coats int, spreadRate float64) int {
	if area <= 0 || coats <= 0 || spreadRate <= 0 {
		return 0
	}
	raw := area * float64(coats) / spreadRate
	return int(math.Ceil(raw - epsilon))
}

func laborItem(l types.LaborSpec, area float64) types.LineItem {
	item := types.LineItem{Label: types.LabelLabor, UnitCost: l.Rate}
	switch l.Mode {
	case types.LaborSeparateFlat:
		item.Quantity = 1
		item.Unit = "job"
		item.Subtotal = round2(l.Rate)
	default:
		// Per-square-foot labor: the included rate already prices the work
		// per foot, so it is charged once here and not again in materials.
		item.Quantity = round2(area)
		item.Unit = "sqft"
		item.Subtotal = round2(area * l.Rate)
	}
	return item
}

func defaultedMessage(spec types.QuoteSpecification, slot types.SlotKind) string {
	switch slot {
	case types.SlotPaintCost:
		return fmt.Sprintf("no paint price stated; using default $%.2f per gallon", spec.Paint.CostPerGallon)
	case types.SlotProjectType:
		return fmt.Sprintf("no project type stated; assuming %s", spec.ProjectType)
	}
	return "using default value"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
