// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"go.uber.org/zap"

	"github.com/pdiddy/paintquote/pkg/types"
)

// DefaultProjectType is assumed when the input names none.
const DefaultProjectType = types.ProjectInterior

// ApplyDefaults fills every slot extraction left empty from cfg. Defaulted
// slots are listed in Spec.Defaulted; critical ones (paint cost, size driver,
// project type) also go to Completeness.MissingCriticalFields. Surfaces the
// input stated explicitly are never touched.
func (r *Resolution) ApplyDefaults(cfg types.EngineConfig) {
	s := &r.Spec
	set := func(slot types.SlotKind) bool { return r.Set[slot] }

	for _, surface := range types.AllSurfaces {
		if st := s.Surfaces[surface]; !st.Explicit {
			s.Surfaces[surface] = types.SurfaceState{Included: true}
		}
	}

	if !set(types.SlotProjectType) {
		s.ProjectType = DefaultProjectType
		s.MarkDefaulted(types.SlotProjectType, true)
	}

	if s.SquareFootage == nil && s.LinearFeet == nil && s.AreaOverride == nil {
		s.MarkMissing(types.SlotLinearFeet)
		s.MarkMissing(types.SlotSquareFootage)
	}

	if !set(types.SlotCeilingHeight) {
		s.CeilingHeight = cfg.DefaultCeilingHeight
		s.MarkDefaulted(types.SlotCeilingHeight, false)
	}

	if !set(types.SlotPaintCost) {
		s.Paint.CostPerGallon = cfg.DefaultPaintCostPerGallon
		s.Paint.Defaulted.CostPerGallon = true
		s.MarkDefaulted(types.SlotPaintCost, true)
	}
	if !set(types.SlotSpreadRate) {
		s.Paint.SpreadRateSqftPerGallon = cfg.DefaultSpreadRate
		s.Paint.Defaulted.SpreadRate = true
		s.MarkDefaulted(types.SlotSpreadRate, false)
	}
	if !set(types.SlotCoats) {
		s.Paint.Coats = cfg.DefaultCoats
		s.Paint.Defaulted.Coats = true
		s.MarkDefaulted(types.SlotCoats, false)
	}

	if !set(types.SlotPrimer) {
		s.Primer.Included = set(types.SlotPrimerCost)
		s.MarkDefaulted(types.SlotPrimer, false)
	}
	if s.Primer.Included && s.Primer.CostPerGallon == nil {
		cost := cfg.DefaultPrimerCostPerGallon
		s.Primer.CostPerGallon = &cost
		s.MarkDefaulted(types.SlotPrimerCost, false)
	}

	if !set(types.SlotLabor) {
		s.Labor = types.LaborSpec{Mode: types.LaborSeparateRate, Rate: cfg.DefaultLaborRatePerSqft}
		s.MarkDefaulted(types.SlotLabor, false)
	}
	if !set(types.SlotMarkup) {
		s.MarkupPercent = cfg.DefaultMarkupPercent
		s.MarkDefaulted(types.SlotMarkup, false)
	}

	if s.Defaulted == nil {
		s.Defaulted = []types.SlotKind{}
	}
	if s.Completeness.MissingCriticalFields == nil {
		s.Completeness.MissingCriticalFields = []types.SlotKind{}
	}

	zap.L().Debug("resolve: defaults applied",
		zap.Int("defaulted", len(s.Defaulted)),
		zap.Int("missing_critical", len(s.Completeness.MissingCriticalFields)),
	)
}
