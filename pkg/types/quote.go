// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the quote pipeline stages:
// the canonical QuoteSpecification, the priced QuoteBreakdown, the engine
// configuration, and the structured errors and warnings returned to callers.
package types

import "sort"

// SlotKind names a field of the QuoteSpecification that extraction aims to fill.
type SlotKind string

const (
	SlotCustomerName   SlotKind = "customerName"
	SlotAddress        SlotKind = "address"
	SlotProjectType    SlotKind = "projectType"
	SlotLinearFeet     SlotKind = "linearFeet"
	SlotSquareFootage  SlotKind = "squareFootage"
	SlotCeilingHeight  SlotKind = "ceilingHeight"
	SlotCeilingArea    SlotKind = "ceilingArea"
	SlotTrimLinearFeet SlotKind = "trimLinearFeet"
	SlotDoorCount      SlotKind = "doorCount"
	SlotWindowCount    SlotKind = "windowCount"
	SlotPaintCost      SlotKind = "paint.costPerGallon"
	SlotPaintFinish    SlotKind = "paint.finish"
	SlotPaintBrand     SlotKind = "paint.brand"
	SlotSpreadRate     SlotKind = "paint.spreadRateSqftPerGallon"
	SlotCoats          SlotKind = "paint.coats"
	SlotPrimer         SlotKind = "primer.included"
	SlotPrimerCost     SlotKind = "primer.costPerGallon"
	SlotLabor          SlotKind = "labor"
	SlotMarkup         SlotKind = "markupPercent"
)

// SurfaceSlot returns the slot that carries the inclusion polarity of a surface.
func SurfaceSlot(s SurfaceKind) SlotKind {
	return SlotKind("surfaces." + string(s))
}

// SurfaceOf reports which surface a surface slot refers to.
func SurfaceOf(slot SlotKind) (SurfaceKind, bool) {
	for _, s := range AllSurfaces {
		if SurfaceSlot(s) == slot {
			return s, true
		}
	}
	return "", false
}

// SurfaceKind identifies a paintable surface.
type SurfaceKind string

const (
	SurfaceWalls    SurfaceKind = "walls"
	SurfaceCeilings SurfaceKind = "ceilings"
	SurfaceDoors    SurfaceKind = "doors"
	SurfaceTrim     SurfaceKind = "trim"
	SurfaceWindows  SurfaceKind = "windows"
)

// AllSurfaces lists every SurfaceKind in presentation order.
var AllSurfaces = []SurfaceKind{SurfaceWalls, SurfaceCeilings, SurfaceDoors, SurfaceTrim, SurfaceWindows}

// ProjectType categorizes the job.
type ProjectType string

const (
	ProjectInterior   ProjectType = "interior"
	ProjectExterior   ProjectType = "exterior"
	ProjectCommercial ProjectType = "commercial"
	ProjectCabinet    ProjectType = "cabinet"
)

// LaborMode selects how labor is priced.
type LaborMode string

const (
	// LaborIncludedPerSqft means the quoted per-square-foot figure already
	// covers labor.
	LaborIncludedPerSqft LaborMode = "includedPerSqft"
	// LaborSeparateFlat is a single flat labor charge.
	LaborSeparateFlat LaborMode = "separateFlat"
	// LaborSeparateRate is a per-square-foot labor rate charged on top of materials.
	LaborSeparateRate LaborMode = "separateRate"
)

// SurfaceState records whether a surface is in scope and whether the input
// said so directly.
type SurfaceState struct {
	Included bool `json:"included" yaml:"included"`
	Explicit bool `json:"explicit" yaml:"explicit"`
}

// PaintDefaults flags which paint fields took a default value.
type PaintDefaults struct {
	CostPerGallon bool `json:"costPerGallon" yaml:"costPerGallon"`
	SpreadRate    bool `json:"spreadRate" yaml:"spreadRate"`
	Coats         bool `json:"coats" yaml:"coats"`
}

// PaintSpec describes the finish coat.
type PaintSpec struct {
	CostPerGallon           float64       `json:"costPerGallon" yaml:"costPerGallon"`
	Finish                  string        `json:"finish,omitempty" yaml:"finish,omitempty"`
	Brand                   string        `json:"brand,omitempty" yaml:"brand,omitempty"`
	SpreadRateSqftPerGallon float64       `json:"spreadRateSqftPerGallon" yaml:"spreadRateSqftPerGallon"`
	Coats                   int           `json:"coats" yaml:"coats"`
	Defaulted               PaintDefaults `json:"defaulted" yaml:"defaulted"`
}

// PrimerSpec describes the primer coat. CostPerGallon is nil when no price
// was stated and no default applied.
type PrimerSpec struct {
	Included      bool     `json:"included" yaml:"included"`
	CostPerGallon *float64 `json:"costPerGallon,omitempty" yaml:"costPerGallon,omitempty"`
}

// LaborSpec describes how labor is charged. Rate is per square foot for
// includedPerSqft and separateRate, and a total for separateFlat.
type LaborSpec struct {
	Mode LaborMode `json:"mode" yaml:"mode"`
	Rate float64   `json:"rate" yaml:"rate"`
}

// Completeness lists the critical slots that were filled by defaults.
type Completeness struct {
	MissingCriticalFields []SlotKind `json:"missingCriticalFields" yaml:"missingCriticalFields"`
}

// Incomplete reports whether any critical field was defaulted.
func (c Completeness) Incomplete() bool {
	return len(c.MissingCriticalFields) > 0
}

// QuoteSpecification is the canonical, self-consistent description of a job.
// It is built by the resolvers and frozen before calculation.
type QuoteSpecification struct {
	CustomerName string                       `json:"customerName,omitempty" yaml:"customerName,omitempty"`
	Address      string                       `json:"address,omitempty" yaml:"address,omitempty"`
	ProjectType  ProjectType                  `json:"projectType,omitempty" yaml:"projectType,omitempty"`
	Surfaces     map[SurfaceKind]SurfaceState `json:"surfaces" yaml:"surfaces"`

	// LinearFeet and SquareFootage are the size drivers; at most one is
	// authoritative (SquareFootage wins when both are stated).
	LinearFeet    *float64 `json:"linearFeet,omitempty" yaml:"linearFeet,omitempty"`
	SquareFootage *float64 `json:"squareFootage,omitempty" yaml:"squareFootage,omitempty"`
	CeilingHeight float64  `json:"ceilingHeight" yaml:"ceilingHeight"`

	CeilingArea    *float64 `json:"ceilingArea,omitempty" yaml:"ceilingArea,omitempty"`
	TrimLinearFeet *float64 `json:"trimLinearFeet,omitempty" yaml:"trimLinearFeet,omitempty"`
	DoorCount      *int     `json:"doorCount,omitempty" yaml:"doorCount,omitempty"`
	WindowCount    *int     `json:"windowCount,omitempty" yaml:"windowCount,omitempty"`

	// AreaOverride is supplied by the caller, never extracted.
	AreaOverride *float64 `json:"areaOverride,omitempty" yaml:"areaOverride,omitempty"`

	Paint         PaintSpec  `json:"paint" yaml:"paint"`
	Primer        PrimerSpec `json:"primer" yaml:"primer"`
	Labor         LaborSpec  `json:"labor" yaml:"labor"`
	MarkupPercent float64    `json:"markupPercent" yaml:"markupPercent"`

	Completeness Completeness `json:"completeness" yaml:"completeness"`
	Defaulted    []SlotKind   `json:"defaulted" yaml:"defaulted"`
}

// NewQuoteSpecification returns an empty specification with every surface
// present and not yet decided.
func NewQuoteSpecification() QuoteSpecification {
	surfaces := make(map[SurfaceKind]SurfaceState, len(AllSurfaces))
	for _, s := range AllSurfaces {
		surfaces[s] = SurfaceState{}
	}
	return QuoteSpecification{Surfaces: surfaces}
}

// MarkDefaulted records that slot took a default. Critical slots are also
// added to the completeness set. Both lists stay sorted.
func (q *QuoteSpecification) MarkDefaulted(slot SlotKind, critical bool) {
	q.Defaulted = insertSorted(q.Defaulted, slot)
	if critical {
		q.Completeness.MissingCriticalFields = insertSorted(q.Completeness.MissingCriticalFields, slot)
	}
}

// MarkMissing records a critical slot that has no value and no default.
func (q *QuoteSpecification) MarkMissing(slot SlotKind) {
	q.Completeness.MissingCriticalFields = insertSorted(q.Completeness.MissingCriticalFields, slot)
}

// SizeDriver returns the authoritative size slot, or "" when neither is set.
func (q QuoteSpecification) SizeDriver() SlotKind {
	switch {
	case q.SquareFootage != nil:
		return SlotSquareFootage
	case q.LinearFeet != nil:
		return SlotLinearFeet
	}
	return ""
}

func insertSorted(list []SlotKind, slot SlotKind) []SlotKind {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= slot })
	if i < len(list) && list[i] == slot {
		return list
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = slot
	return list
}
