// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"regexp"
	"strings"
)

// EmptyInputError reports that the raw text produced no segments.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "empty input: no extractable text"
}

// InsufficientDataError reports that no paintable area could be derived.
// Missing names the slots any one of which would have been enough.
type InsufficientDataError struct {
	Missing []SlotKind
}

func (e *InsufficientDataError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = string(s)
	}
	return fmt.Sprintf("insufficient data: no area derivable, missing %s", strings.Join(names, " or "))
}

// WarningKind classifies a non-fatal anomaly.
type WarningKind string

const (
	// ConflictWarning: candidates disagreed and the tie-break picked a winner.
	ConflictWarning WarningKind = "conflict"
	// DefaultedFieldWarning: a critical field used a default.
	DefaultedFieldWarning WarningKind = "defaulted"
	// UnassignedWarning: a recognized amount or phrase did not land in any field.
	UnassignedWarning WarningKind = "unassigned"
	// CalculationWarning: the calculation made an assumption worth surfacing.
	CalculationWarning WarningKind = "calculation"
)

// Warning is a human-readable anomaly record. It marshals as a single string
// "kind (slot): message" so the output stays an array of strings.
type Warning struct {
	Kind    WarningKind
	Slot    SlotKind
	Message string
}

// NewWarning formats a warning message.
func NewWarning(kind WarningKind, slot SlotKind, format string, args ...any) Warning {
	return Warning{Kind: kind, Slot: slot, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	if w.Slot == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s (%s): %s", w.Kind, w.Slot, w.Message)
}

// MarshalText implements encoding.TextMarshaler.
func (w Warning) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

var warningRe = regexp.MustCompile(`^([a-z]+)(?: \(([^)]+)\))?: (.*)$`)

// UnmarshalText implements encoding.TextUnmarshaler. Text that does not
// follow the "kind (slot): message" layout is kept whole as the message.
func (w *Warning) UnmarshalText(text []byte) error {
	m := warningRe.FindStringSubmatch(string(text))
	if m == nil {
		*w = Warning{Message: string(text)}
		return nil
	}
	*w = Warning{Kind: WarningKind(m[1]), Slot: SlotKind(m[2]), Message: m[3]}
	return nil
}
