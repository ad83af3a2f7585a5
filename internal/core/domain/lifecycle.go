package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a status change is not in the
// lifecycle transition table.
var ErrInvalidTransition = errors.New("invalid asset status transition")

// lifecycleTransitions is the single transition table for asset statuses.
// Every workflow must go through Transition rather than assigning Status
// directly. DISPOSED and WRITTEN_OFF are terminal.
var lifecycleTransitions = map[AssetStatus][]AssetStatus{
	StatusNew:                    {StatusActive, StatusConstructionInProgress},
	StatusConstructionInProgress: {StatusConstructionCompleted},
	StatusConstructionCompleted:  {StatusActive},
	StatusActive:                 {StatusFullyDepreciated, StatusHeldForSale, StatusWrittenOff, StatusInConservation},
	StatusInConservation:         {StatusActive},
	StatusFullyDepreciated:       {StatusHeldForSale, StatusWrittenOff},
	StatusHeldForSale:            {StatusDisposed, StatusActive},
	StatusDisposed:               {},
	StatusWrittenOff:             {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to AssetStatus) bool {
	for _, allowed := range lifecycleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves the asset to the target status after checking the
// transition table. The asset is not modified on failure.
func (a *FixedAsset) Transition(to AssetStatus) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	return nil
}

// IsTerminal reports whether the status admits no further transitions.
func IsTerminal(s AssetStatus) bool {
	return len(lifecycleTransitions[s]) == 0
}
