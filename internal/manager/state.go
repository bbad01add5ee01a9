package manager

import (
	"slices"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

// AlertKind classifies a mutation outcome.
type AlertKind string

// Alert kinds.
const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Alert is transient feedback about the last mutation.
type Alert struct {
	ID      string
	Kind    AlertKind
	Message string
}

// State is a snapshot of everything a consumer renders.
type State struct {
	// Records is the list returned by the last successful fetch.
	Records []types.Vendor
	// Busy is true while any fetch or mutation is in flight.
	Busy bool
	// FirstLoadInProgress is true until the initial refresh finishes.
	FirstLoadInProgress bool
	// FetchError holds the last refresh failure until a refresh succeeds.
	FetchError string
	// Alert is the outcome of the last mutation, or nil.
	Alert *Alert
}

func (s State) clone() State {
	out := s
	out.Records = slices.Clone(s.Records)
	if s.Alert != nil {
		a := *s.Alert
		out.Alert = &a
	}
	return out
}
