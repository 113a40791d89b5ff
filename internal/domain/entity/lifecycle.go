// Package entity contains the core business objects of the registry,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"registro/internal/errors"
)

// Transition errors shared by every record that embeds Lifecycle.
var (
	// ErrMotivoRequired is returned when a lifecycle transition is attempted without a reason.
	ErrMotivoRequired = errors.New("motivo is required for lifecycle transitions")
	// ErrAlreadyInactive is returned when deactivating a record that is already inactive.
	ErrAlreadyInactive = errors.New("record is already inactive")
	// ErrAlreadyActive is returned when reactivating a record that is already active.
	ErrAlreadyActive = errors.New("record is already active")
	// ErrGlobalRecord is returned when a shared/system-owned record is targeted by a normal flow.
	ErrGlobalRecord = errors.New("global record cannot be changed through this flow")
)

// Lifecycle is the three-field soft-delete state carried by every mutable
// business record: active flag, human-readable reason for the last
// transition, and the time it happened. Transitions only go through
// Deactivate and Reactivate so the legal-transition table is enforced in one
// place.
type Lifecycle struct {
	Active    bool      // true while the record participates in normal flows.
	Motivo    string    // Reason recorded by the last deactivation or reactivation.
	UpdatedAt time.Time // Timestamp of the last lifecycle change.
}

// NewActiveLifecycle returns the state every record is born with.
func NewActiveLifecycle(now time.Time) Lifecycle {
	return Lifecycle{Active: true, UpdatedAt: now}
}

// InactiveLifecycle returns the state applied to every row a cascade touches,
// carrying the cascade's motivo verbatim.
func InactiveLifecycle(motivo string, now time.Time) Lifecycle {
	return Lifecycle{Active: false, Motivo: motivo, UpdatedAt: now}
}

// IsActive reports whether the record participates in normal flows.
func (l Lifecycle) IsActive() bool {
	return l.Active
}

// Deactivate transitions ACTIVE -> INACTIVE. The motivo is mandatory and the
// transition is refused on an already-inactive record.
func (l *Lifecycle) Deactivate(motivo string, now time.Time) error {
	if motivo == "" {
		return ErrMotivoRequired
	}
	if !l.Active {
		return ErrAlreadyInactive
	}

	l.Active = false
	l.Motivo = motivo
	l.UpdatedAt = now

	return nil
}

// Reactivate transitions INACTIVE -> ACTIVE, recording why the record came
// back. Dependents are never reactivated implicitly; callers bring back the
// root row only.
func (l *Lifecycle) Reactivate(motivo string, now time.Time) error {
	if motivo == "" {
		return ErrMotivoRequired
	}
	if l.Active {
		return ErrAlreadyActive
	}

	l.Active = true
	l.Motivo = motivo
	l.UpdatedAt = now

	return nil
}
