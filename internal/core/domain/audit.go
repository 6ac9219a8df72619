package domain

import "time"

const SystemActor = "system"

// Audit carries identity, provenance and soft-delete state for every
// persisted entity.
type Audit struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
	ModifiedAt time.Time `json:"modifiedAt"`
	ModifiedBy string    `json:"modifiedBy"`
	IsActive   bool      `json:"isActive"`
}

func NewAudit(actor string, now time.Time) Audit {
	if actor == "" {
		actor = SystemActor
	}

	return Audit{
		CreatedAt:  now,
		CreatedBy:  actor,
		ModifiedAt: now,
		ModifiedBy: actor,
		IsActive:   true,
	}
}

// Touch records a modification. ModifiedAt never goes before CreatedAt.
func (a *Audit) Touch(actor string, now time.Time) {
	if actor == "" {
		actor = SystemActor
	}

	if now.Before(a.CreatedAt) {
		now = a.CreatedAt
	}

	a.ModifiedAt = now
	a.ModifiedBy = actor
}

func (a *Audit) Deactivate(actor string, now time.Time) {
	a.IsActive = false
	a.Touch(actor, now)
}
