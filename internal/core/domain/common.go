package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"updatedAt"`
	LastUpdatedBy string    `json:"updatedBy"` // UserID reference
}

// Base is embedded by every resource entity. It carries the generated
// identifier, the soft-delete flag and the audit fields, and satisfies the
// stamping interface the generic resource service works against.
type Base struct {
	ID     string `json:"id"`
	Active bool   `json:"isActive"`
	AuditFields
}

// EntityID returns the entity identifier.
func (b *Base) EntityID() string { return b.ID }

// SetEntityID sets the entity identifier.
func (b *Base) SetEntityID(id string) { b.ID = id }

// StampCreated initializes the audit fields and activates the entity.
func (b *Base) StampCreated(userID string, now time.Time) {
	b.Active = true
	b.CreatedAt = now
	b.CreatedBy = userID
	b.LastUpdatedAt = now
	b.LastUpdatedBy = userID
}

// StampUpdated refreshes the last-updated audit fields.
func (b *Base) StampUpdated(userID string, now time.Time) {
	b.LastUpdatedAt = now
	b.LastUpdatedBy = userID
}
