package domain

import "time"

// Meta carries the fields shared by every stored record. IDs are opaque
// strings generated by the storage package and never change after creation.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) EntityID() string { return m.ID }

func (m *Meta) CreatedTime() time.Time { return m.CreatedAt }

// StampNew marks a freshly created record; createdAt equals updatedAt.
func (m *Meta) StampNew(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdated re-asserts identity and creation time over new field values.
// Only updatedAt moves forward.
func (m *Meta) StampUpdated(id string, createdAt, now time.Time) {
	m.ID = id
	m.CreatedAt = createdAt
	m.UpdatedAt = now
}

// Entity is implemented by every record type through its embedded Meta.
type Entity interface {
	EntityID() string
	CreatedTime() time.Time
	StampNew(id string, now time.Time)
	StampUpdated(id string, createdAt, now time.Time)
}
