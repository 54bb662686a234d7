package models

import "encoding/json"

// A is the parent side of the A/B relationship.
// Bs is a derived view filled by eager reads; it is never persisted from this side.
type A struct {
	ID *int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Bs []*B   `gorm:"-" json:"bs,omitempty"`
}

// MarshalJSON writes bs only once the collection is loaded, as [] when it has no children
func (a A) MarshalJSON() ([]byte, error) {
	type plain A
	if a.Bs == nil {
		return json.Marshal(plain(a))
	}
	return json.Marshal(struct {
		plain
		Bs []*B `json:"bs"`
	}{plain(a), a.Bs})
}

// TableName overrides the table name for A
func (A) TableName() string {
	return "a"
}

func (a *A) GetID() *int64   { return a.ID }
func (a *A) SetID(id *int64) { a.ID = id }

// Equal compares by identifier only
func (a *A) Equal(other *A) bool {
	if a == other {
		return true
	}
	return other != nil && SameID(a.ID, other.ID)
}

// Merge has nothing to overlay: A carries no scalar fields
func (a *A) Merge(_ *A) {}

// AddB attaches b to the in-memory collection and points its foreign key at a
func (a *A) AddB(b *B) *A {
	for _, existing := range a.Bs {
		if existing == b {
			b.SetA(a)
			return a
		}
	}
	a.Bs = append(a.Bs, b)
	b.SetA(a)
	return a
}

// RemoveB detaches b from the collection and nulls its foreign key
func (a *A) RemoveB(b *B) *A {
	for i, existing := range a.Bs {
		if existing == b || existing.Equal(b) {
			a.Bs = append(a.Bs[:i], a.Bs[i+1:]...)
			break
		}
	}
	b.SetA(nil)
	return a
}

// SetBs replaces the collection; children that leave it lose their parent
func (a *A) SetBs(bs []*B) {
	for _, old := range a.Bs {
		old.SetA(nil)
	}
	for _, b := range bs {
		b.SetA(a)
	}
	a.Bs = bs
}
