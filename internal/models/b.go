package models

import "encoding/json"

// B is the owning side of the A/B relationship, holding a nullable foreign key to A.
// A is a shallow reference (identifier only) so the object graph never cycles.
type B struct {
	ID  *int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	AID *int64 `gorm:"column:aa_id;index" json:"aId"`
	A   *A     `gorm:"foreignKey:AID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"a,omitempty"`
}

// TableName overrides the table name for B
func (B) TableName() string {
	return "b"
}

func (b *B) GetID() *int64   { return b.ID }
func (b *B) SetID(id *int64) { b.ID = id }

// Equal compares by identifier only
func (b *B) Equal(other *B) bool {
	if b == other {
		return true
	}
	return other != nil && SameID(b.ID, other.ID)
}

// SetA sets the parent and updates the foreign key in the same step
func (b *B) SetA(a *A) {
	if a == nil {
		b.A = nil
		b.AID = nil
		return
	}
	b.A = &A{ID: a.ID}
	b.AID = a.ID
}

// Merge overlays the non-nil fields of patch
func (b *B) Merge(patch *B) {
	if patch.AID != nil {
		b.AID = patch.AID
		b.A = &A{ID: patch.AID}
	}
}

// UnmarshalJSON applies an embedded "a" reference through SetA,
// so {"a":{"id":1}} and {"aId":1} decode to the same foreign key.
func (b *B) UnmarshalJSON(data []byte) error {
	type plain B
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = B(decoded)
	if b.A != nil {
		b.SetA(b.A)
	}
	return nil
}
