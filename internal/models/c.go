package models

// C is a standalone entity with only an identifier
type C struct {
	ID *int64 `gorm:"primaryKey;autoIncrement" json:"id"`
}

// TableName overrides the table name for C
func (C) TableName() string {
	return "c"
}

func (c *C) GetID() *int64   { return c.ID }
func (c *C) SetID(id *int64) { c.ID = id }

func (c *C) Equal(other *C) bool {
	if c == other {
		return true
	}
	return other != nil && SameID(c.ID, other.ID)
}

func (c *C) Merge(_ *C) {}

// D is a standalone entity with only an identifier
type D struct {
	ID *int64 `gorm:"primaryKey;autoIncrement" json:"id"`
}

// TableName overrides the table name for D
func (D) TableName() string {
	return "d"
}

func (d *D) GetID() *int64   { return d.ID }
func (d *D) SetID(id *int64) { d.ID = id }

func (d *D) Equal(other *D) bool {
	if d == other {
		return true
	}
	return other != nil && SameID(d.ID, other.ID)
}

func (d *D) Merge(_ *D) {}
