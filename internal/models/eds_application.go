package models

import "github.com/google/uuid"

// EDSApplication describes an application tile of the EDS portal
type EDSApplication struct {
	ID              *string `gorm:"primaryKey;size:36" json:"id"`
	Name            *string `gorm:"size:255" json:"name"`
	Logo            []byte  `json:"logo"`
	LogoContentType *string `gorm:"size:255;not null" json:"logoContentType"`
	Link            *string `gorm:"size:2048" json:"link"`
	Description     *string `gorm:"size:4096" json:"description"`
	Category        *string `gorm:"size:255" json:"category"`
	AuthorizedRole  *string `gorm:"size:255" json:"authorizedRole"`
	NeedAuth        *bool   `json:"needAuth"`
	DefaultHidden   *bool   `json:"defaultHidden"`
}

// TableName overrides the table name for EDSApplication
func (EDSApplication) TableName() string {
	return "eds_application"
}

func (e *EDSApplication) GetID() *string   { return e.ID }
func (e *EDSApplication) SetID(id *string) { e.ID = id }

// AssignNewID gives the application a random UUID identifier
func (e *EDSApplication) AssignNewID() {
	e.ID = ptr(uuid.NewString())
}

func (e *EDSApplication) Equal(other *EDSApplication) bool {
	if e == other {
		return true
	}
	return other != nil && SameID(e.ID, other.ID)
}

// Validate enforces the required logo content type
func (e *EDSApplication) Validate() error {
	if e.LogoContentType == nil {
		return &ValidationError{Field: "logoContentType", Message: "must not be null"}
	}
	return nil
}

// Merge overlays the non-nil fields of patch
func (e *EDSApplication) Merge(patch *EDSApplication) {
	if patch.Name != nil {
		e.Name = patch.Name
	}
	if patch.Logo != nil {
		e.Logo = patch.Logo
	}
	if patch.LogoContentType != nil {
		e.LogoContentType = patch.LogoContentType
	}
	if patch.Link != nil {
		e.Link = patch.Link
	}
	if patch.Description != nil {
		e.Description = patch.Description
	}
	if patch.Category != nil {
		e.Category = patch.Category
	}
	if patch.AuthorizedRole != nil {
		e.AuthorizedRole = patch.AuthorizedRole
	}
	if patch.NeedAuth != nil {
		e.NeedAuth = patch.NeedAuth
	}
	if patch.DefaultHidden != nil {
		e.DefaultHidden = patch.DefaultHidden
	}
}
