// entity.go
//
// Generated entity CRUD REST services for the jam-build data tier
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-entities.
// jam-build-entities is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-entities is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-entities.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package models

// Entity is implemented by every persisted record type.
// A nil identifier marks an entity that has not been stored yet.
type Entity[ID comparable] interface {
	GetID() *ID
	SetID(id *ID)
}

// IDAssigner is implemented by entities whose identifier is generated by
// the service at insert time instead of by the database.
type IDAssigner interface {
	AssignNewID()
}

// Validator is implemented by entities with field constraints checked on
// create and full update.
type Validator interface {
	Validate() error
}

// SameID reports whether two identifiers are both set and equal
func SameID[ID comparable](a, b *ID) bool {
	return a != nil && b != nil && *a == *b
}

// IsNew reports whether the entity has no identifier yet
func IsNew[ID comparable](e Entity[ID]) bool {
	return e.GetID() == nil
}

// ValidationError describes a violated field constraint
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func ptr[V any](v V) *V {
	return &v
}
