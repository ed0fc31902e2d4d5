// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// ListParams carries the optional filtering and pagination arguments shared by
// the public list endpoints. A nil Limit/Offset means "no limit"/"no offset";
// an empty Search matches everything.
type ListParams struct {
	Search string
	Limit  *int
	Offset *int
}
