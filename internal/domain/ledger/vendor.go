package ledger

import (
	"strings"

	"github.com/joshuaswanson/inventory-tracker/internal/domain/shared"
)

// Vendor represents a supplier that purchases may reference.
// Vendors are referenced, not owned: a Purchase keeps working when its
// vendor is deleted, it simply loses the reference.
type Vendor struct {
	shared.BaseEntity
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	Notes       string
}

// NewVendor creates a new Vendor
func NewVendor(name string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}

	return &Vendor{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
