// Package address validates the address form and turns it into a saved address.
package address

import (
	"bookstore/internal/model"
	"strings"

	"github.com/google/uuid"
)

type Form struct {
	Label     string `json:"label"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// ToAddress builds the address to save. Editing keeps the id and default flag of existing.
func (f Form) ToAddress(existing *model.Address) model.Address {
	a := model.Address{
		ID:        "addr-" + uuid.NewString(),
		Label:     f.Label,
		Name:      f.Name,
		Street:    f.Street,
		Apartment: optional(f.Apartment),
		City:      f.City,
		State:     optional(f.State),
		ZipCode:   f.ZipCode,
		Country:   f.Country,
		Phone:     optional(f.Phone),
	}
	if existing != nil {
		a.ID = existing.ID
		a.IsDefault = existing.IsDefault
	}
	return a
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
