package model

type Address struct {
	ID        string  `json:"id" yaml:"id"`
	Label     string  `json:"label" yaml:"label"`
	Name      string  `json:"name" yaml:"name"`
	Street    string  `json:"street" yaml:"street"`
	Apartment *string `json:"apartment,omitempty" yaml:"apartment"`
	City      string  `json:"city" yaml:"city"`
	State     *string `json:"state,omitempty" yaml:"state"`
	ZipCode   string  `json:"zipCode" yaml:"zip_code"`
	Country   string  `json:"country" yaml:"country"`
	Phone     *string `json:"phone,omitempty" yaml:"phone"`
	IsDefault bool    `json:"isDefault" yaml:"is_default"`
}
