package model

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the three fixed roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type Preferences struct {
	FavoriteGenres []string `json:"favoriteGenres" yaml:"favorite_genres"`
	Notifications  bool     `json:"notifications" yaml:"notifications"`
}

type User struct {
	ID               string      `json:"id" yaml:"id"`
	Name             string      `json:"name" yaml:"name"`
	Email            string      `json:"email" yaml:"email"`
	Avatar           string      `json:"avatar,omitempty" yaml:"avatar"`
	Role             Role        `json:"role" yaml:"role"`
	BusinessName     *string     `json:"businessName,omitempty" yaml:"business_name"`
	Addresses        []Address   `json:"addresses,omitempty" yaml:"addresses"`
	DefaultAddressID *string     `json:"defaultAddressId,omitempty" yaml:"default_address_id"`
	Preferences      Preferences `json:"preferences" yaml:"preferences"`
	IsApproved       *bool       `json:"isApproved,omitempty" yaml:"is_approved"`
	JoinDate         string      `json:"joinDate" yaml:"join_date"`
	TotalOrders      *int        `json:"totalOrders,omitempty" yaml:"total_orders"`
	TotalSpent       *float64    `json:"totalSpent,omitempty" yaml:"total_spent"`
}

// FindAddress returns the address with the given id, if the user owns one.
func (u User) FindAddress(id string) (Address, bool) {
	for _, a := range u.Addresses {
		if a.ID == id {
			return a, true
		}
	}
	return Address{}, false
}

// DisplayName is the business name for sellers that have one, the personal name otherwise.
func (u User) DisplayName() string {
	if u.BusinessName != nil && *u.BusinessName != "" {
		return *u.BusinessName
	}
	return u.Name
}

// Approved treats a missing flag as not approved.
func (u User) Approved() bool {
	return u.IsApproved != nil && *u.IsApproved
}
