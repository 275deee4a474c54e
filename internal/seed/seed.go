// Package seed loads the static catalog, accounts and history every session starts from.
//
// The records live in YAML files embedded into the binary. Nothing here is ever mutated after
// loading: every accessor hands out deep copies.
package seed

import (
	"bookstore/internal/model"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Credential is a demo login entry resolved against the seeded users.
type Credential struct {
	Email    string
	Password string
	User     model.User
}

type State struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

type Country struct {
	Code   string  `yaml:"code" json:"code"`
	Name   string  `yaml:"name" json:"name"`
	States []State `yaml:"states" json:"states"`
}

// Data is the fully resolved seed set.
type Data struct {
	books       []model.Book
	users       []model.User
	credentials []Credential
	orders      []model.Order
	wishlist    []model.WishlistItem
	countries   []Country
}

type credentialRecord struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	UserID   string `yaml:"user_id"`
}

type orderItemRecord struct {
	BookID   string `yaml:"book_id"`
	Quantity int    `yaml:"quantity"`
}

type orderRecord struct {
	ID                string            `yaml:"id"`
	UserID            string            `yaml:"user_id"`
	SellerID          string            `yaml:"seller_id"`
	Items             []orderItemRecord `yaml:"items"`
	Total             float64           `yaml:"total"`
	Status            model.OrderStatus `yaml:"status"`
	OrderDate         string            `yaml:"order_date"`
	EstimatedDelivery *string           `yaml:"estimated_delivery"`
	ShippingAddressID string            `yaml:"shipping_address_id"`
	PaymentMethod     string            `yaml:"payment_method"`
	TrackingNumber    *string           `yaml:"tracking_number"`
}

type wishlistRecord struct {
	ID        string `yaml:"id"`
	UserID    string `yaml:"user_id"`
	BookID    string `yaml:"book_id"`
	AddedDate string `yaml:"added_date"`
}

// Load decodes the seed files compiled into the binary.
func Load() (*Data, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Parse(sub)
}

// MustLoad is Load for program start-up.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse decodes books.yaml, users.yaml, credentials.yaml, orders.yaml, wishlist.yaml and
// countries.yaml from the root of fsys and resolves the references between them.
func Parse(fsys fs.FS) (*Data, error) {
	var (
		books     []model.Book
		users     []model.User
		creds     []credentialRecord
		orders    []orderRecord
		wishlist  []wishlistRecord
		countries []Country
	)

	files := []struct {
		name string
		dst  any
	}{
		{"books.yaml", &books},
		{"users.yaml", &users},
		{"credentials.yaml", &creds},
		{"orders.yaml", &orders},
		{"wishlist.yaml", &wishlist},
		{"countries.yaml", &countries},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	d := &Data{books: books, users: users, countries: countries}

	usersByID := make(map[string]model.User, len(users))
	addressesByID := make(map[string]model.Address)
	for _, u := range users {
		usersByID[u.ID] = u
		for _, a := range u.Addresses {
			addressesByID[a.ID] = a
		}
	}
	booksByID := make(map[string]model.Book, len(books))
	for _, b := range books {
		booksByID[b.ID] = b
	}

	for _, c := range creds {
		u, ok := usersByID[c.UserID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCredentialUser, c.UserID)
		}
		d.credentials = append(d.credentials, Credential{Email: c.Email, Password: c.Password, User: u})
	}

	for _, o := range orders {
		addr, ok := addressesByID[o.ShippingAddressID]
		if !ok {
			return nil, fmt.Errorf("%w: order %s address %s", ErrUnknownOrderAddress, o.ID, o.ShippingAddressID)
		}
		items := make([]model.CartItem, 0, len(o.Items))
		for _, it := range o.Items {
			b, ok := booksByID[it.BookID]
			if !ok {
				return nil, fmt.Errorf("%w: order %s book %s", ErrUnknownOrderBook, o.ID, it.BookID)
			}
			items = append(items, model.CartItem{Book: b, Quantity: it.Quantity})
		}
		d.orders = append(d.orders, model.Order{
			ID:                o.ID,
			UserID:            o.UserID,
			SellerID:          o.SellerID,
			Items:             items,
			Total:             o.Total,
			Status:            o.Status,
			OrderDate:         o.OrderDate,
			EstimatedDelivery: o.EstimatedDelivery,
			ShippingAddress:   addr,
			PaymentMethod:     o.PaymentMethod,
			TrackingNumber:    o.TrackingNumber,
		})
	}

	for _, w := range wishlist {
		b, ok := booksByID[w.BookID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWishlistBook, w.BookID)
		}
		d.wishlist = append(d.wishlist, model.WishlistItem{
			ID:        w.ID,
			UserID:    w.UserID,
			Book:      b,
			AddedDate: w.AddedDate,
		})
	}

	return d, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrReadSeedFile, path.Base(name), err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w %s: %v", ErrDecodeSeedFile, path.Base(name), err)
	}
	return nil
}

func (d *Data) Books() []model.Book {
	out := make([]model.Book, len(d.books))
	for i, b := range d.books {
		out[i] = CopyBook(b)
	}
	return out
}

func (d *Data) Users() []model.User {
	out := make([]model.User, len(d.users))
	for i, u := range d.users {
		out[i] = CopyUser(u)
	}
	return out
}

func (d *Data) Credentials() []Credential {
	out := make([]Credential, len(d.credentials))
	for i, c := range d.credentials {
		c.User = CopyUser(c.User)
		out[i] = c
	}
	return out
}

func (d *Data) Orders() []model.Order {
	out := make([]model.Order, len(d.orders))
	for i, o := range d.orders {
		out[i] = CopyOrder(o)
	}
	return out
}

func (d *Data) Wishlist() []model.WishlistItem {
	out := make([]model.WishlistItem, len(d.wishlist))
	for i, w := range d.wishlist {
		w.Book = CopyBook(w.Book)
		out[i] = w
	}
	return out
}

func (d *Data) Countries() []Country {
	out := make([]Country, len(d.countries))
	for i, c := range d.countries {
		c.States = append([]State(nil), c.States...)
		out[i] = c
	}
	return out
}

// StatesByCountry returns the subdivisions of a country. ok is false for an unknown country code.
func (d *Data) StatesByCountry(code string) (states []State, ok bool) {
	for _, c := range d.countries {
		if c.Code == code {
			return append([]State{}, c.States...), true
		}
	}
	return nil, false
}
