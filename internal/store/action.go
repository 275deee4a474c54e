package store

import "bookstore/internal/model"

type ActionType string

const (
	TypeLogin              ActionType = "LOGIN"
	TypeLogout             ActionType = "LOGOUT"
	TypeSetLoading         ActionType = "SET_LOADING"
	TypeAddToCart          ActionType = "ADD_TO_CART"
	TypeRemoveFromCart     ActionType = "REMOVE_FROM_CART"
	TypeUpdateCartQuantity ActionType = "UPDATE_CART_QUANTITY"
	TypeClearCart          ActionType = "CLEAR_CART"
	TypeAddToWishlist      ActionType = "ADD_TO_WISHLIST"
	TypeRemoveFromWishlist ActionType = "REMOVE_FROM_WISHLIST"
	TypeSetSearchQuery     ActionType = "SET_SEARCH_QUERY"
	TypeSetSelectedGenre   ActionType = "SET_SELECTED_GENRE"
	TypePlaceOrder         ActionType = "PLACE_ORDER"
	TypeUpdateOrderStatus  ActionType = "UPDATE_ORDER_STATUS"
	TypeSetDeliveryAddress ActionType = "SET_DELIVERY_ADDRESS"
	TypeAddAddress         ActionType = "ADD_ADDRESS"
	TypeUpdateAddress      ActionType = "UPDATE_ADDRESS"
	TypeDeleteAddress      ActionType = "DELETE_ADDRESS"
	TypeSetDefaultAddress  ActionType = "SET_DEFAULT_ADDRESS"
	TypeAddBook            ActionType = "ADD_BOOK"
	TypeUpdateBook         ActionType = "UPDATE_BOOK"
	TypeDeleteBook         ActionType = "DELETE_BOOK"
	TypeApproveSeller      ActionType = "APPROVE_SELLER"
	TypeUpdateUser         ActionType = "UPDATE_USER"
	TypeDeleteUser         ActionType = "DELETE_USER"
)

// Action is one requested state change. The set is closed: only this package can add variants.
type Action interface {
	Type() ActionType
	action()
}

type (
	Login      struct{ User model.User }
	Logout     struct{}
	SetLoading struct{ Loading bool }

	AddToCart          struct{ Book model.Book }
	RemoveFromCart     struct{ BookID string }
	UpdateCartQuantity struct {
		BookID   string
		Quantity int
	}
	ClearCart struct{}

	AddToWishlist      struct{ Book model.Book }
	RemoveFromWishlist struct{ BookID string }

	SetSearchQuery   struct{ Query string }
	SetSelectedGenre struct{ Genre string }

	PlaceOrder        struct{ Order model.Order }
	UpdateOrderStatus struct {
		OrderID string
		Status  model.OrderStatus
	}

	SetDeliveryAddress struct{ Address model.Address }
	AddAddress         struct{ Address model.Address }
	UpdateAddress      struct{ Address model.Address }
	DeleteAddress      struct{ AddressID string }
	SetDefaultAddress  struct{ AddressID string }

	AddBook    struct{ Book model.Book }
	UpdateBook struct{ Book model.Book }
	DeleteBook struct{ BookID string }

	ApproveSeller struct{ UserID string }
	UpdateUser    struct{ User model.User }
	DeleteUser    struct{ UserID string }
)

func (Login) Type() ActionType              { return TypeLogin }
func (Logout) Type() ActionType             { return TypeLogout }
func (SetLoading) Type() ActionType         { return TypeSetLoading }
func (AddToCart) Type() ActionType          { return TypeAddToCart }
func (RemoveFromCart) Type() ActionType     { return TypeRemoveFromCart }
func (UpdateCartQuantity) Type() ActionType { return TypeUpdateCartQuantity }
func (ClearCart) Type() ActionType          { return TypeClearCart }
func (AddToWishlist) Type() ActionType      { return TypeAddToWishlist }
func (RemoveFromWishlist) Type() ActionType { return TypeRemoveFromWishlist }
func (SetSearchQuery) Type() ActionType     { return TypeSetSearchQuery }
func (SetSelectedGenre) Type() ActionType   { return TypeSetSelectedGenre }
func (PlaceOrder) Type() ActionType         { return TypePlaceOrder }
func (UpdateOrderStatus) Type() ActionType  { return TypeUpdateOrderStatus }
func (SetDeliveryAddress) Type() ActionType { return TypeSetDeliveryAddress }
func (AddAddress) Type() ActionType         { return TypeAddAddress }
func (UpdateAddress) Type() ActionType      { return TypeUpdateAddress }
func (DeleteAddress) Type() ActionType      { return TypeDeleteAddress }
func (SetDefaultAddress) Type() ActionType  { return TypeSetDefaultAddress }
func (AddBook) Type() ActionType            { return TypeAddBook }
func (UpdateBook) Type() ActionType         { return TypeUpdateBook }
func (DeleteBook) Type() ActionType         { return TypeDeleteBook }
func (ApproveSeller) Type() ActionType      { return TypeApproveSeller }
func (UpdateUser) Type() ActionType         { return TypeUpdateUser }
func (DeleteUser) Type() ActionType         { return TypeDeleteUser }

func (Login) action()              {}
func (Logout) action()             {}
func (SetLoading) action()         {}
func (AddToCart) action()          {}
func (RemoveFromCart) action()     {}
func (UpdateCartQuantity) action() {}
func (ClearCart) action()          {}
func (AddToWishlist) action()      {}
func (RemoveFromWishlist) action() {}
func (SetSearchQuery) action()     {}
func (SetSelectedGenre) action()   {}
func (PlaceOrder) action()         {}
func (UpdateOrderStatus) action()  {}
func (SetDeliveryAddress) action() {}
func (AddAddress) action()         {}
func (UpdateAddress) action()      {}
func (DeleteAddress) action()      {}
func (SetDefaultAddress) action()  {}
func (AddBook) action()            {}
func (UpdateBook) action()         {}
func (DeleteBook) action()         {}
func (ApproveSeller) action()      {}
func (UpdateUser) action()         {}
func (DeleteUser) action()         {}
