package model

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type CartItem struct {
	Book     Book `json:"book" yaml:"book"`
	Quantity int  `json:"quantity" yaml:"quantity"`
}

type WishlistItem struct {
	ID        string `json:"id" yaml:"id"`
	UserID    string `json:"userId" yaml:"user_id"`
	Book      Book   `json:"book" yaml:"book"`
	AddedDate string `json:"addedDate" yaml:"added_date"`
}

// Order keeps a copy of the shipping address, not a reference into the user's list.
type Order struct {
	ID                string      `json:"id" yaml:"id"`
	UserID            string      `json:"userId" yaml:"user_id"`
	SellerID          string      `json:"sellerId" yaml:"seller_id"`
	Items             []CartItem  `json:"items" yaml:"items"`
	Total             float64     `json:"total" yaml:"total"`
	Status            OrderStatus `json:"status" yaml:"status"`
	OrderDate         string      `json:"orderDate" yaml:"order_date"`
	EstimatedDelivery *string     `json:"estimatedDelivery,omitempty" yaml:"estimated_delivery"`
	ShippingAddress   Address     `json:"shippingAddress" yaml:"shipping_address"`
	PaymentMethod     string      `json:"paymentMethod" yaml:"payment_method"`
	TrackingNumber    *string     `json:"trackingNumber,omitempty" yaml:"tracking_number"`
}

type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}
