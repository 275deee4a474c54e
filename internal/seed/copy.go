package seed

import "bookstore/internal/model"

func CopyBook(b model.Book) model.Book {
	if b.OriginalPrice != nil {
		v := *b.OriginalPrice
		b.OriginalPrice = &v
	}
	if b.Reviews != nil {
		b.Reviews = append([]model.Review(nil), b.Reviews...)
	}
	return b
}

func CopyAddress(a model.Address) model.Address {
	a.Apartment = copyString(a.Apartment)
	a.State = copyString(a.State)
	a.Phone = copyString(a.Phone)
	return a
}

func CopyUser(u model.User) model.User {
	u.BusinessName = copyString(u.BusinessName)
	u.DefaultAddressID = copyString(u.DefaultAddressID)
	if u.IsApproved != nil {
		v := *u.IsApproved
		u.IsApproved = &v
	}
	if u.TotalOrders != nil {
		v := *u.TotalOrders
		u.TotalOrders = &v
	}
	if u.TotalSpent != nil {
		v := *u.TotalSpent
		u.TotalSpent = &v
	}
	if u.Addresses != nil {
		addrs := make([]model.Address, len(u.Addresses))
		for i, a := range u.Addresses {
			addrs[i] = CopyAddress(a)
		}
		u.Addresses = addrs
	}
	u.Preferences.FavoriteGenres = append([]string(nil), u.Preferences.FavoriteGenres...)
	return u
}

func CopyOrder(o model.Order) model.Order {
	items := make([]model.CartItem, len(o.Items))
	for i, it := range o.Items {
		it.Book = CopyBook(it.Book)
		items[i] = it
	}
	o.Items = items
	o.EstimatedDelivery = copyString(o.EstimatedDelivery)
	o.TrackingNumber = copyString(o.TrackingNumber)
	o.ShippingAddress = CopyAddress(o.ShippingAddress)
	return o
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
