// Package dashboard computes the aggregate figures shown on the seller and admin dashboards.
// Everything is derived from a state snapshot on demand; nothing is stored.
package dashboard

import (
	"bookstore/internal/catalog"
	"bookstore/internal/model"
	"bookstore/internal/store"
	"strings"
)

const recentLimit = 5

type SellerStats struct {
	TotalBooks    int           `json:"totalBooks"`
	TotalOrders   int           `json:"totalOrders"`
	TotalRevenue  float64       `json:"totalRevenue"`
	PendingOrders int           `json:"pendingOrders"`
	AverageRating float64       `json:"averageRating"`
	RecentOrders  []model.Order `json:"recentOrders"`
	Books         []model.Book  `json:"books"`
}

type AdminStats struct {
	TotalUsers     int           `json:"totalUsers"`
	TotalSellers   int           `json:"totalSellers"`
	TotalBooks     int           `json:"totalBooks"`
	TotalOrders    int           `json:"totalOrders"`
	TotalRevenue   float64       `json:"totalRevenue"`
	PendingSellers int           `json:"pendingSellers"`
	RecentOrders   []model.Order `json:"recentOrders"`
	RecentUsers    []model.User  `json:"recentUsers"`
}

func ForSeller(s store.State, sellerID string) SellerStats {
	books := catalog.BySeller(s.Books, sellerID)
	orders := OrdersForSeller(s.Orders, sellerID)

	stats := SellerStats{
		TotalBooks:   len(books),
		TotalOrders:  len(orders),
		TotalRevenue: Revenue(orders),
		RecentOrders: head(orders, recentLimit),
		Books:        books,
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	if len(books) > 0 {
		var sum float64
		for _, b := range books {
			sum += b.Rating
		}
		stats.AverageRating = sum / float64(len(books))
	}
	return stats
}

func ForAdmin(s store.State) AdminStats {
	stats := AdminStats{
		TotalBooks:   len(s.Books),
		TotalOrders:  len(s.Orders),
		TotalRevenue: Revenue(s.Orders),
		RecentOrders: head(s.Orders, recentLimit),
		RecentUsers:  []model.User{},
	}
	for _, u := range s.Users {
		switch u.Role {
		case model.RoleUser:
			stats.TotalUsers++
			if len(stats.RecentUsers) < recentLimit {
				stats.RecentUsers = append(stats.RecentUsers, u)
			}
		case model.RoleSeller:
			stats.TotalSellers++
			if !u.Approved() {
				stats.PendingSellers++
			}
		}
	}
	return stats
}

func Revenue(orders []model.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

func OrdersForSeller(orders []model.Order, sellerID string) []model.Order {
	out := []model.Order{}
	for _, o := range orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out
}

// UsersByRole lists users of one role; an empty role lists everyone.
func UsersByRole(users []model.User, role model.Role, query string) []model.User {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []model.User{}
	for _, u := range users {
		if role != "" && u.Role != role {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(u.Name), q) && !strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func head[T any](in []T, n int) []T {
	if len(in) <= n {
		return append([]T{}, in...)
	}
	return append([]T{}, in[:n]...)
}
