package catalog

import (
	"bookstore/internal/model"
	"sort"
)

type SortOption string

const (
	SortFeatured    SortOption = "featured"
	SortPriceAsc    SortOption = "price-asc"
	SortPriceDesc   SortOption = "price-desc"
	SortRating      SortOption = "rating"
	SortNewest      SortOption = "newest"
	SortBestsellers SortOption = "bestsellers"
)

func (o SortOption) Valid() bool {
	switch o {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortRating, SortNewest, SortBestsellers:
		return true
	}
	return false
}

// Sort returns a sorted copy; ties keep catalog order. Unknown options keep catalog order.
func Sort(books []model.Book, opt SortOption) []model.Book {
	out := append([]model.Book(nil), books...)

	var less func(a, b model.Book) bool
	switch opt {
	case SortFeatured:
		less = func(a, b model.Book) bool { return a.Featured && !b.Featured }
	case SortPriceAsc:
		less = func(a, b model.Book) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b model.Book) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b model.Book) bool { return a.Rating > b.Rating }
	case SortNewest:
		// ISO dates compare lexically.
		less = func(a, b model.Book) bool { return a.PublishedDate > b.PublishedDate }
	case SortBestsellers:
		less = func(a, b model.Book) bool { return a.Bestseller && !b.Bestseller }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
