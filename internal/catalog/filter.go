package catalog

import (
	"bookstore/internal/model"
	"sort"
	"strings"
)

// AllGenres disables the genre filter.
const AllGenres = "All"

// Filter keeps books of the given genre (exact match, AllGenres for any) whose title, author or
// genre contains query, case-insensitively. The query is matched as given, whitespace included.
func Filter(books []model.Book, query, genre string) []model.Book {
	q := strings.ToLower(query)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if genre != AllGenres && b.Genre != genre {
			continue
		}
		if !Matches(b, q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Matches expects q already lower-cased.
func Matches(b model.Book, q string) bool {
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Genre), q)
}

func Featured(books []model.Book, limit int) []model.Book {
	return take(books, limit, func(b model.Book) bool { return b.Featured })
}

func Bestsellers(books []model.Book, limit int) []model.Book {
	return take(books, limit, func(b model.Book) bool { return b.Bestseller })
}

func BySeller(books []model.Book, sellerID string) []model.Book {
	return take(books, -1, func(b model.Book) bool { return b.SellerID == sellerID })
}

// Genres lists the distinct genres in the catalog, sorted, after AllGenres.
func Genres(books []model.Book) []string {
	seen := map[string]bool{}
	var genres []string
	for _, b := range books {
		if b.Genre == "" || seen[b.Genre] {
			continue
		}
		seen[b.Genre] = true
		genres = append(genres, b.Genre)
	}
	sort.Strings(genres)
	return append([]string{AllGenres}, genres...)
}

// take keeps matching books in order; a negative limit means no limit.
func take(books []model.Book, limit int, keep func(model.Book) bool) []model.Book {
	out := []model.Book{}
	for _, b := range books {
		if limit >= 0 && len(out) == limit {
			break
		}
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
