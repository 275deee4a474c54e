package catalog

import (
	"bookstore/internal/model"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultCoverImage = "https://images.pexels.com/photos/1130980/pexels-photo-1130980.jpeg"
	newBookRating     = 4.5
)

// Genres offered by the seller book form.
var FormGenres = []string{
	"Fiction", "Science Fiction", "Mystery", "Romance", "Self-Help",
	"Biography", "Finance", "Literary Fiction", "History", "Philosophy", "Poetry",
}

// BookForm is what a seller submits to list or edit a book.
type BookForm struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genre         string   `json:"genre"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ISBN          string   `json:"isbn"`
	Pages         int      `json:"pages"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
}

func (f BookForm) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, ErrTitleRequired)
	}
	if strings.TrimSpace(f.Author) == "" {
		errs = append(errs, ErrAuthorRequired)
	}
	switch {
	case strings.TrimSpace(f.Genre) == "":
		errs = append(errs, ErrGenreRequired)
	case !slices.Contains(FormGenres, f.Genre):
		errs = append(errs, ErrUnknownGenre)
	}
	if f.Price <= 0 {
		errs = append(errs, ErrInvalidPrice)
	}
	if f.Pages < 0 {
		errs = append(errs, ErrInvalidPages)
	}
	if f.Stock < 0 {
		errs = append(errs, ErrInvalidStock)
	}
	return errors.Join(errs...)
}

// Build turns the form into a catalog record owned by seller. With a non-nil existing book the
// id, rating, review count, publication date and reviews carry over.
func (f BookForm) Build(seller model.User, existing *model.Book, now time.Time) model.Book {
	b := model.Book{
		ID:            "book-" + uuid.NewString(),
		Title:         f.Title,
		Author:        f.Author,
		Genre:         f.Genre,
		Description:   f.Description,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Image:         f.Image,
		Rating:        newBookRating,
		ISBN:          f.ISBN,
		PublishedDate: now.Format("2006-01-02"),
		Pages:         f.Pages,
		Availability:  model.AvailabilityOutOfStock,
		SellerID:      seller.ID,
		SellerName:    seller.DisplayName(),
		Stock:         f.Stock,
	}
	if b.Image == "" {
		b.Image = defaultCoverImage
	}
	if f.Stock > 0 {
		b.Availability = model.AvailabilityInStock
	}
	if existing != nil {
		b.ID = existing.ID
		b.Rating = existing.Rating
		b.ReviewCount = existing.ReviewCount
		b.PublishedDate = existing.PublishedDate
		b.Reviews = existing.Reviews
		b.Featured = existing.Featured
		b.Bestseller = existing.Bestseller
	}
	return b
}

// OwnedBy finds a book in the catalog that the seller may edit.
func OwnedBy(books []model.Book, bookID, sellerID string) (model.Book, error) {
	for _, b := range books {
		if b.ID != bookID {
			continue
		}
		if b.SellerID != sellerID {
			return model.Book{}, ErrNotBookOwner
		}
		return b, nil
	}
	return model.Book{}, ErrBookNotFound
}
