package api

import (
	"net/http"
	"testing"

	"bookstore/internal/model"
	"bookstore/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := newClient(t, newTestRouter(t, nil))

	t.Run("List all", func(t *testing.T) {
		resp := decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books", nil))
		assert.Equal(t, 8, resp.Total)
		assert.Equal(t, "All", resp.Genre)
	})

	t.Run("Query parameters", func(t *testing.T) {
		resp := decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books?genre=Mystery", nil))
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "3", resp.Books[0].ID)

		resp = decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books?sort=price-asc", nil))
		require.Len(t, resp.Books, 8)
		assert.Equal(t, "8", resp.Books[0].ID)
	})

	t.Run("Blank query is matched literally", func(t *testing.T) {
		resp := decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books?q=%20%20%20", nil))
		assert.Zero(t, resp.Total)

		resp = decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books?genre=", nil))
		assert.Zero(t, resp.Total, "only All disables the genre filter")
	})

	t.Run("Unknown sort", func(t *testing.T) {
		rr := c.do(http.MethodGet, "/api/books?sort=random", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Stored filters apply when parameters are absent", func(t *testing.T) {
		rr := c.do(http.MethodPut, "/api/filters", map[string]string{"genre": "History"})
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books", nil))
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "6", resp.Books[0].ID)

		resp = decodeBody[bookListResponse](t, c.do(http.MethodGet, "/api/books?genre=All", nil))
		assert.Equal(t, 8, resp.Total)

		c.do(http.MethodPut, "/api/filters", map[string]string{"genre": "All"})
	})

	t.Run("Home sections", func(t *testing.T) {
		featured := decodeBody[[]model.Book](t, c.do(http.MethodGet, "/api/books/featured", nil))
		assert.Equal(t, []string{"1", "2", "4", "6"}, bookIDs(featured))

		best := decodeBody[[]model.Book](t, c.do(http.MethodGet, "/api/books/bestsellers", nil))
		assert.Equal(t, []string{"1", "3", "4", "6"}, bookIDs(best))
	})

	t.Run("Single book", func(t *testing.T) {
		resp := decodeBody[bookResponse](t, c.do(http.MethodGet, "/api/books/3", nil))
		assert.Equal(t, "3", resp.Book.ID)
		assert.False(t, resp.InWishlist)

		rr := c.do(http.MethodGet, "/api/books/404", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "not_found", decodeBody[utils.ErrorBody](t, rr).Error)
	})

	t.Run("Genres", func(t *testing.T) {
		genres := decodeBody[[]string](t, c.do(http.MethodGet, "/api/genres", nil))
		require.NotEmpty(t, genres)
		assert.Equal(t, "All", genres[0])
		assert.Contains(t, genres, "Philosophy")
	})
}

func bookIDs(books []model.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}
