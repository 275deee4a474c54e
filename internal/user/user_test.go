package user

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"bookstore/internal/model"
	"bookstore/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	d, err := NewDirectory([]seed.Credential{
		{Email: "alice@example.com", Password: "password123", User: model.User{ID: "user-1", Name: "Alice", Role: model.RoleUser}},
		{Email: "admin@example.com", Password: "admin123", User: model.User{ID: "admin-1", Role: model.RoleAdmin}},
	}, WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	return d
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAuthenticate(t *testing.T) {
	d := newTestDirectory(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u, err := d.Authenticate(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := d.Authenticate(ctx, "alice@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := d.Authenticate(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Returns a copy", func(t *testing.T) {
		u, err := d.Authenticate(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		u.Name = "Mallory"

		again, err := d.Authenticate(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Alice", again.Name)
	})
}

func TestRegister(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("Customer", func(t *testing.T) {
		d := newTestDirectory(t)
		u, err := d.Register(ctx, RegisterInput{Name: "New Reader", Email: "new@example.com", Password: "pw"}, now)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(u.ID, "user-"))
		assert.Equal(t, model.RoleUser, u.Role)
		assert.Nil(t, u.IsApproved)
		assert.Nil(t, u.BusinessName)
		assert.Equal(t, "2024-05-01T09:30:00.000Z", u.JoinDate)
		assert.Equal(t, []string{"Fiction"}, u.Preferences.FavoriteGenres)
		assert.True(t, u.Preferences.Notifications)

		require.Len(t, u.Addresses, 1)
		home := u.Addresses[0]
		assert.Equal(t, "Home", home.Label)
		assert.Equal(t, "123 New User Street", home.Street)
		assert.Equal(t, "Demo City", home.City)
		assert.Equal(t, "90210", home.ZipCode)
		assert.True(t, home.IsDefault)
		require.NotNil(t, u.DefaultAddressID)
		assert.Equal(t, home.ID, *u.DefaultAddressID)

		logged, err := d.Authenticate(ctx, "new@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, u.ID, logged.ID)
	})

	t.Run("Seller starts unapproved", func(t *testing.T) {
		d := newTestDirectory(t)
		u, err := d.Register(ctx, RegisterInput{
			Name: "Shop Owner", Email: "shop@example.com", Password: "pw",
			Role: model.RoleSeller, BusinessName: "Corner Books",
		}, now)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(u.ID, "seller-"))
		require.NotNil(t, u.BusinessName)
		assert.Equal(t, "Corner Books", *u.BusinessName)
		assert.False(t, u.Approved())
		require.NotNil(t, u.IsApproved)
	})

	t.Run("Validation", func(t *testing.T) {
		d := newTestDirectory(t)

		_, err := d.Register(ctx, RegisterInput{Email: "x@example.com", Password: "pw"}, now)
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = d.Register(ctx, RegisterInput{Name: "S", Email: "s@example.com", Password: "pw", Role: model.RoleSeller}, now)
		assert.ErrorIs(t, err, ErrBusinessNameRequired)

		_, err = d.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw", Role: model.RoleAdmin}, now)
		assert.ErrorIs(t, err, ErrInvalidRole)

		_, err = d.Register(ctx, RegisterInput{Name: "A", Email: "alice@example.com", Password: "pw"}, now)
		assert.ErrorIs(t, err, ErrEmailExists)

		_, err = d.Authenticate(ctx, "s@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "rejected registrations leave no account")
		_, err = d.Authenticate(ctx, "alice@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAvatar(t *testing.T) {
	uri := Avatar("ada lovelace")
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), ">AL</text>")
}

func TestToken(t *testing.T) {
	token, err := GenerateToken("sess-1", "testsecret", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	t.Run("Success", func(t *testing.T) {
		claims, err := ParseToken(token, "testsecret")
		require.NoError(t, err)
		assert.Equal(t, "sess-1", claims.SessionID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := ParseToken(token, "other")
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("invalid-token-string", "testsecret")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired, err := GenerateToken("sess-1", "testsecret", -time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(expired, "testsecret")
		assert.Error(t, err)
	})

	t.Run("No secret", func(t *testing.T) {
		_, err := GenerateToken("sess-1", "", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)
		_, err = ParseToken(token, "")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
