package user

import (
	"bookstore/internal/logger"
	"bookstore/internal/model"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type RegisterInput struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	Role         model.Role `json:"role"`
	BusinessName string     `json:"businessName"`
}

// Register creates a customer or seller account and makes it available for login.
// Sellers start out unapproved.
func (d *Directory) Register(ctx context.Context, in RegisterInput, now time.Time) (model.User, error) {
	log := logger.FromCtx(ctx).With(zap.String("service", "user"))

	if in.Role == "" {
		in.Role = model.RoleUser
	}
	if in.Role != model.RoleUser && in.Role != model.RoleSeller {
		return model.User{}, ErrInvalidRole
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return model.User{}, ErrMissingFields
	}
	if in.Role == model.RoleSeller && in.BusinessName == "" {
		return model.User{}, ErrBusinessNameRequired
	}

	u := newUser(in, now)
	if err := d.add(in.Email, in.Password, u); err != nil {
		log.Warn("register failed", zap.String("email", in.Email), zap.Error(err))
		return model.User{}, err
	}

	log.Info("user registered", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func newUser(in RegisterInput, now time.Time) model.User {
	state := "CA"
	addrID := "addr-" + uuid.NewString()

	u := model.User{
		ID:     fmt.Sprintf("%s-%s", in.Role, uuid.NewString()),
		Name:   in.Name,
		Email:  in.Email,
		Avatar: Avatar(in.Name),
		Role:   in.Role,
		Addresses: []model.Address{{
			ID:        addrID,
			Label:     "Home",
			Name:      in.Name,
			Street:    "123 New User Street",
			City:      "Demo City",
			State:     &state,
			ZipCode:   "90210",
			Country:   "US",
			IsDefault: true,
		}},
		DefaultAddressID: &addrID,
		Preferences: model.Preferences{
			FavoriteGenres: []string{"Fiction"},
			Notifications:  true,
		},
		JoinDate: now.UTC().Format(isoMillis),
	}
	if in.Role == model.RoleSeller {
		business := in.BusinessName
		approved := false
		u.BusinessName = &business
		u.IsApproved = &approved
	}
	return u
}

// Avatar renders the initials of name as an inline SVG data URI.
func Avatar(name string) string {
	var initials strings.Builder
	for _, part := range strings.Fields(name) {
		initials.WriteString(strings.ToUpper(string([]rune(part)[0])))
	}
	svg := fmt.Sprintf(`<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="100" height="100" fill="#6366F1"/>`+
		`<text x="50" y="50" font-family="Arial" font-size="36" font-weight="bold" `+
		`text-anchor="middle" dominant-baseline="middle" fill="white">%s</text></svg>`, initials.String())
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
