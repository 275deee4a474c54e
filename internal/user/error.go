package user

import "errors"

var (
	// -- Authentication/Authorization --
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("token secret is not set")

	// -- Validation & Input --
	ErrMissingFields        = errors.New("please fill in all required fields")
	ErrBusinessNameRequired = errors.New("business name is required for sellers")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmailExists          = errors.New("email already registered")
)
