package utils

import (
	"bookstore/internal/store"
	"context"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	StoreKey     contextKey = "store"
)

// SetSessionContext attaches the caller's session (called by middleware).
func SetSessionContext(ctx context.Context, id string, st *store.Store) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, id)
	ctx = context.WithValue(ctx, StoreKey, st)
	return ctx
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}

func GetStoreFromContext(ctx context.Context) (*store.Store, bool) {
	st, ok := ctx.Value(StoreKey).(*store.Store)
	return st, ok && st != nil
}
