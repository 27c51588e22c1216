package utils

import (
	"context"
	"errors"

	"ot-inventory/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrUserIDNotFound     = errors.New("userID not found in context")
	ErrUserIDNotString    = errors.New("userID in context is not a string")
	ErrUsernameNotFound   = errors.New("username not found in context")
	ErrUsernameNotString  = errors.New("username in context is not a string")
	ErrRoleNotFound       = errors.New("role not found in context")
	ErrRoleNotString      = errors.New("role in context is not a string")
	ErrRequestIDNotFound  = errors.New("requestID not found in context")
	ErrRequestIDNotString = errors.New("requestID in context is not a string")
)

// GetUserIDFromContext retrieves the user ID from the context.
// It returns the user ID and an error if the user ID is not found or is not a string.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.UserIDKey)
	if val == nil {
		return "", ErrUserIDNotFound
	}
	userID, ok := val.(string)
	if !ok {
		return "", ErrUserIDNotString
	}
	return userID, nil
}

// GetUsernameFromContext retrieves the username from the context.
func GetUsernameFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.UsernameKey)
	if val == nil {
		return "", ErrUsernameNotFound
	}
	username, ok := val.(string)
	if !ok {
		return "", ErrUsernameNotString
	}
	return username, nil
}

// GetRoleFromContext retrieves the role from the context.
func GetRoleFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RoleKey)
	if val == nil {
		return "", ErrRoleNotFound
	}
	role, ok := val.(string)
	if !ok {
		return "", ErrRoleNotString
	}
	return role, nil
}

// GetRequestIDFromContext retrieves the request ID from the context.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// Context builder functions

// WithUserID adds user ID to context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextkeys.UserIDKey, userID)
}

// WithUsername adds username to context
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, contextkeys.UsernameKey, username)
}

// WithRole adds role to context
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, contextkeys.RoleKey, role)
}

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// Optional getters that return default values instead of errors

// GetUserIDOrDefault retrieves the user ID from context or returns a default value
func GetUserIDOrDefault(ctx context.Context, def string) string {
	if v, err := GetUserIDFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetUsernameOrDefault retrieves the username from context or returns a default value
func GetUsernameOrDefault(ctx context.Context, def string) string {
	if v, err := GetUsernameFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetRoleOrDefault retrieves the role from context or returns a default value
func GetRoleOrDefault(ctx context.Context, def string) string {
	if v, err := GetRoleFromContext(ctx); err == nil {
		return v
	}
	return def
}

// HasUserID reports whether a user ID is present in the context
func HasUserID(ctx context.Context) bool {
	_, err := GetUserIDFromContext(ctx)
	return err == nil
}

// HasRole reports whether a role is present in the context
func HasRole(ctx context.Context) bool {
	_, err := GetRoleFromContext(ctx)
	return err == nil
}
