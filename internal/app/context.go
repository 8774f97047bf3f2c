package app

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey string

const (
	userContextKey   = contextKey("user")
	loggerContextKey = contextKey("logger")
)

// Identity is the authenticated caller resolved from the bearer token.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (app *Application) contextSetUser(r *http.Request, identity Identity) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, identity)
	return r.WithContext(ctx)
}

// contextGetUser must only be called behind requireAuthentication.
func (app *Application) contextGetUser(r *http.Request) Identity {
	identity, ok := r.Context().Value(userContextKey).(Identity)
	if !ok {
		panic("missing user value in request context")
	}

	return identity
}

func (app *Application) contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), loggerContextKey, logger)
	return r.WithContext(ctx)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
