package app

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/metinatakli/seat-reservation-engine/api"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Claims is the payload of the identity tokens accepted by the API. The
// subject carries the user id.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// logRequest attaches a request scoped logger to the context.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		next.ServeHTTP(w, app.contextSetLogger(r, logger))
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		headerParts := strings.Split(authorizationHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			app.invalidTokenResponse(w, r)
			return
		}

		identity, err := app.parseToken(headerParts[1])
		if err != nil {
			app.contextGetLogger(r).Debug("rejected identity token", "error", err)
			app.invalidTokenResponse(w, r)
			return
		}

		r = app.contextSetUser(r, identity)
		r = app.contextSetLogger(r, app.contextGetLogger(r).With("user_id", identity.UserID))

		next.ServeHTTP(w, r)
	})
}

// authorizeOperation enforces the bearerAuth requirement the router attaches
// to each operation. Operations without one pass through, and non-empty
// scopes name the roles allowed to call the operation.
func (app *Application) authorizeOperation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, secured := r.Context().Value(api.BearerAuthScopes).([]string)
		if !secured {
			next.ServeHTTP(w, r)
			return
		}

		h := next
		if len(scopes) > 0 {
			h = app.requireRole(scopes...)(h)
		}

		app.requireAuthentication(h).ServeHTTP(w, r)
	})
}

func (app *Application) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, app.contextGetUser(r).Role) {
				app.forbiddenResponse(w, r, ErrForbiddenAccess)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (app *Application) parseToken(tokenString string) (Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if app.config.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(app.config.JWT.Issuer))
	}

	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return []byte(app.config.JWT.Secret), nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}

	if claims.Subject == "" {
		return Identity{}, errors.New("token has no subject")
	}

	role := claims.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return Identity{}, fmt.Errorf("unknown role %q", role)
	}

	return Identity{UserID: claims.Subject, Role: role}, nil
}
