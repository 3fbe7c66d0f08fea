package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/httputil"
	"recruit/pkg/requestcontext"
)

// JWTValidator defines the interface for validating bearer tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator.
type JWTClaims struct {
	UserID    string
	Role      string
	Faculty   string
	Specialty string
	JTI       string
}

// Principal converts validated claims into a caller identity. A specialty is
// attached only when both codes are present and well formed.
func (c *JWTClaims) Principal() (domain.Principal, error) {
	userID, err := domain.ParseUserID(c.UserID)
	if err != nil {
		return domain.Principal{}, err
	}
	role, err := domain.ParseRole(c.Role)
	if err != nil {
		return domain.Principal{}, err
	}
	p := domain.Principal{UserID: userID, Role: role}
	if c.Faculty != "" && c.Specialty != "" {
		if key, err := domain.NewSpecialtyKey(c.Faculty, c.Specialty); err == nil {
			p.Specialty = &key
		}
	}
	return p, nil
}

// RequireAuth validates the bearer token and stores the resolved Principal in
// the request context.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			principal, err := claims.Principal()
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - unusable claims",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithPrincipal(ctx, principal)))
		})
	}
}
