package testutil

import (
	"net/http"

	"recruit/pkg/domain"
	"recruit/pkg/requestcontext"
)

// WithPrincipal puts a resolved caller on the request context, skipping the
// token middleware.
func WithPrincipal(req *http.Request, p domain.Principal) *http.Request {
	return req.WithContext(requestcontext.WithPrincipal(req.Context(), p))
}
