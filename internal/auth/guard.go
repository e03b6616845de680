package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const bearerPrefix = "Bearer "

// Guard resolves a request's bearer token into an authenticated identity.
// It fails closed: no token and bad token both end the request with 401
// before any ledger operation runs.
type Guard struct {
	tokens *TokenService
}

// NewGuard creates a Guard over the given token service.
func NewGuard(tokens *TokenService) *Guard {
	return &Guard{tokens: tokens}
}

// Middleware returns the huma middleware enforcing authentication on
// every operation of the API it is attached to.
func (g *Guard) Middleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "not authenticated")
			return
		}

		identity, err := g.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		next(huma.WithValue(ctx, identityContextKey, identity))
	}
}
