package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionHeader carries the anonymous cart session id. The client echoes it
// on every request; the server mints one on first touch.
const SessionHeader = "X-Cart-Session"

var ErrNoIdentity = errors.New("no identity token")

// CustomerIDFromCtx extracts the customer id claim from a verified
// identity-provider token placed in locals by the JWT middleware.
func CustomerIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", ErrNoIdentity
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", ErrNoIdentity
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoIdentity
	}
	if raw, ok := claims["customer_id"]; ok {
		if id, ok := raw.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", ErrNoIdentity
}

// CartKey resolves which cart a request operates on: the authenticated
// customer id when a token is present, otherwise the caller-supplied session
// header. A request with neither gets a freshly minted session id, echoed in
// the response header for the client to reuse; anonymous visitors must never
// share a cart.
func CartKey(c *fiber.Ctx) string {
	if id, err := CustomerIDFromCtx(c); err == nil {
		return id
	}
	if v := c.Get(SessionHeader); v != "" {
		return v
	}
	minted := uuid.NewString()
	c.Set(SessionHeader, minted)
	return minted
}
