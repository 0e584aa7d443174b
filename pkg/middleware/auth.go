// Package middleware holds Fiber middleware shared by the routes.
package middleware

import (
	"errors"

	"github.com/amirasaad/yander/pkg/result"
	"github.com/amirasaad/yander/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected requires a valid HS256 bearer token signed with secret.
// An empty secret disables the check.
func JwtProtected(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return common.Failure(c, result.BadRequest("Auth.MalformedToken", "Missing or malformed JWT"))
	}
	return common.Failure(c, result.Unauthorized("Auth.InvalidToken", "Invalid or expired JWT"))
}
