package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIdKey = "user_id"

// NewJwtMiddleware verifies an HMAC signed bearer token and stores its user_id claim.
func NewJwtMiddleware(secret string) fiber.Handler {
	key := []byte(secret)

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return fmt.Errorf("%w: missing token", ErrUnauthorized)
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return fmt.Errorf("%w: invalid token", ErrUnauthorized)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fmt.Errorf("%w: invalid claims", ErrUnauthorized)
		}
		userId, ok := claims[userIdKey].(string)
		if !ok || userId == "" {
			return fmt.Errorf("%w: missing user_id claim", ErrUnauthorized)
		}

		ctx.Locals(userIdKey, userId)
		return ctx.Next()
	}
}

// StudentID returns the authenticated student set by the JWT middleware.
func StudentID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals(userIdKey).(string)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user_id", ErrUnauthorized)
	}
	return id, nil
}

// IDParam parses a uuid route parameter.
func IDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}
