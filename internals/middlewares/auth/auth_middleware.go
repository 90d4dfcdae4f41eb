// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
)

const SessionCookieName = "session_token"

// AuthMiddleware memvalidasi cookie sesi dan mengisi user_id + user_role
// ke locals. Tanpa cookie / cookie invalid → 401 (konteks anonim ditolak).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractSessionToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized - Silakan login terlebih dahulu",
			})
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Missing JWT Secret",
			})
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized - Sesi tidak valid",
			})
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized - Sesi sudah kedaluwarsa",
			})
		}

		sub, _ := claims["sub"].(string)
		if strings.TrimSpace(sub) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized - Sesi tidak membawa user ID",
			})
		}

		c.Locals("user_id", sub)
		if role, ok := claims["role"].(string); ok {
			c.Locals("user_role", role)
		}

		return c.Next()
	}
}

// OnlyAdmin: dipasang setelah AuthMiddleware pada grup admin.
func OnlyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !strings.EqualFold(role, "admin") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "Hanya admin yang diizinkan mengakses resource ini",
			})
		}
		return c.Next()
	}
}

// Cookie sesi adalah sumber utama; Authorization: Bearer dipakai sebagai
// fallback untuk klien non-browser.
func extractSessionToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(SessionCookieName)); v != "" {
		return v
	}
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return jwt.ErrTokenExpired
	}
	return nil
}
