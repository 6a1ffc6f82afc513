// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kampusku_backend/internals/configs"
)

// AuthMiddleware memverifikasi JWT dan menaruh principal di locals:
// c.Locals("userId") dan c.Locals("userRole"). Login/refresh/session
// dikelola service lain; middleware ini cuma konsumen token.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// Validasi exp manual (dengan sedikit leeway)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractStringClaim(claims, "user_id", "sub")
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		role, err := extractStringClaim(claims, "role")
		if err != nil {
			log.Println("[ERROR] role:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing role")
		}

		c.Locals("userId", userID)
		c.Locals("userRole", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", fmt.Errorf("format Authorization harus 'Bearer <token>'")
		}
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	// fallback cookie
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", fmt.Errorf("missing Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("claim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("claim exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired pada %s", expTime)
	}
	return nil
}

func extractStringClaim(claims jwt.MapClaims, keys ...string) (string, error) {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("claim %v tidak ditemukan", keys)
}
