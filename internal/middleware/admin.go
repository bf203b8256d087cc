package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"weddinghub/internal/config"
)

const adminTokenExpiry = 12 * time.Hour

// getJWTKey returns the signing key derived from the admin secret.
func getJWTKey() []byte {
	return []byte(config.Get().AdminSecret)
}

// AdminClaims represents the claims in an admin JWT.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// VerifyAdminSecret compares a presented secret against the configured one.
// The configured secret may be stored as a bcrypt hash (prefix "$2"); plain
// comparison is kept for development setups.
func VerifyAdminSecret(presented string) bool {
	configured := config.Get().AdminSecret
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(presented)) == nil
	}
	return presented == configured
}

// GenerateAdminToken issues a short-lived admin JWT.
func GenerateAdminToken() (string, error) {
	claims := &AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(adminTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "weddinghub-api",
			Subject:   "admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// AdminAuth verifies the admin JWT on routes that mutate derived or
// directory-wide state (actual_amount overrides, vendor verification).
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getJWTKey(), nil
		})

		if err != nil || !token.Valid || claims.Role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
