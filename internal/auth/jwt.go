package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * time.Minute

var (
	jwtSecret string
	tokenTTL  = DefaultTokenTTL
)

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("invalid TOKEN_TTL_MINUTES: %q", ttl)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	return nil
}

// SetJWTSecret overrides the signing secret, for tests.
func SetJWTSecret(secret string) {
	jwtSecret = secret
}

func TokenTTL() time.Duration {
	return tokenTTL
}

// TokenClaims is the validated subset of a bearer token: the subject
// username and the user id. Both must be present.
type TokenClaims struct {
	Username string
	UserID   string
}

func GenerateJWT(userID string, username string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     username,
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	username, ok := claims["sub"].(string)

	if !ok || username == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	userID, ok := claims["user_id"].(string)

	if !ok || userID == "" {
		return nil, fmt.Errorf("missing user_id claim")
	}

	return &TokenClaims{Username: username, UserID: userID}, nil
}
