package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	jwtSecret = []byte("secret")
	jwtTTL    = time.Hour * 24 * 7
)

// SetSecret allows injecting the secret from config
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// SetTokenTTL allows injecting the token lifetime from config
func SetTokenTTL(ttl time.Duration) {
	jwtTTL = ttl
}

// UserClaimsKey is the Fiber Locals key under which the authenticated
// principal is stored for the lifetime of one request.
const UserClaimsKey = "user_claims"

// UserClaims is the principal embedded in every issued token. The role is
// baked in at issuance: a role change elsewhere takes effect only once the
// caller logs in again and receives a fresh token. That staleness is a
// deliberate tradeoff; the token is the source of truth for the request's
// role, never a per-request database lookup.
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID primitive.ObjectID, email, role string) (string, error) {
	claims := UserClaims{
		UserID: userID.Hex(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenSignatureInvalid
}
