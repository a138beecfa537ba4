package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token encodes. The Subject is the author id the question
// and survey services trust verbatim.
type AuthoringUserClaims struct {
	InstanceID string `json:"instance_id,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewAuthoringUserToken(
	expiresIn time.Duration,
	userID string,
	instanceID string,
	isAdmin bool,
	secretKey string,
) (tokenString string, err error) {
	claims := AuthoringUserClaims{
		instanceID,
		isAdmin,
		jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateAuthoringUserToken(tokenString string, secretKey string) (claims *AuthoringUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthoringUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*AuthoringUserClaims)
	valid = valid && token.Valid
	return
}
