package services

import (
	"time"

	"smartbuddy/utils"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a signed access token carrying the user id.
func GenerateJWT(userID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     utils.JWTIssuer,
		"iat":     time.Now().Unix(),
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
