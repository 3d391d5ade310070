package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"smartbuddy/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance; nil means logout invalidation is
// disabled and every token is treated as live.
var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{Client: client}
}

// ErrBlacklistDisabled marks the Redis-less configuration: logout cannot
// invalidate the token early, it simply expires on schedule.
var ErrBlacklistDisabled = errors.New("token blacklist disabled")

// BlacklistToken stores the token until its own expiration so logout takes
// effect immediately.
func BlacklistToken(tokenString string) error {
	if TokenBlacklist == nil {
		return ErrBlacklistDisabled
	}
	return TokenBlacklist.blacklistToken(tokenString)
}

func (tb *RedisTokenBlacklist) blacklistToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil && !strings.Contains(err.Error(), "token is expired") {
		return fmt.Errorf("failed to parse token: %v", err)
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expirationTime = time.Unix(int64(exp), 0)
		}
	}

	ttl := time.Until(expirationTime)
	if ttl <= 0 {
		return nil // already expired, nothing to do
	}

	key := fmt.Sprintf("blacklist:%s", tokenString)
	if err := tb.Client.Set(context.Background(), key, "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks if a token has been invalidated by logout.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	return TokenBlacklist.isTokenBlacklisted(tokenString)
}

func (tb *RedisTokenBlacklist) isTokenBlacklisted(tokenString string) bool {
	key := fmt.Sprintf("blacklist:%s", tokenString)
	exists, err := tb.Client.Exists(context.Background(), key).Result()
	if err != nil {
		log.Printf("Error checking token blacklist: %v", err)
		return false
	}
	return exists > 0
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
