package authsdk

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoToken      = errors.New("no token provided")
)

const (
	// TokenTTL 访问令牌有效期
	TokenTTL = time.Hour
	// Leeway 校验 exp/iat 时允许的时钟偏差
	Leeway = 60 * time.Second
)

// Claims JWT 声明，sub 为用户 UUID
type Claims struct {
	jwt.RegisteredClaims
}

// UserContext 用户上下文信息
type UserContext struct {
	UserID string
}

// Authenticated 是否为已登录用户
func (u *UserContext) Authenticated() bool {
	return u != nil && u.UserID != ""
}

// GenerateToken 签发 HS256 访问令牌
func GenerateToken(userID, secret string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken 解析并验证 JWT token
// secret: JWT 签名密钥
func ParseToken(tokenString, secret string) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithLeeway(Leeway), jwt.WithExpirationRequired(), jwt.WithIssuedAt())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject != "" {
		return &UserContext{UserID: claims.Subject}, nil
	}

	return nil, ErrInvalidToken
}
