package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"Go-Recipe-Share/domain"

	"github.com/golang-jwt/jwt/v4"
)

const FlashTTL = 5 * time.Minute

type (
	// JWTService signs the one-shot flash messages carried in a cookie
	// across redirects, so clients cannot forge them.
	JWTService interface {
		GenerateTokenFlash(flash domain.Flash) (string, error)
		ParseTokenFlash(token string) (domain.Flash, error)
	}

	jwtFlashClaim struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

// NewJWTService falls back to a random per-process key when secretKey is
// empty; flashes then do not survive a restart.
func NewJWTService(secretKey string) JWTService {
	if secretKey == "" {
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		secretKey = hex.EncodeToString(buf)
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    "RECIPE-SHARE",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateTokenFlash(flash domain.Flash) (string, error) {
	now := j.now()
	claims := jwtFlashClaim{
		flash.Kind,
		flash.Message,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(FlashTTL)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ParseTokenFlash(token string) (domain.Flash, error) {
	t_Token, err := jwt.ParseWithClaims(token, &jwtFlashClaim{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Flash{}, domain.ErrTokenExpired
		}
		return domain.Flash{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.Flash{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtFlashClaim)
	if claims.Issuer != j.issuer {
		return domain.Flash{}, domain.ErrTokenInvalid
	}
	return domain.Flash{Kind: claims.Kind, Message: claims.Message}, nil
}
