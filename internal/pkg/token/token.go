package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid        = errors.New("token signature or format invalid")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenMissingSubject = errors.New("token has no subject claim")
)

// Codec signs and verifies compact tokens carrying a user subject claim.
// Access and refresh tokens use two separate Codec instances with distinct
// secrets and lifetimes.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	UserID int64 `json:"user"`
	jwtlib.RegisteredClaims
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (c *Codec) TTL() time.Duration { return c.ttl }

func (c *Codec) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Parse verifies signature and expiry and returns the subject. An expired
// token is reported as ErrTokenExpired, never as ErrTokenInvalid, so the
// middleware can distinguish the two rejection messages.
func (c *Codec) Parse(tokenStr string) (int64, error) {
	t, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !t.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	if claims.UserID == 0 {
		return 0, ErrTokenMissingSubject
	}

	return claims.UserID, nil
}
