// Package tokens issues and verifies the signed session tokens the platform
// uses instead of server-side sessions. A token is self-contained: claims are
// readable by anyone (base64, not encrypted), only integrity is protected by
// the HS256 signature.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edupract/exam_platform/internal/models"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the claims set embedded in every session token:
// identity, role, display name and the registered expiry.
type Claims struct {
	UserID int64       `json:"id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name"`
	jwt.RegisteredClaims
}

// ExpiredAt reports whether the claims are expired at the given instant.
// Expiry is strict: a token checked exactly at its expiration instant is
// already expired. Claims without an exp are treated as expired.
func (c *Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Service signs and verifies session tokens with a server-held secret.
type Service struct {
	Secret []byte
	TTL    time.Duration

	now func() time.Time
}

// DefaultTTL is the validity window of an issued token.
const DefaultTTL = 2 * time.Hour

func NewService(secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{Secret: secret, TTL: ttl, now: time.Now}
}

// Issue produces a signed token for the user, expiring TTL from now.
func (s *Service) Issue(user *models.User) (string, error) {
	now := s.clock()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Parse verifies the signature and expiry of a token and returns its claims.
// Returns ErrTokenExpired for an expired token and ErrTokenInvalid for a bad
// signature, wrong algorithm or malformed input.
func (s *Service) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	// jwt.ParseWithClaims uses "now < exp" as validity, so the exact
	// expiration instant already fails; keep ExpiredAt consistent with it.
	return &claims, nil
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Decode extracts the claims of a token WITHOUT verifying the signature.
// This is the client-side convenience read: the client has no secret and
// cannot meaningfully verify; authorization decisions never rely on it.
func Decode(tokenStr string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return nil, ErrTokenInvalid
	}
	return &claims, nil
}
