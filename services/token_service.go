package services

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload: subject identity and role, plus the
// registered time/issuer/audience claims.
type TokenClaims struct {
	UserID uint        `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the HS256 session tokens. The key,
// issuer and audience are process-wide configuration.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenService(secret, issuer, audience string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a time-bounded token for the user and returns it with an
// opaque refresh artifact. Refresh artifacts are random and not stored
// server-side; there is no revocation list (see Refresh).
func (s *TokenService) Issue(user *entity.User) (token string, refreshToken string, err error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = newRefreshToken()
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Validate checks signature, signing method, issuer, audience and
// expiry. Every failure collapses to ErrInvalidToken; callers never
// need to know which check tripped.
func (s *TokenService) Validate(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateExpired runs the exact same checks as Validate except for
// expiry. The relaxation covers ONLY the exp claim: a bad signature,
// wrong signing method, wrong issuer or audience, or a malformed token
// still fails. Its sole caller is the refresh flow, which exchanges a
// just-expired token for a fresh pair.
func (s *TokenService) ValidateExpired(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	// WithoutClaimsValidation skips the whole registered-claims pass,
	// so issuer and audience are re-checked by hand below.
	token, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != s.issuer {
		return nil, ErrInvalidToken
	}
	if !containsAudience(claims.Audience, s.audience) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) keyFunc(t *jwt.Token) (any, error) {
	return s.secret, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
