package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/krylovda/relayboard-server/internal/model"
)

// Claims represents JWT claims with token type, user ID and, for refresh
// tokens, the family identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role,omitempty"`
	FamilyID  string    `json:"family,omitempty"`
	TokenType string    `json:"typ"`
}

// JWT implements TokenCodec backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token codec with the provided secret key.
func NewJWT(secretKey string) model.TokenCodec {
	return &JWT{secretKey: secretKey}
}

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// EncodeAccessToken signs a short-lived access token. The expiry must be
// strictly in the future.
func (j *JWT) EncodeAccessToken(userID uuid.UUID, role string, jti string, expiresAt time.Time) (string, error) {
	return j.encode(Claims{
		UserID:    userID,
		Role:      role,
		TokenType: typeAccess,
	}, jti, expiresAt)
}

// EncodeRefreshToken signs a long-lived refresh token carrying the jti and
// family of its persisted row. The expiry must be strictly in the future and
// must match the row's expires_at.
func (j *JWT) EncodeRefreshToken(userID uuid.UUID, jti string, familyID uuid.UUID, expiresAt time.Time) (string, error) {
	return j.encode(Claims{
		UserID:    userID,
		FamilyID:  familyID.String(),
		TokenType: typeRefresh,
	}, jti, expiresAt)
}

func (j *JWT) encode(claims Claims, jti string, expiresAt time.Time) (string, error) {
	now := time.Now()
	if !expiresAt.After(now) {
		return "", model.ErrExpiryInPast
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}

	return tokenString, nil
}

// DecodeAccessToken verifies signature and expiry and extracts access claims.
func (j *JWT) DecodeAccessToken(tokenString string) (model.AccessClaims, error) {
	claims, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return model.AccessClaims{}, err
	}

	return model.AccessClaims{
		UserID:    claims.UserID,
		Role:      claims.Role,
		JTI:       claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// DecodeRefreshToken verifies signature and expiry and extracts refresh
// claims including the family identifier.
func (j *JWT) DecodeRefreshToken(tokenString string) (model.RefreshClaims, error) {
	claims, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return model.RefreshClaims{}, err
	}

	familyID, err := uuid.Parse(claims.FamilyID)
	if err != nil {
		return model.RefreshClaims{}, fmt.Errorf("%w: bad family claim", model.ErrInvalidToken)
	}

	return model.RefreshClaims{
		UserID:    claims.UserID,
		JTI:       claims.ID,
		FamilyID:  familyID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parse verifies the signature first, then expiry, then the typ claim.
// Expiry failures come back as ErrTokenExpired, everything else as
// ErrInvalidToken.
func (j *JWT) parse(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, model.ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing jti", model.ErrInvalidToken)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing iat/exp", model.ErrInvalidToken)
	}
	return claims, nil
}
