package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krylovda/relayboard-server/internal/logger"
	"github.com/krylovda/relayboard-server/internal/metrics"
	"github.com/krylovda/relayboard-server/internal/model"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Session orchestrates login issuance, refresh rotation and logout over the
// token codec and the two stores. It owns the family state machine: rotation
// keeps a family alive, reuse of a spent token kills it.
//
// The service holds no mutable state across calls; any number of instances
// may run against the same stores.
type Session struct {
	codec        model.TokenCodec
	refreshStore model.RefreshTokenStore
	revokedStore model.RevokedAccessTokenStore
	accessTTL    time.Duration
	refreshTTL   time.Duration
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewSession(
	codec model.TokenCodec,
	refreshStore model.RefreshTokenStore,
	revokedStore model.RevokedAccessTokenStore,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Session {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &Session{
		codec:        codec,
		refreshStore: refreshStore,
		revokedStore: revokedStore,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		metrics:      m,
		logger:       logger,
	}
}

// Issue starts a new token family for a verified identity and returns the
// first access/refresh pair. Credential verification happens before this
// call, outside this core.
func (s *Session) Issue(ctx context.Context, identity model.Identity, deviceFingerprint string) (model.TokenPair, error) {
	pair, err := s.issueInFamily(ctx, identity, uuid.New(), deviceFingerprint, nil)
	if err != nil {
		return model.TokenPair{}, err
	}

	s.metrics.SessionsIssued.Inc()
	s.logger.Info("Session service: new session issued",
		"user_id", identity.UserID)

	return pair, nil
}

// issueInFamily persists the refresh row first, then signs both tokens. The
// signed refresh claims and the row must agree on jti, family and expiry.
// Rotation passes the spent row so the new one inherits its created_at: that
// column marks the session start at login and survives every rotation.
func (s *Session) issueInFamily(
	ctx context.Context,
	identity model.Identity,
	familyID uuid.UUID,
	deviceFingerprint string,
	rotatedFrom *model.RefreshToken,
) (model.TokenPair, error) {
	now := time.Now()
	jti := uuid.NewString()
	refreshExpiry := now.Add(s.refreshTTL)

	createdAt := now
	var rotatedFromJTI *string
	if rotatedFrom != nil {
		createdAt = rotatedFrom.CreatedAt
		from := rotatedFrom.JTI
		rotatedFromJTI = &from
	}

	rt := model.RefreshToken{
		ID:                uuid.New(),
		JTI:               jti,
		FamilyID:          familyID,
		UserID:            identity.UserID,
		Role:              identity.Role,
		DeviceFingerprint: deviceFingerprint,
		IssuedAt:          now,
		ExpiresAt:         refreshExpiry,
		RotatedFromJTI:    rotatedFromJTI,
		CreatedAt:         createdAt,
		UpdatedAt:         now,
	}
	if err := s.refreshStore.Create(ctx, rt); err != nil {
		return model.TokenPair{}, fmt.Errorf("persist refresh: %w", err)
	}

	accessExpiry := now.Add(s.accessTTL)
	access, err := s.codec.EncodeAccessToken(identity.UserID, identity.Role, uuid.NewString(), accessExpiry)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.codec.EncodeRefreshToken(identity.UserID, jti, familyID, refreshExpiry)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

// Refresh rotates a presented refresh token: the old row is revoked, a new
// pair is issued in the same family. Presenting an already-spent token is
// taken as theft and revokes the whole family.
func (s *Session) Refresh(ctx context.Context, presented string) (model.RefreshResult, error) {
	claims, err := s.codec.DecodeRefreshToken(presented)
	if err != nil {
		return model.RefreshResult{}, err
	}

	rt, err := s.refreshStore.GetByJTI(ctx, claims.JTI)
	if errors.Is(err, model.ErrNotFound) {
		return model.RefreshResult{}, model.ErrInvalidToken
	}
	if err != nil {
		return model.RefreshResult{}, fmt.Errorf("load refresh token: %w", err)
	}

	// Signed claims and the stored row are two views of the same fact;
	// trust neither alone.
	if rt.FamilyID != claims.FamilyID || rt.UserID != claims.UserID {
		return model.RefreshResult{}, model.ErrInvalidToken
	}

	now := time.Now()
	if rt.Revoked() {
		return model.RefreshResult{}, s.reuseDetected(ctx, rt)
	}
	if rt.Expired(now) {
		return model.RefreshResult{}, model.ErrTokenExpired
	}

	// Revoke-then-issue: the conditional update is the arbiter for
	// concurrent refresh attempts with the same token.
	rotated, err := s.refreshStore.Revoke(ctx, rt.JTI, model.RevocationRotated)
	if err != nil {
		return model.RefreshResult{}, fmt.Errorf("revoke rotated token: %w", err)
	}
	if !rotated {
		// Another call spent this token between load and revoke.
		return model.RefreshResult{}, s.reuseDetected(ctx, rt)
	}

	identity := model.Identity{UserID: rt.UserID, Role: rt.Role}
	pair, err := s.issueInFamily(ctx, identity, rt.FamilyID, rt.DeviceFingerprint, &rt)
	if err != nil {
		return model.RefreshResult{}, err
	}

	// A concurrent family revocation may have scanned before the new row
	// existed; re-check and sweep it up if so.
	compromised, err := s.refreshStore.FamilyCompromised(ctx, rt.FamilyID)
	if err != nil {
		return model.RefreshResult{}, fmt.Errorf("check family state: %w", err)
	}
	if compromised {
		return model.RefreshResult{}, s.reuseDetected(ctx, rt)
	}

	s.metrics.TokensRotated.Inc()
	s.logger.Debug("Session service: refresh token rotated",
		"user_id", rt.UserID,
		"family_id", rt.FamilyID)

	return model.RefreshResult{
		TokenPair:        pair,
		SessionCreatedAt: rt.CreatedAt,
		SessionAge:       now.Sub(rt.CreatedAt),
	}, nil
}

// reuseDetected is the theft response: the whole family is revoked and the
// caller gets ErrTokenReuseDetected so it can alert and force re-login.
func (s *Session) reuseDetected(ctx context.Context, rt model.RefreshToken) error {
	if err := s.refreshStore.RevokeFamily(ctx, rt.FamilyID, model.RevocationReuse); err != nil {
		return fmt.Errorf("revoke token family: %w", err)
	}

	s.metrics.ReuseDetected.Inc()
	s.logger.Warn("Session service: refresh token reuse detected, family revoked",
		"user_id", rt.UserID,
		"family_id", rt.FamilyID,
		"jti", rt.JTI)

	return model.ErrTokenReuseDetected
}

// Logout best-effort revokes whatever the caller presents: a decodable,
// unexpired access token is deny-listed until its own expiry; a decodable
// refresh token has its single row revoked. Only reuse detection revokes a
// whole family. Garbage tokens are ignored so logout cannot be blocked.
func (s *Session) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		claims, err := s.codec.DecodeAccessToken(accessToken)
		if err == nil {
			if err := s.revokedStore.Revoke(ctx, claims.JTI, claims.UserID, claims.ExpiresAt); err != nil {
				return fmt.Errorf("deny-list access token: %w", err)
			}
		} else {
			s.logger.Debug("Session service: logout ignored access token",
				"error", err.Error())
		}
	}

	if refreshToken != "" {
		claims, err := s.codec.DecodeRefreshToken(refreshToken)
		if err == nil {
			if _, err := s.refreshStore.Revoke(ctx, claims.JTI, model.RevocationLogout); err != nil {
				return fmt.Errorf("revoke refresh token: %w", err)
			}
		} else {
			s.logger.Debug("Session service: logout ignored refresh token",
				"error", err.Error())
		}
	}

	s.metrics.Logouts.Inc()
	return nil
}

// GetIdentity authenticates a presented access token for request middleware:
// signature and expiry via the codec, then the deny list. Both checks are
// mandatory; skipping the second reopens the logout revocation hole.
func (s *Session) GetIdentity(ctx context.Context, accessToken string) (model.Identity, error) {
	claims, err := s.codec.DecodeAccessToken(accessToken)
	if err != nil {
		return model.Identity{}, err
	}

	revoked, err := s.revokedStore.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return model.Identity{}, fmt.Errorf("check deny list: %w", err)
	}
	if revoked {
		return model.Identity{}, model.ErrInvalidToken
	}

	return model.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// PruneExpired removes refresh rows that are expired and revoked for longer
// than the retention window. Driven by an external scheduled job.
func (s *Session) PruneExpired(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.refreshStore.DeleteExpired(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("prune refresh tokens: %w", err)
	}
	if n > 0 {
		s.logger.Info("Session service: pruned refresh tokens", "count", n)
	}
	return n, nil
}
