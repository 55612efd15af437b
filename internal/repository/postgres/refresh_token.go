package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/krylovda/relayboard-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (
            id, jti, family_id, user_id, role, device_fingerprint, issued_at, expires_at,
            revoked_at, revocation_reason, rotated_from_jti, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    `

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	// created_at carries the session start; rotated rows pass the family
	// origin's value, so the column cannot default to insertion time.
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	if token.UpdatedAt.IsZero() {
		token.UpdatedAt = token.CreatedAt
	}

	var reason *string
	if token.RevocationReason != nil {
		s := string(*token.RevocationReason)
		reason = &s
	}

	_, err := r.db.Exec(ctx, query,
		token.ID, token.JTI, token.FamilyID, token.UserID, token.Role, token.DeviceFingerprint,
		token.IssuedAt, token.ExpiresAt, token.RevokedAt, reason,
		token.RotatedFromJTI, token.CreatedAt, token.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByJTI(ctx context.Context, jti string) (model.RefreshToken, error) {
	const query = `
        SELECT id, jti, family_id, user_id, role, device_fingerprint, issued_at, expires_at,
               revoked_at, revocation_reason, rotated_from_jti, created_at, updated_at
        FROM refresh_tokens WHERE jti = $1
    `
	var rt model.RefreshToken
	var reason *string
	err := r.db.QueryRow(ctx, query, jti).Scan(
		&rt.ID, &rt.JTI, &rt.FamilyID, &rt.UserID, &rt.Role, &rt.DeviceFingerprint,
		&rt.IssuedAt, &rt.ExpiresAt, &rt.RevokedAt, &reason,
		&rt.RotatedFromJTI, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by jti: %w", err)
	}
	if reason != nil {
		rr := model.RevocationReason(*reason)
		rt.RevocationReason = &rr
	}
	return rt, nil
}

// Revoke is the single conditional update arbitrating concurrent rotation:
// the affected-row count tells the caller whether it won the check-and-set.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, jti string, reason model.RevocationReason) (bool, error) {
	const query = `
        UPDATE refresh_tokens
        SET revoked_at = NOW(), revocation_reason = $2, updated_at = NOW()
        WHERE jti = $1 AND revoked_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, jti, string(reason))
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RefreshTokenRepository) RevokeFamily(ctx context.Context, familyID uuid.UUID, reason model.RevocationReason) error {
	const query = `
        UPDATE refresh_tokens
        SET revoked_at = NOW(), revocation_reason = $2, updated_at = NOW()
        WHERE family_id = $1 AND revoked_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, familyID, string(reason)); err != nil {
		return fmt.Errorf("failed to revoke token family: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) FamilyCompromised(ctx context.Context, familyID uuid.UUID) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM refresh_tokens
            WHERE family_id = $1 AND revocation_reason = $2
        )
    `
	var compromised bool
	err := r.db.QueryRow(ctx, query, familyID, string(model.RevocationReuse)).Scan(&compromised)
	if err != nil {
		return false, fmt.Errorf("failed to check family state: %w", err)
	}
	return compromised, nil
}

// DeleteExpired prunes rows kept past their forensic usefulness: both expired
// and revoked longer than the retention window ago.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, retention time.Duration) (int64, error) {
	const query = `
        DELETE FROM refresh_tokens
        WHERE expires_at < $1 AND revoked_at IS NOT NULL AND revoked_at < $1
    `
	cutoff := time.Now().Add(-retention)
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
