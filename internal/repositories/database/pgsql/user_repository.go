package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/ashirovtech/shop_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = "user_id, name, email, password_hash, auth_provider, provider_user_id, email_verified, " + auditColumns + ", last_login_at"

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   nullString(d.PasswordHash),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		EmailVerified:  d.EmailVerified,
		AuditFields:    toModelAudit(d.AuditFields),
		LastLoginAt:    d.LastLoginAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		EmailVerified:  m.EmailVerified,
		AuditFields:    toDomainAudit(m.AuditFields),
		LastLoginAt:    m.LastLoginAt,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	dest := []any{&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.AuthProvider, &m.ProviderUserID, &m.EmailVerified}
	dest = append(dest, auditDest(&m.AuditFields)...)
	dest = append(dest, &m.LastLoginAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, action, where string, args ...any) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + where
	user, err := scanUser(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(err, action)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, fmt.Sprintf("failed to find user %s", userID), "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "failed to find user by email", "lower(email) = lower($1)", email)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "failed to find user by provider", "auth_provider = $1 AND provider_user_id = $2", string(provider), providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		INSERT INTO users (user_id, name, email, password_hash, auth_provider, provider_user_id, email_verified,
		                   created_at, created_by, last_updated_at, last_updated_by, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID, m.EmailVerified,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.LastLoginAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save user")
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, auth_provider = $4, provider_user_id = $5,
		    email_verified = $6, last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID,
		m.EmailVerified, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return mapPgError(err, "failed to update user")
	}
	return requireRows(tag, "user "+m.UserID)
}

func (r *PgxUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE users SET last_login_at = $1 WHERE user_id = $2;`, at, userID)
	if err != nil {
		return mapPgError(err, "failed to record last login")
	}
	return requireRows(tag, "user "+userID)
}
