package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const accountColumns = "id, user_id, points, level, is_available, updated_at"

func scanAccount(row pgx.Row) (*domain.RewardAccount, error) {
	var account domain.RewardAccount
	err := row.Scan(&account.ID, &account.UserID, &account.Points, &account.Level, &account.IsAvailable, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.RewardAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM reward_accounts
        WHERE user_id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get reward account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate locks the account row for the duration of the surrounding
// transaction. Callers must run inside TXManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.RewardAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM reward_accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock reward account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.RewardAccount, error) {
	query := `
        INSERT INTO reward_accounts (user_id, points, level, is_available)
        VALUES ($1, 0, 1, TRUE)
        RETURNING ` + accountColumns + `
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create reward account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) AddPoints(ctx context.Context, userID int, delta int) (*domain.RewardAccount, error) {
	query := `
		UPDATE reward_accounts
		SET points = points + $1, updated_at = now()
		WHERE user_id = $2
		RETURNING ` + accountColumns + `
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, delta, userID))
	if err != nil {
		zap.L().Error("failed to add reward points", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// SetPoints updates the cached total only when the row still carries
// oldPoints. A nil result with nil error means the snapshot went stale.
func (r *Repository) SetPoints(ctx context.Context, userID int, oldPoints, newPoints int) (*domain.RewardAccount, error) {
	query := `
		UPDATE reward_accounts
		SET points = $1, updated_at = now()
		WHERE user_id = $2 AND points = $3
		RETURNING ` + accountColumns + `
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, newPoints, userID, oldPoints))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to set reward points", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	query := `
        SELECT a.user_id, u.name, a.points, a.level
        FROM reward_accounts a
        JOIN users u ON u.id = a.user_id
        ORDER BY a.points DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		err := rows.Scan(&entry.UserID, &entry.UserName, &entry.Points, &entry.Level)
		if err != nil {
			zap.L().Error("failed to scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
