package transactionrepo

import (
	"context"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger entry. Entries are never updated or deleted.
func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.Type, txn.Amount, txn.Description).
		Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, description, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.Description, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

// SumByUserID folds the full ledger in the database: earned amounts count
// positive, redeemed amounts negative.
func (r *Repository) SumByUserID(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN type LIKE 'earned%' THEN amount ELSE -amount END), 0)
        FROM transactions
        WHERE user_id = $1
    `
	var sum int
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
