package couponrepo

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

// Create persists a coupon. The unique index on code surfaces collisions as
// a unique violation for the caller to retry with a fresh code.
func (r *Repository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	query := `
		INSERT INTO coupons (user_id, code, discount, expiry)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, coupon.UserID, coupon.Code, coupon.Discount, coupon.Expiry).
		Scan(&coupon.ID, &coupon.CreatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save coupon", zap.Error(err))
		}
		return nil, err
	}
	return coupon, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Coupon, error) {
	query := `
        SELECT id, user_id, code, discount, expiry, created_at
        FROM coupons
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch coupons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var coupon domain.Coupon
		err := rows.Scan(&coupon.ID, &coupon.UserID, &coupon.Code, &coupon.Discount, &coupon.Expiry, &coupon.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan coupon row", zap.Error(err))
			return nil, err
		}
		coupons = append(coupons, coupon)
	}

	return coupons, nil
}
