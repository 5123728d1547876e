package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.CatalogEntry, error) {
	query := `
        SELECT id, name, cost, description, collection_info, is_available
        FROM reward_catalog
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var entry domain.CatalogEntry
	err := row.Scan(&entry.ID, &entry.Name, &entry.Cost, &entry.Description, &entry.CollectionInfo, &entry.IsAvailable)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find catalog entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) FindAvailable(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `
        SELECT id, name, cost, description, collection_info, is_available
        FROM reward_catalog
        WHERE is_available = TRUE
        ORDER BY cost ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch catalog entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		var entry domain.CatalogEntry
		err := rows.Scan(&entry.ID, &entry.Name, &entry.Cost, &entry.Description, &entry.CollectionInfo, &entry.IsAvailable)
		if err != nil {
			zap.L().Error("failed to scan catalog row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
