package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safewalk/internal/models"
)

type CheckpointRepository struct {
	db *pgxpool.Pool
}

func NewCheckpointRepository(db *pgxpool.Pool) *CheckpointRepository {
	return &CheckpointRepository{
		db: db,
	}
}

// List возвращает все контрольные точки в порядке их позиции в реестре
func (r *CheckpointRepository) List(ctx context.Context) ([]models.Checkpoint, error) {
	query := `
		SELECT
			name,
			latitude,
			longitude
		FROM checkpoints
		ORDER BY position ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	defer rows.Close()

	checkpoints := make([]models.Checkpoint, 0)
	for rows.Next() {
		var cp models.Checkpoint
		if err := rows.Scan(&cp.Name, &cp.Latitude, &cp.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint row: %w", err)
		}
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkpoints, nil
}
