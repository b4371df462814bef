package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// BatchRepository manages persistence for practical batches.
type BatchRepository struct {
	db *sqlx.DB
}

// NewBatchRepository constructs a BatchRepository.
func NewBatchRepository(db *sqlx.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// ListByClass returns the class's batches ordered by name.
func (r *BatchRepository) ListByClass(ctx context.Context, classID string) ([]models.Batch, error) {
	const query = `SELECT id, name, roll_start, roll_end, faculty_id, class_id, created_at
        FROM batches WHERE class_id = $1 ORDER BY name ASC`
	var batches []models.Batch
	if err := r.db.SelectContext(ctx, &batches, query, classID); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return batches, nil
}

// Create inserts a new batch.
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO batches (id, name, roll_start, roll_end, faculty_id, class_id, created_at)
        VALUES (:id, :name, :roll_start, :roll_end, :faculty_id, :class_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, batch); err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}
