package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	"github.com/pmapp/personal_management_app/internal/dto"
)

const taskColumns = `task_id, title, notes, schedule, labels, is_starred, is_important, is_done, is_active, created_at, created_by, last_updated_at, last_updated_by`

var taskSortable = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

type TaskRepository struct {
	BaseRepository
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResourceRepository[domain.Task] = (*TaskRepository)(nil)

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Notes,
		&t.Schedule,
		&t.Labels,
		&t.Starred,
		&t.Important,
		&t.Done,
		&t.Active,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) error {
	query := `
        INSERT INTO tasks (` + taskColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Notes,
		task.Schedule,
		task.Labels,
		task.Starred,
		task.Important,
		task.Done,
		task.Active,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`
	task, err := scanTask(r.Pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Task, int64, error) {
	return listRows(ctx, r.Pool, "tasks", taskColumns, params, taskSortable, "created_at",
		func(rows pgx.Rows) (domain.Task, error) { return scanTask(rows) })
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, notes = $2, schedule = $3, labels = $4, is_starred = $5,
            is_important = $6, is_done = $7, last_updated_at = $8, last_updated_by = $9
        WHERE task_id = $10 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		task.Title,
		task.Notes,
		task.Schedule,
		task.Labels,
		task.Starred,
		task.Important,
		task.Done,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) MarkDeleted(ctx context.Context, taskID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE tasks
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE task_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, taskID)
	if err != nil {
		return fmt.Errorf("failed to mark task as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
