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

const surveyColumns = `survey_id, surveyor_id, property, water, solar, plumber, engineer, is_active, created_at, created_by, last_updated_at, last_updated_by`

var surveySortable = map[string]string{
	"created_at": "created_at",
}

type SurveyRepository struct {
	BaseRepository
}

func NewSurveyRepository(pool *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResourceRepository[domain.Survey] = (*SurveyRepository)(nil)

func scanSurvey(row pgx.Row) (domain.Survey, error) {
	var s domain.Survey
	err := row.Scan(
		&s.ID,
		&s.SurveyorID,
		&s.Property,
		&s.Water,
		&s.Solar,
		&s.Plumber,
		&s.Engineer,
		&s.Active,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *SurveyRepository) Save(ctx context.Context, survey *domain.Survey) error {
	query := `
        INSERT INTO surveys (` + surveyColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		survey.ID,
		survey.SurveyorID,
		survey.Property,
		survey.Water,
		survey.Solar,
		survey.Plumber,
		survey.Engineer,
		survey.Active,
		survey.CreatedAt,
		survey.CreatedBy,
		survey.LastUpdatedAt,
		survey.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save survey: %w", err)
	}
	return nil
}

func (r *SurveyRepository) FindByID(ctx context.Context, surveyID string) (*domain.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE survey_id = $1;`
	survey, err := scanSurvey(r.Pool.QueryRow(ctx, query, surveyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find survey by ID: %w", err)
	}
	return &survey, nil
}

func (r *SurveyRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Survey, int64, error) {
	return listRows(ctx, r.Pool, "surveys", surveyColumns, params, surveySortable, "created_at",
		func(rows pgx.Rows) (domain.Survey, error) { return scanSurvey(rows) })
}

func (r *SurveyRepository) Update(ctx context.Context, survey *domain.Survey) error {
	query := `
        UPDATE surveys
        SET surveyor_id = $1, property = $2, water = $3, solar = $4, plumber = $5,
            engineer = $6, last_updated_at = $7, last_updated_by = $8
        WHERE survey_id = $9 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		survey.SurveyorID,
		survey.Property,
		survey.Water,
		survey.Solar,
		survey.Plumber,
		survey.Engineer,
		survey.LastUpdatedAt,
		survey.LastUpdatedBy,
		survey.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update survey: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SurveyRepository) MarkDeleted(ctx context.Context, surveyID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE surveys
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE survey_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, surveyID)
	if err != nil {
		return fmt.Errorf("failed to mark survey as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
