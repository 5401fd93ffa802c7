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

const employeeColumns = `em.employee_id, em.name, em.gender, em.birthday, em.email, em.primary_phone, em.alternate_phone, em.profile_id, em.authorization_id, em.is_active, em.created_at, em.created_by, em.last_updated_at, em.last_updated_by`

const employeeProfileColumns = `pr.profile_id, pr.department, pr.designation, pr.date_of_joining, pr.supervisor, pr.area_id, pr.is_active, pr.created_at, pr.created_by, pr.last_updated_at, pr.last_updated_by`

var employeeSortable = map[string]string{
	"name":       "em.name",
	"email":      "em.email",
	"created_at": "em.created_at",
}

type EmployeeRepository struct {
	BaseRepository
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepository = (*EmployeeRepository)(nil)

// scanEmployeeRow reads an employee row joined against its profile.
func scanEmployeeRow(row pgx.Row) (domain.Employee, error) {
	var em domain.Employee
	var pr domain.EmployeeProfile
	err := row.Scan(
		&em.ID,
		&em.Name,
		&em.Gender,
		&em.Birthday,
		&em.Email,
		&em.PrimaryPhone,
		&em.AlternatePhone,
		&em.ProfileID,
		&em.AuthorizationID,
		&em.Active,
		&em.CreatedAt,
		&em.CreatedBy,
		&em.LastUpdatedAt,
		&em.LastUpdatedBy,
		&pr.ID,
		&pr.Department,
		&pr.Designation,
		&pr.DateOfJoining,
		&pr.Supervisor,
		&pr.AreaID,
		&pr.Active,
		&pr.CreatedAt,
		&pr.CreatedBy,
		&pr.LastUpdatedAt,
		&pr.LastUpdatedBy,
	)
	if err != nil {
		return em, err
	}
	em.Profile = &pr
	return em, nil
}

const employeeSelect = `
    SELECT ` + employeeColumns + `, ` + employeeProfileColumns + `
    FROM employees em
    JOIN employee_profiles pr ON pr.profile_id = em.profile_id`

func (r *EmployeeRepository) Save(ctx context.Context, employee *domain.Employee) error {
	query := `
        INSERT INTO employees (employee_id, name, gender, birthday, email, primary_phone, alternate_phone, profile_id, authorization_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Gender,
		employee.Birthday,
		employee.Email,
		employee.PrimaryPhone,
		employee.AlternatePhone,
		employee.ProfileID,
		employee.AuthorizationID,
		employee.Active,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// SaveEmployeeGraph inserts the area, profile, authorization and employee in
// one transaction, in dependency order.
func (r *EmployeeRepository) SaveEmployeeGraph(ctx context.Context, area *domain.EmployeeArea, profile *domain.EmployeeProfile, authorization *domain.EmployeeAuthorization, employee *domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if area != nil {
		_, err := tx.Exec(ctx, `
            INSERT INTO employee_areas (area_id, name, region, state, is_active, created_at, created_by, last_updated_at, last_updated_by)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			area.ID, area.Name, area.Region, area.State,
			area.Active, area.CreatedAt, area.CreatedBy, area.LastUpdatedAt, area.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to save employee area: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO employee_profiles (profile_id, department, designation, date_of_joining, supervisor, area_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		profile.ID, profile.Department, profile.Designation, profile.DateOfJoining,
		profile.Supervisor, profile.AreaID,
		profile.Active, profile.CreatedAt, profile.CreatedBy, profile.LastUpdatedAt, profile.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save employee profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO employee_authorizations (authorization_id, role, username, password_hash, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		authorization.ID, authorization.Role, authorization.Username, authorization.PasswordHash,
		authorization.Active, authorization.CreatedAt, authorization.CreatedBy, authorization.LastUpdatedAt, authorization.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save employee authorization: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO employees (employee_id, name, gender, birthday, email, primary_phone, alternate_phone, profile_id, authorization_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		employee.ID, employee.Name, employee.Gender, employee.Birthday, employee.Email,
		employee.PrimaryPhone, employee.AlternatePhone, employee.ProfileID, employee.AuthorizationID,
		employee.Active, employee.CreatedAt, employee.CreatedBy, employee.LastUpdatedAt, employee.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *EmployeeRepository) FindByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE em.employee_id = $1;`
	employee, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindActiveByIdentity(ctx context.Context, name, email, primaryPhone string) (*domain.Employee, error) {
	query := employeeSelect + `
        WHERE em.name = $1 AND lower(em.email) = lower($2) AND em.primary_phone = $3 AND em.is_active = true
        LIMIT 1;`
	employee, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, name, email, primaryPhone))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by identity: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Employee, int64, error) {
	params.Normalize()
	where, args := buildListFilter(params, "em.is_active")

	var total int64
	countQuery := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM employees em
        JOIN employee_profiles pr ON pr.profile_id = em.profile_id
        WHERE %s`, where)
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	orderLimit, pageArgs := buildOrderLimit(params, employeeSortable, "em.created_at", len(args))
	query := fmt.Sprintf("%s WHERE %s %s", employeeSelect, where, orderLimit)

	rows, err := r.Pool.Query(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	items := []domain.Employee{}
	for rows.Next() {
		em, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		items = append(items, em)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return items, total, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query := `
        UPDATE employees
        SET name = $1, gender = $2, birthday = $3, email = $4, primary_phone = $5,
            alternate_phone = $6, last_updated_at = $7, last_updated_by = $8
        WHERE employee_id = $9 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.Name,
		employee.Gender,
		employee.Birthday,
		employee.Email,
		employee.PrimaryPhone,
		employee.AlternatePhone,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkDeleted soft-deletes the employee together with its profile and
// authorization records.
func (r *EmployeeRepository) MarkDeleted(ctx context.Context, employeeID string, deletedAt time.Time, deleterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var profileID, authorizationID string
	err = tx.QueryRow(ctx, `
        UPDATE employees
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE employee_id = $3 AND is_active = true
        RETURNING profile_id, authorization_id;`,
		deletedAt, deleterUserID, employeeID).Scan(&profileID, &authorizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to mark employee as deleted: %w", err)
	}

	_, err = tx.Exec(ctx, `
        UPDATE employee_profiles
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE profile_id = $3 AND is_active = true;`,
		deletedAt, deleterUserID, profileID)
	if err != nil {
		return fmt.Errorf("failed to mark employee profile as deleted: %w", err)
	}

	_, err = tx.Exec(ctx, `
        UPDATE employee_authorizations
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE authorization_id = $3 AND is_active = true;`,
		deletedAt, deleterUserID, authorizationID)
	if err != nil {
		return fmt.Errorf("failed to mark employee authorization as deleted: %w", err)
	}

	return r.Commit(ctx, tx)
}
