package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
)

const projectSelect = `
	SELECT p.id, p.name, p.created_by, p.is_active, p.created_at, u.name
	FROM projects p
	LEFT JOIN users u ON u.id = p.created_by
`

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.CreatedBy, &p.IsActive, &p.CreatedAt, &p.CreatedByName)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO projects (name, created_by) VALUES ($1, $2) RETURNING id`,
		p.Name, p.CreatedBy,
	).Scan(&id)
	if err != nil {
		return project.Project{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+`WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Project{}, project.ErrProjectNotFound
	}
	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// ListActive implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListActive(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, projectSelect+`WHERE p.is_active ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Deactivate implements project.ProjectRepository.
func (r *projectRepositoryImpl) Deactivate(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE projects SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

const subProjectSelect = `
	SELECT sp.id, sp.project_id, sp.name, sp.created_by, sp.is_active, sp.created_at, p.name, u.name
	FROM sub_projects sp
	JOIN projects p ON p.id = sp.project_id
	LEFT JOIN users u ON u.id = sp.created_by
`

type subProjectRepositoryImpl struct {
	db *database.DB
}

func NewSubProjectRepository(db *database.DB) project.SubProjectRepository {
	return &subProjectRepositoryImpl{db: db}
}

func scanSubProject(row pgx.Row) (project.SubProject, error) {
	var sp project.SubProject
	err := row.Scan(&sp.ID, &sp.ProjectID, &sp.Name, &sp.CreatedBy, &sp.IsActive, &sp.CreatedAt, &sp.ProjectName, &sp.CreatedByName)
	return sp, err
}

// Create implements project.SubProjectRepository.
func (r *subProjectRepositoryImpl) Create(ctx context.Context, sp project.SubProject) (project.SubProject, error) {
	q := GetQuerier(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO sub_projects (project_id, name, created_by) VALUES ($1, $2, $3) RETURNING id`,
		sp.ProjectID, sp.Name, sp.CreatedBy,
	).Scan(&id)
	if err != nil {
		return project.SubProject{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements project.SubProjectRepository.
func (r *subProjectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.SubProject, error) {
	q := GetQuerier(ctx, r.db)

	sp, err := scanSubProject(q.QueryRow(ctx, subProjectSelect+`WHERE sp.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return project.SubProject{}, project.ErrSubProjectNotFound
	}
	if err != nil {
		return project.SubProject{}, err
	}
	return sp, nil
}

// ExistsByName implements project.SubProjectRepository.
func (r *subProjectRepositoryImpl) ExistsByName(ctx context.Context, projectID int64, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM sub_projects WHERE project_id = $1 AND LOWER(name) = LOWER($2) AND is_active)`,
		projectID, name,
	).Scan(&exists)
	return exists, err
}

// ListActive implements project.SubProjectRepository.
func (r *subProjectRepositoryImpl) ListActive(ctx context.Context) ([]project.SubProject, error) {
	return r.list(ctx, `WHERE sp.is_active AND p.is_active`)
}

// ListActiveByProject implements project.SubProjectRepository.
func (r *subProjectRepositoryImpl) ListActiveByProject(ctx context.Context, projectID int64) ([]project.SubProject, error) {
	return r.list(ctx, `WHERE sp.is_active AND sp.project_id = $1`, projectID)
}

func (r *subProjectRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]project.SubProject, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, subProjectSelect+where+` ORDER BY sp.created_at DESC, sp.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subProjects := []project.SubProject{}
	for rows.Next() {
		sp, err := scanSubProject(rows)
		if err != nil {
			return nil, err
		}
		subProjects = append(subProjects, sp)
	}
	return subProjects, rows.Err()
}
