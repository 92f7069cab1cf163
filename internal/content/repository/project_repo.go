package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

const projectColumns = "id, title, description, image, link, keywords, created_at, updated_at"

// ProjectRepository provides persistence operations for portfolio projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// fault wraps a driver-level failure so callers can distinguish it from a
// logical miss with errors.Is(err, domain.ErrStorageUnavailable).
func fault(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStorageUnavailable)
}

// Create inserts a new project with a fresh id and both timestamps set by
// the database.
func (r *ProjectRepository) Create(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	const q = `
INSERT INTO projects (id, title, description, image, link, keywords)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + projectColumns + `;
`
	for i := 0; i < 5; i++ {
		id := uuid.New().String()
		row := r.db.QueryRowContext(ctx, q, id, draft.Title, draft.Description,
			draft.Image, draft.Link, pq.Array(draft.Keywords))

		p, err := scanProject(row)
		if err == nil {
			return p, nil
		}

		// unique violation on id → regenerate and retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, fault("create project", err)
	}
	return nil, fault("create project", errors.New("failed to generate unique project id"))
}

// GetByID returns the project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fault("get project", err)
	}
	return p, nil
}

// Update applies a partial update as a single statement. Assignments are
// built only from the fields present in the patch, so absent fields keep
// their stored value without a separate read. updated_at always refreshes,
// even for an empty patch.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	sets := make([]string, 0, 6)
	args := []any{id}

	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}
	if patch.Link != nil {
		set("link", *patch.Link)
	}
	if patch.Keywords != nil {
		set("keywords", pq.Array(*patch.Keywords))
	}
	sets = append(sets, "updated_at = now()")

	q := fmt.Sprintf(`UPDATE projects SET %s WHERE id = $1 RETURNING %s;`,
		strings.Join(sets, ", "), projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fault("update project", err)
	}
	return p, nil
}

// Delete removes the project permanently and returns the deleted record, or
// domain.ErrNotFound if it never existed.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	const q = `DELETE FROM projects WHERE id = $1 RETURNING ` + projectColumns + `;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fault("delete project", err)
	}
	return p, nil
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fault("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		var kw pq.StringArray
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Link,
			&kw, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fault("scan project", err)
		}
		p.Keywords = kw
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fault("list projects", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var kw pq.StringArray
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Link,
		&kw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Keywords = kw
	return &p, nil
}
