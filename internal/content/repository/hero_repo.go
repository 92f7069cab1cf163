package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

const heroColumns = "id, avatar, full_name, short_description, long_description, created_at, updated_at"

// HeroRepository owns the singleton hero row. The hero table carries a
// single-row guard (a unique, always-true `singleton` column), so two
// concurrent first-time upserts conflict at the storage layer and the loser
// falls through to an update against the winner's row.
type HeroRepository struct {
	db       *sql.DB
	defaults domain.HeroContent
}

// NewHeroRepository creates a hero repository with the given default
// content. The defaults are what Get projects while no row exists and what
// the first upsert merges the patch over.
func NewHeroRepository(db *sql.DB, defaults domain.HeroContent) *HeroRepository {
	return &HeroRepository{db: db, defaults: defaults}
}

// Get returns the persisted hero, or a read-only projection of the default
// content (no id, zero timestamps) while no row exists. Reading never
// persists anything.
func (r *HeroRepository) Get(ctx context.Context) (*domain.Hero, error) {
	const q = `SELECT ` + heroColumns + ` FROM hero ORDER BY created_at ASC LIMIT 1;`

	var h domain.Hero
	err := r.db.QueryRowContext(ctx, q).Scan(&h.ID, &h.Avatar, &h.FullName,
		&h.ShortDescription, &h.LongDescription, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.defaultHero(), nil
	}
	if err != nil {
		return nil, fault("get hero", err)
	}
	if h.Avatar == "" {
		h.Avatar = r.defaults.Avatar
	}
	return &h, nil
}

// UpsertMerge performs the Unset→Set transition as one conditional write.
// On first insert the patch merges over the defaults; afterwards it merges
// over the stored values. Absent fields arrive as NULL parameters and
// COALESCE keeps the current column. The id never changes once assigned.
func (r *HeroRepository) UpsertMerge(ctx context.Context, patch domain.HeroPatch) (*domain.Hero, error) {
	const q = `
INSERT INTO hero (id, singleton, avatar, full_name, short_description, long_description)
VALUES ($1, TRUE,
        COALESCE($2, $6),
        COALESCE($3, $7),
        COALESCE($4, $8),
        COALESCE($5, $9))
ON CONFLICT (singleton) DO UPDATE SET
    avatar            = COALESCE($2, hero.avatar),
    full_name         = COALESCE($3, hero.full_name),
    short_description = COALESCE($4, hero.short_description),
    long_description  = COALESCE($5, hero.long_description),
    updated_at        = now()
RETURNING ` + heroColumns + `;
`
	var h domain.Hero
	err := r.db.QueryRowContext(ctx, q,
		uuid.New().String(),
		patch.Avatar,
		patch.FullName,
		patch.ShortDescription,
		patch.LongDescription,
		r.defaults.Avatar,
		r.defaults.FullName,
		r.defaults.ShortDescription,
		r.defaults.LongDescription,
	).Scan(&h.ID, &h.Avatar, &h.FullName, &h.ShortDescription,
		&h.LongDescription, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, fault("upsert hero", err)
	}
	if h.Avatar == "" {
		h.Avatar = r.defaults.Avatar
	}
	return &h, nil
}

func (r *HeroRepository) defaultHero() *domain.Hero {
	return &domain.Hero{
		Avatar:           r.defaults.Avatar,
		FullName:         r.defaults.FullName,
		ShortDescription: r.defaults.ShortDescription,
		LongDescription:  r.defaults.LongDescription,
	}
}
