// Package postgres owns schema bootstrap and seeding for the content store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the projects and hero tables if they do not exist.
// The hero table carries a single-row guard: `singleton` is unique and
// constrained to TRUE, so at most one row can ever exist and concurrent
// first-time upserts serialize on the constraint.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const projects = `
CREATE TABLE IF NOT EXISTS projects (
    id          uuid PRIMARY KEY,
    title       text NOT NULL,
    description text NOT NULL,
    image       text NOT NULL,
    link        text NOT NULL,
    keywords    text[] NOT NULL DEFAULT '{}',
    created_at  timestamptz NOT NULL DEFAULT now(),
    updated_at  timestamptz NOT NULL DEFAULT now()
);`

	const hero = `
CREATE TABLE IF NOT EXISTS hero (
    id                uuid PRIMARY KEY,
    singleton         boolean NOT NULL DEFAULT TRUE UNIQUE CHECK (singleton),
    avatar            text NOT NULL DEFAULT '',
    full_name         text NOT NULL,
    short_description text NOT NULL CHECK (char_length(short_description) <= 120),
    long_description  text NOT NULL,
    created_at        timestamptz NOT NULL DEFAULT now(),
    updated_at        timestamptz NOT NULL DEFAULT now()
);`

	if _, err := db.ExecContext(ctx, projects); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	if _, err := db.ExecContext(ctx, hero); err != nil {
		return fmt.Errorf("create hero table: %w", err)
	}
	return nil
}
