package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

type seedProject struct {
	title       string
	description string
	image       string
	link        string
	keywords    []string
}

var sampleProjects = []seedProject{
	{
		title:       "E-Commerce Platform",
		description: "Full-stack e-commerce site built with Next.js and Stripe",
		image:       "https://placehold.co/400x300?text=E-Commerce",
		link:        "https://example.com",
		keywords:    []string{"Next.js", "Stripe", "React"},
	},
	{
		title:       "Task Management App",
		description: "Collaborative task manager with real-time updates",
		image:       "https://placehold.co/400x300?text=Task+Manager",
		link:        "https://example.com",
		keywords:    []string{"React", "Firebase", "Tailwind"},
	},
	{
		title:       "Portfolio Website",
		description: "Personal portfolio showcasing my projects and skills",
		image:       "https://placehold.co/400x300?text=Portfolio",
		link:        "https://example.com",
		keywords:    []string{"Next.js", "Tailwind", "React"},
	},
}

// Seed inserts sample projects and the default hero row. It is idempotent:
// projects are skipped when one with the same title already exists, and the
// hero insert yields to an existing row via the singleton guard.
func Seed(ctx context.Context, db *sql.DB, hero domain.HeroContent) error {
	const insertProject = `
INSERT INTO projects (id, title, description, image, link, keywords)
SELECT $1, $2, $3, $4, $5, $6
WHERE NOT EXISTS (SELECT 1 FROM projects WHERE title = $2);`

	for _, p := range sampleProjects {
		_, err := db.ExecContext(ctx, insertProject, uuid.New().String(),
			p.title, p.description, p.image, p.link, pq.Array(p.keywords))
		if err != nil {
			return fmt.Errorf("seed project %q: %w", p.title, err)
		}
	}

	const insertHero = `
INSERT INTO hero (id, singleton, avatar, full_name, short_description, long_description)
VALUES ($1, TRUE, $2, $3, $4, $5)
ON CONFLICT (singleton) DO NOTHING;`

	_, err := db.ExecContext(ctx, insertHero, uuid.New().String(),
		hero.Avatar, hero.FullName, hero.ShortDescription, hero.LongDescription)
	if err != nil {
		return fmt.Errorf("seed hero: %w", err)
	}
	return nil
}
