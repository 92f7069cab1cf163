package domain

import "time"

// Project is a single portfolio entry. It is storage-agnostic and shared
// across the repository, service and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        string    `json:"link"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectDraft is a validated create payload. All fields are required.
type ProjectDraft struct {
	Title       string   `validate:"required,max=200"`
	Description string   `validate:"required,max=500"`
	Image       string   `validate:"required,absuri"`
	Link        string   `validate:"required,absuri"`
	Keywords    []string `validate:"dive,required,max=50"`
}

// ProjectPatch is a validated partial update. Nil means "keep the stored
// value"; id and createdAt are never part of a patch.
type ProjectPatch struct {
	Title       *string   `validate:"omitempty,min=1,max=200"`
	Description *string   `validate:"omitempty,min=1,max=1000"`
	Image       *string   `validate:"omitempty,absuri"`
	Link        *string   `validate:"omitempty,absuri"`
	Keywords    *[]string `validate:"omitempty,dive,required,max=50"`
}

// IsEmpty reports whether the patch carries no field at all. An empty patch
// is still a valid update: it only refreshes updatedAt.
func (p ProjectPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Image == nil &&
		p.Link == nil && p.Keywords == nil
}

// Hero is the singleton profile record. ID is empty while no row has been
// persisted yet; the zero timestamps accompany that state.
type Hero struct {
	ID               string    `json:"id,omitempty"`
	Avatar           string    `json:"avatar"`
	FullName         string    `json:"fullName"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// HeroPatch is a validated upsert-merge payload. Nil keeps the stored value
// (or the compiled-in default on first insert).
type HeroPatch struct {
	Avatar           *string `validate:"omitempty"`
	FullName         *string `validate:"omitempty,min=2,max=200"`
	ShortDescription *string `validate:"omitempty,min=2,max=120"`
	LongDescription  *string `validate:"omitempty,min=10,max=5000"`
}

// HeroContent is the default hero projection served while no row exists,
// and the base the first upsert merges over.
type HeroContent struct {
	Avatar           string
	FullName         string
	ShortDescription string
	LongDescription  string
}
