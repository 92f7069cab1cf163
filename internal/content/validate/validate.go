// Package validate coerces raw payloads into typed records and reports every
// violated field rule, not just the first.
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

// FieldError describes one violated rule on one field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError enumerates all violations found in a payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, fmt.Sprintf("%s(%s)", f.Field, f.Rule))
	}
	return "validation failed: " + strings.Join(names, ", ")
}

// Validator checks drafts and patches against the content bounds.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// absuri accepts absolute http(s) URLs and data URIs, matching what the
	// image and link columns may hold.
	_ = v.RegisterValidation("absuri", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if strings.HasPrefix(s, "data:") {
			return len(s) > len("data:")
		}
		u, err := url.ParseRequestURI(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	})

	return &Validator{v: v}
}

// ProjectDraft bounds-checks a create payload. Keywords are deduplicated in
// place, preserving first-seen order.
func (va *Validator) ProjectDraft(d *domain.ProjectDraft) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Keywords = dedupe(d.Keywords)
	return va.check(d)
}

// ProjectPatch bounds-checks a partial update. Absent fields pass untouched.
func (va *Validator) ProjectPatch(p *domain.ProjectPatch) error {
	if p.Keywords != nil {
		kw := dedupe(*p.Keywords)
		p.Keywords = &kw
	}
	return va.check(p)
}

// HeroPatch bounds-checks a hero upsert payload.
func (va *Validator) HeroPatch(p *domain.HeroPatch) error {
	return va.check(p)
}

func (va *Validator) check(payload any) error {
	err := va.v.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
