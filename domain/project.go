package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Project is a tenant of the hub.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ServiceStack string    `json:"service_stack"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidSlug reports whether s is lower-kebab and at most 64 characters.
func ValidSlug(s string) bool {
	return len(s) <= 64 && slugPattern.MatchString(s)
}

// ProjectUpdate carries the optional fields of a PATCH.
type ProjectUpdate struct {
	Name         *string
	ServiceStack *string
}

// ProjectConfig is the client-facing configuration document of a project.
type ProjectConfig struct {
	ProjectID uuid.UUID      `json:"project_id"`
	Config    map[string]any `json:"config"`
	Version   int            `json:"version"`
	UpdatedAt time.Time      `json:"updated_at"`
}
