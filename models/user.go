package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Birthday time.Time
	Sex      string
	Height   float64 // cm
	Weight   float64 // kg

	// Comma-separated active conditions, e.g. "diabetes,hypertension".
	HealthConditions string
	Onboarded        bool
}

// ActiveConditions splits HealthConditions into a normalized slice.
func (u *User) ActiveConditions() []string {
	if u == nil || strings.TrimSpace(u.HealthConditions) == "" {
		return nil
	}
	parts := strings.Split(u.HealthConditions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
