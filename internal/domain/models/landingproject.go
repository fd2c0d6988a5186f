// internal/domain/models/landingproject.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Landing-project statuses.
const (
	LandingInProgress = "in_progress"
	LandingCompleted  = "completed"
)

// LandingProjectCap is the maximum number of landing projects that may
// exist at once. The landing page renders exactly three cards; the store
// rejects creates beyond the cap.
const LandingProjectCap = 3

// LandingTeamMember is one entry in a landing project's team list.
type LandingTeamMember struct {
	Name     string `bson:"name" json:"name"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}

// LandingProject is a featured project pinned to the home page.
type LandingProject struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Date        string `bson:"date,omitempty" json:"date,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	Status      string `bson:"status" json:"status"` // in_progress | completed

	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Demo      string `bson:"demo,omitempty" json:"demo,omitempty"`
	ImagePath string `bson:"image_path,omitempty" json:"-"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`

	Technologies []string            `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Team         []LandingTeamMember `bson:"team,omitempty" json:"team,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidLandingStatus reports whether s is a valid landing-project status.
func IsValidLandingStatus(s string) bool {
	return s == LandingInProgress || s == LandingCompleted
}
