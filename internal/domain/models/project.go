// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectMember is one entry in a project's team list.
type ProjectMember struct {
	Member     string `bson:"member" json:"member"`
	LinkedinID string `bson:"linkedin_id,omitempty" json:"linkedinId,omitempty"`
}

// Project is a club project shown on the public projects page.
type Project struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	Description string `bson:"description,omitempty" json:"description,omitempty"` // sanitized HTML
	Date        string `bson:"date,omitempty" json:"date,omitempty"`
	GitHub      string `bson:"github,omitempty" json:"github,omitempty"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
	Progress    string `bson:"progress,omitempty" json:"progress,omitempty"` // numeric string, 0-100

	Technologies []string        `bson:"technologies,omitempty" json:"technologies,omitempty"`
	TeamMembers  []ProjectMember `bson:"team_members,omitempty" json:"teamMembers,omitempty"`
	Images       []string        `bson:"project_img,omitempty" json:"projectImg,omitempty"` // public URLs
	ImagePaths   []string        `bson:"image_paths,omitempty" json:"-"`                    // storage keys

	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Status   string `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
