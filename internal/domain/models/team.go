// internal/domain/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamLinks holds the optional social links of a team member.
type TeamLinks struct {
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// TeamMember is one member of a year's team roster. Rank controls display
// order on the public team page (lower rank first).
type TeamMember struct {
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	Position        string    `bson:"position,omitempty" json:"position,omitempty"`
	ProfileImageURL string    `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	Rank            int       `bson:"rank" json:"rank"`
	Links           TeamLinks `bson:"links,omitempty" json:"links,omitempty"`
}

// Team is the club roster for one academic year.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Year    string             `bson:"year" json:"year"` // e.g. "2025-26"
	Members []TeamMember       `bson:"members,omitempty" json:"members,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
