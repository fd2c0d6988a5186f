// internal/domain/models/faculty.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faculty categories. The public faculty page groups entries by category.
const (
	FacultyAdvisor  = "advisor"
	FacultyIncharge = "incharge"
	FacultyPatron   = "patron"
)

// FacultyCategories lists the valid values for Faculty.Category.
var FacultyCategories = []string{FacultyAdvisor, FacultyIncharge, FacultyPatron}

// Faculty is a faculty advisor, incharge, or patron of the club.
type Faculty struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Department  string `bson:"department,omitempty" json:"department,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
	Category    string `bson:"category" json:"category"` // advisor | incharge | patron
	ImagePath   string `bson:"image_path,omitempty" json:"-"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidFacultyCategory reports whether c is a valid faculty category.
func IsValidFacultyCategory(c string) bool {
	for _, v := range FacultyCategories {
		if c == v {
			return true
		}
	}
	return false
}
