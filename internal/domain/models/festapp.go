// internal/domain/models/festapp.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fest application review statuses.
const (
	FestPending     = "pending"
	FestReviewed    = "reviewed"
	FestShortlisted = "shortlisted"
	FestRejected    = "rejected"
)

// FestStatuses lists the valid values for FestApplication.Status.
var FestStatuses = []string{FestPending, FestReviewed, FestShortlisted, FestRejected}

// FestApplication is an application to join one of the fest organizing
// teams, submitted through the public fest form and reviewed by admins.
type FestApplication struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	Email         string `bson:"email" json:"email"` // normalized lowercase
	ContactNumber string `bson:"contact_number,omitempty" json:"contactNumber,omitempty"`

	TeamPreference1 string `bson:"team_preference_1" json:"teamPreference1"`
	TeamPreference2 string `bson:"team_preference_2" json:"teamPreference2"`

	WhyApplying        string `bson:"why_applying,omitempty" json:"whyApplying,omitempty"`
	PreviousExperience string `bson:"previous_experience,omitempty" json:"previousExperience,omitempty"`
	CVResumeLink       string `bson:"cv_resume_link,omitempty" json:"cvResumeLink,omitempty"`

	DepartmentName   string `bson:"department_name,omitempty" json:"departmentName,omitempty"`
	FacultyName      string `bson:"faculty_name,omitempty" json:"facultyName,omitempty"`
	FacultyNumber    string `bson:"faculty_number,omitempty" json:"facultyNumber,omitempty"`
	EnrollmentNumber string `bson:"enrollment_number,omitempty" json:"enrollmentNumber,omitempty"`
	YearOfStudy      string `bson:"year_of_study,omitempty" json:"yearOfStudy,omitempty"`

	// Millisecond epoch stamp set when the public form was accepted.
	SubmittedTimestamp int64 `bson:"submitted_timestamp,omitempty" json:"submittedTimestamp,omitempty"`

	Status string `bson:"status" json:"status"` // pending | reviewed | shortlisted | rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidFestStatus reports whether s is a valid fest application status.
func IsValidFestStatus(s string) bool {
	for _, v := range FestStatuses {
		if s == v {
			return true
		}
	}
	return false
}
