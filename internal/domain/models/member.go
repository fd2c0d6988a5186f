// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a membership application submitted through the public join
// form. Applications stay in the members collection after review; the
// payment flag is the only reviewed state.
type Member struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	Email            string `bson:"email" json:"email"` // normalized lowercase
	Mobile           string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Course           string `bson:"course,omitempty" json:"course,omitempty"`
	EnrollmentNumber string `bson:"enrollment_number,omitempty" json:"enrollmentNumber,omitempty"`
	FacultyNumber    string `bson:"faculty_number,omitempty" json:"facultyNumber,omitempty"`
	DiscordID        string `bson:"discord_id,omitempty" json:"discordId,omitempty"`

	IDProofPath      string `bson:"id_proof_path,omitempty" json:"-"`
	IDProofURL       string `bson:"id_proof_url,omitempty" json:"idProofURL,omitempty"`
	PaymentProofPath string `bson:"payment_proof_path,omitempty" json:"-"`
	PaymentProofURL  string `bson:"payment_proof_url,omitempty" json:"paymentProofURL,omitempty"`

	PaymentStatus bool `bson:"payment_status" json:"paymentStatus"`

	// Millisecond epoch stamp set when the public form was accepted.
	SubmittedTimestamp int64 `bson:"submitted_timestamp,omitempty" json:"submittedTimestamp,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
