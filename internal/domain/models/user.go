// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin account for the back office. There are no other roles:
// public visitors never have user records, so a user document existing is
// not enough to grant access - the Authorized flag must also be set.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email" json:"email"` // normalized lowercase

	// GoogleUID links the record to the delegated identity provider.
	// Empty for the static-credential fallback account.
	GoogleUID string `bson:"google_uid,omitempty" json:"google_uid,omitempty"`

	// Authorized gates admin access for delegated sign-ins. A Google
	// account that authenticates but is not flagged stays locked out.
	Authorized bool `bson:"authorized" json:"authorized"`

	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
