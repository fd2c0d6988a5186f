// internal/domain/models/galleryitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is one uploaded image or video shown on the public gallery
// page. The file itself lives in blob storage under Path; URL is the
// public location resolved at upload time.
type GalleryItem struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Caption string             `bson:"caption,omitempty" json:"caption,omitempty"`

	Path        string `bson:"path" json:"-"` // storage key
	URL         string `bson:"url" json:"url"`
	FileName    string `bson:"file_name,omitempty" json:"fileName,omitempty"`
	ContentType string `bson:"content_type,omitempty" json:"contentType,omitempty"`
	Size        int64  `bson:"size,omitempty" json:"size,omitempty"`

	// Optional link back to the event the media was captured at.
	EventName string `bson:"event_name,omitempty" json:"eventName,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
