// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event statuses. An event is shown in the public calendar bucketed by
// its status rather than by comparing dates at render time.
const (
	EventUpcoming = "upcoming"
	EventOngoing  = "ongoing"
	EventPast     = "past"
)

// EventStatuses lists the valid values for Event.Status.
var EventStatuses = []string{EventUpcoming, EventOngoing, EventPast}

// Event is a club event (workshop, talk, competition) shown on the
// public events page and managed from the admin back office.
type Event struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"event_name" json:"eventName"`
	NameCI string             `bson:"event_name_ci" json:"-"` // lowercase, diacritics-stripped

	Date      string `bson:"date,omitempty" json:"date,omitempty"` // YYYY-MM-DD
	StartTime string `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime   string `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Place     string `bson:"place,omitempty" json:"place,omitempty"`

	Details     string `bson:"details,omitempty" json:"details,omitempty"` // sanitized HTML
	PosterPath  string `bson:"poster_path,omitempty" json:"-"`             // storage key for the poster
	PosterURL   string `bson:"poster_url,omitempty" json:"posterURL,omitempty"`
	RegFormLink string `bson:"reg_form_link,omitempty" json:"regFormLink,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	Status      string `bson:"status" json:"status"` // upcoming | ongoing | past

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidEventStatus reports whether s is one of the event status values.
func IsValidEventStatus(s string) bool {
	for _, v := range EventStatuses {
		if s == v {
			return true
		}
	}
	return false
}
