package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a health-check ping recorded by a client. The id is generated
// server-side and is distinct from MongoDB's _id.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"-" json:"timestamp"`
}

// StatusCheckCreate is the request body for creating a status check.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}

func NewStatusCheck(clientName string) StatusCheck {
	return StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
