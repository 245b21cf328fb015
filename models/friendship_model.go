package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipDeclined = "declined"
)

// Friendship is a directed request row; the relation counts as mutual once
// the status is accepted, regardless of who initiated it.
type Friendship struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_pair" json:"requester_id"`
	AddresseeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_pair" json:"addressee_id"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Requester User `gorm:"foreignkey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignkey:AddresseeID" json:"addressee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
