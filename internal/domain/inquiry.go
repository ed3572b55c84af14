package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventWedding     EventType = "wedding"
	EventBirthday    EventType = "birthday"
	EventAnniversary EventType = "anniversary"
	EventCorporate   EventType = "corporate"
	EventOther       EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventWedding, EventBirthday, EventAnniversary, EventCorporate, EventOther:
		return true
	}
	return false
}

type InquiryStatus string

const (
	InquiryPending InquiryStatus = "pending"
	InquiryHandled InquiryStatus = "handled"
)

func (s InquiryStatus) Valid() bool {
	return s == InquiryPending || s == InquiryHandled
}

type Inquiry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	EventType     EventType          `bson:"eventType" json:"eventType"`
	PreferredDate time.Time          `bson:"preferredDate" json:"preferredDate"`
	Location      string             `bson:"location" json:"location"`
	Message       string             `bson:"message" json:"message"`
	Status        InquiryStatus      `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InquirySummary is the projection used by the dashboard recents.
type InquirySummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	EventType     EventType          `bson:"eventType" json:"eventType"`
	PreferredDate time.Time          `bson:"preferredDate" json:"preferredDate"`
	Status        InquiryStatus      `bson:"status" json:"status"`
}

type InquiryRepository interface {
	Insert(ctx context.Context, in *Inquiry) error
	// FindAll returns all inquiries, newest first.
	FindAll(ctx context.Context) ([]Inquiry, error)
	// UpdateStatus returns (nil, nil) when the id does not resolve.
	UpdateStatus(ctx context.Context, id string, status InquiryStatus) (*Inquiry, error)
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByEventType(ctx context.Context, t EventType) (int64, error)
	CountByStatus(ctx context.Context, s InquiryStatus) (int64, error)
	Recent(ctx context.Context, limit int64) ([]InquirySummary, error)
}
