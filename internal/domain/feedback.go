package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	EventType EventType          `bson:"eventType" json:"eventType"`
	EventDate time.Time          `bson:"eventDate" json:"eventDate"`
	Rating    int                `bson:"rating" json:"rating"`
	Message   string             `bson:"message" json:"message"`
	Featured  bool               `bson:"featured" json:"featured"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FeedbackUpdate carries only the fields the caller supplied; nil means
// "leave untouched".
type FeedbackUpdate struct {
	Name      *string
	Email     *string
	EventType *EventType
	EventDate *time.Time
	Rating    *int
	Message   *string
	Featured  *bool
}

// FeedbackSummary is the projection used by the dashboard recents.
type FeedbackSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	EventType EventType          `bson:"eventType" json:"eventType"`
	Rating    int                `bson:"rating" json:"rating"`
	Featured  bool               `bson:"featured" json:"featured"`
}

type FeedbackRepository interface {
	Insert(ctx context.Context, f *Feedback) error
	FindAll(ctx context.Context) ([]Feedback, error)
	FindFeatured(ctx context.Context, limit int64) ([]Feedback, error)
	// FindByID returns (nil, nil) when no feedback matches.
	FindByID(ctx context.Context, id string) (*Feedback, error)
	// Update applies the supplied fields and returns the updated document,
	// or (nil, nil) when the id does not resolve.
	Update(ctx context.Context, id string, upd FeedbackUpdate) (*Feedback, error)
	SetFeatured(ctx context.Context, id string, featured bool) (*Feedback, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int64) ([]FeedbackSummary, error)
}
