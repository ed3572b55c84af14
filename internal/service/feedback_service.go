package service

import (
	"context"

	"eventplanner-api/internal/domain"
)

const featuredLimit = 6

type FeedbackService struct {
	feedbacks domain.FeedbackRepository
}

func NewFeedbackService(feedbacks domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks}
}

type FeedbackInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	EventDate string `json:"eventDate"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
}

// FeedbackUpdateInput carries optional fields; nil means not supplied.
type FeedbackUpdateInput struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	EventType *string `json:"eventType"`
	EventDate *string `json:"eventDate"`
	Rating    *int    `json:"rating"`
	Message   *string `json:"message"`
	Featured  *bool   `json:"featured"`
}

// Create stores a public submission. The featured flag always starts
// false no matter what the client sent.
func (s *FeedbackService) Create(ctx context.Context, in FeedbackInput) (*domain.Feedback, error) {
	var bad []string
	if in.Name == "" {
		bad = append(bad, "name")
	}
	if in.Email == "" {
		bad = append(bad, "email")
	}
	eventType := domain.EventType(in.EventType)
	if !eventType.Valid() {
		bad = append(bad, "eventType")
	}
	eventDate, err := parseDate(in.EventDate)
	if err != nil {
		bad = append(bad, "eventDate")
	}
	if in.Rating < 1 || in.Rating > 5 {
		bad = append(bad, "rating")
	}
	if in.Message == "" {
		bad = append(bad, "message")
	}
	if len(bad) > 0 {
		return nil, domain.ErrValidation(bad...)
	}

	feedback := &domain.Feedback{
		Name:      in.Name,
		Email:     in.Email,
		EventType: eventType,
		EventDate: eventDate,
		Rating:    in.Rating,
		Message:   in.Message,
		Featured:  false,
	}
	if err := s.feedbacks.Insert(ctx, feedback); err != nil {
		return nil, domain.ErrInternal(err)
	}
	return feedback, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	feedbacks, err := s.feedbacks.FindAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	return feedbacks, nil
}

func (s *FeedbackService) ListFeatured(ctx context.Context) ([]domain.Feedback, error) {
	feedbacks, err := s.feedbacks.FindFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	return feedbacks, nil
}

func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	feedback, err := s.feedbacks.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if feedback == nil {
		return nil, domain.ErrNotFound("Feedback")
	}
	return feedback, nil
}

// Update applies only the supplied fields; everything else stays as
// stored. Supplied fields are validated under the creation rules.
func (s *FeedbackService) Update(ctx context.Context, id string, in FeedbackUpdateInput) (*domain.Feedback, error) {
	var bad []string
	upd := domain.FeedbackUpdate{
		Name:     in.Name,
		Email:    in.Email,
		Message:  in.Message,
		Featured: in.Featured,
	}
	if in.EventType != nil {
		eventType := domain.EventType(*in.EventType)
		if !eventType.Valid() {
			bad = append(bad, "eventType")
		}
		upd.EventType = &eventType
	}
	if in.EventDate != nil {
		eventDate, err := parseDate(*in.EventDate)
		if err != nil {
			bad = append(bad, "eventDate")
		}
		upd.EventDate = &eventDate
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			bad = append(bad, "rating")
		}
		upd.Rating = in.Rating
	}
	if len(bad) > 0 {
		return nil, domain.ErrValidation(bad...)
	}

	feedback, err := s.feedbacks.Update(ctx, id, upd)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if feedback == nil {
		return nil, domain.ErrNotFound("Feedback")
	}
	return feedback, nil
}

func (s *FeedbackService) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Feedback, error) {
	feedback, err := s.feedbacks.SetFeatured(ctx, id, featured)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if feedback == nil {
		return nil, domain.ErrNotFound("Feedback")
	}
	return feedback, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	deleted, err := s.feedbacks.Delete(ctx, id)
	if err != nil {
		return domain.ErrInternal(err)
	}
	if !deleted {
		return domain.ErrNotFound("Feedback")
	}
	return nil
}
