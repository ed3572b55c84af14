package service

import (
	"context"
	"time"

	"eventplanner-api/internal/domain"
)

type InquiryService struct {
	inquiries domain.InquiryRepository
}

func NewInquiryService(inquiries domain.InquiryRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

type InquiryInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EventType     string `json:"eventType"`
	PreferredDate string `json:"preferredDate"`
	Location      string `json:"location"`
	Message       string `json:"message"`
}

func (s *InquiryService) Create(ctx context.Context, in InquiryInput) (*domain.Inquiry, error) {
	var bad []string
	if in.Name == "" {
		bad = append(bad, "name")
	}
	if in.Email == "" {
		bad = append(bad, "email")
	}
	if in.Phone == "" {
		bad = append(bad, "phone")
	}
	eventType := domain.EventType(in.EventType)
	if !eventType.Valid() {
		bad = append(bad, "eventType")
	}
	preferredDate, err := parseDate(in.PreferredDate)
	if err != nil {
		bad = append(bad, "preferredDate")
	}
	if in.Location == "" {
		bad = append(bad, "location")
	}
	if in.Message == "" {
		bad = append(bad, "message")
	}
	if len(bad) > 0 {
		return nil, domain.ErrValidation(bad...)
	}

	inquiry := &domain.Inquiry{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		EventType:     eventType,
		PreferredDate: preferredDate,
		Location:      in.Location,
		Message:       in.Message,
		Status:        domain.InquiryPending,
	}
	if err := s.inquiries.Insert(ctx, inquiry); err != nil {
		return nil, domain.ErrInternal(err)
	}
	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.inquiries.FindAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	return inquiries, nil
}

// UpdateStatus is idempotent: re-applying the current status succeeds and
// returns the unchanged document.
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) (*domain.Inquiry, error) {
	st := domain.InquiryStatus(status)
	if !st.Valid() {
		return nil, domain.ErrValidation("status")
	}
	inquiry, err := s.inquiries.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if inquiry == nil {
		return nil, domain.ErrNotFound("Inquiry")
	}
	return inquiry, nil
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.inquiries.Delete(ctx, id)
	if err != nil {
		return domain.ErrInternal(err)
	}
	if !deleted {
		return domain.ErrNotFound("Inquiry")
	}
	return nil
}

// parseDate accepts the SPA's date-input format and full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
