package service

import (
	"context"

	"eventplanner-api/internal/domain"
)

const recentLimit = 5

type DashboardService struct {
	users     domain.UserRepository
	inquiries domain.InquiryRepository
	feedbacks domain.FeedbackRepository
}

func NewDashboardService(users domain.UserRepository, inquiries domain.InquiryRepository, feedbacks domain.FeedbackRepository) *DashboardService {
	return &DashboardService{users: users, inquiries: inquiries, feedbacks: feedbacks}
}

type InquiriesByType struct {
	Weddings      int64 `json:"weddings"`
	Birthdays     int64 `json:"birthdays"`
	Anniversaries int64 `json:"anniversaries"`
	Corporate     int64 `json:"corporate"`
}

type InquiriesByStatus struct {
	Pending int64 `json:"pending"`
	Handled int64 `json:"handled"`
}

type DashboardStats struct {
	TotalClients      int64                    `json:"totalClients"`
	TotalInquiries    int64                    `json:"totalInquiries"`
	TotalFeedbacks    int64                    `json:"totalFeedbacks"`
	InquiriesByType   InquiriesByType          `json:"inquiriesByType"`
	InquiriesByStatus InquiriesByStatus        `json:"inquiriesByStatus"`
	RecentInquiries   []domain.InquirySummary  `json:"recentInquiries"`
	RecentFeedbacks   []domain.FeedbackSummary `json:"recentFeedbacks"`
}

// Stats recomputes the whole view on every call; nothing is cached.
// "other" inquiries count toward the total but get no bucket of their own.
// Any sub-query failure aborts the aggregation.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalClients, err = s.users.CountClients(ctx); err != nil {
		return nil, domain.ErrAggregation(err)
	}
	if stats.TotalInquiries, err = s.inquiries.Count(ctx); err != nil {
		return nil, domain.ErrAggregation(err)
	}
	if stats.TotalFeedbacks, err = s.feedbacks.Count(ctx); err != nil {
		return nil, domain.ErrAggregation(err)
	}

	byType := &stats.InquiriesByType
	for _, bucket := range []struct {
		t    domain.EventType
		dest *int64
	}{
		{domain.EventWedding, &byType.Weddings},
		{domain.EventBirthday, &byType.Birthdays},
		{domain.EventAnniversary, &byType.Anniversaries},
		{domain.EventCorporate, &byType.Corporate},
	} {
		if *bucket.dest, err = s.inquiries.CountByEventType(ctx, bucket.t); err != nil {
			return nil, domain.ErrAggregation(err)
		}
	}

	if stats.InquiriesByStatus.Pending, err = s.inquiries.CountByStatus(ctx, domain.InquiryPending); err != nil {
		return nil, domain.ErrAggregation(err)
	}
	if stats.InquiriesByStatus.Handled, err = s.inquiries.CountByStatus(ctx, domain.InquiryHandled); err != nil {
		return nil, domain.ErrAggregation(err)
	}

	if stats.RecentInquiries, err = s.inquiries.Recent(ctx, recentLimit); err != nil {
		return nil, domain.ErrAggregation(err)
	}
	if stats.RecentFeedbacks, err = s.feedbacks.Recent(ctx, recentLimit); err != nil {
		return nil, domain.ErrAggregation(err)
	}
	return stats, nil
}
