// Package repotest provides in-memory repository implementations backing
// service, middleware and router tests without a running document store.
package repotest

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventplanner-api/internal/domain"
)

// Users is an in-memory domain.UserRepository. Set Err to force every
// call to fail with it.
type Users struct {
	Items []domain.User
	Err   error
}

func (r *Users) Create(_ context.Context, u *domain.User) error {
	if r.Err != nil {
		return r.Err
	}
	u.ID = primitive.NewObjectID()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.Items = append(r.Items, *u)
	return nil
}

func (r *Users) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() == id {
			u := r.Items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Items {
		if r.Items[i].Email == email {
			u := r.Items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Users) AdminExists(_ context.Context) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	for i := range r.Items {
		if r.Items[i].IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *Users) CountClients(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for i := range r.Items {
		if !r.Items[i].IsAdmin {
			n++
		}
	}
	return n, nil
}

// Inquiries is an in-memory domain.InquiryRepository. Items are kept in
// insertion order; listings return newest first like the mongo repo.
type Inquiries struct {
	Items []domain.Inquiry
	Err   error
	seq   int
}

func (r *Inquiries) Insert(_ context.Context, in *domain.Inquiry) error {
	if r.Err != nil {
		return r.Err
	}
	in.ID = primitive.NewObjectID()
	r.seq++
	ts := time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	in.CreatedAt = ts
	in.UpdatedAt = ts
	r.Items = append(r.Items, *in)
	return nil
}

func (r *Inquiries) FindAll(_ context.Context) ([]domain.Inquiry, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Inquiry, 0, len(r.Items))
	for i := len(r.Items) - 1; i >= 0; i-- {
		out = append(out, r.Items[i])
	}
	return out, nil
}

func (r *Inquiries) UpdateStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() == id {
			r.Items[i].Status = status
			r.Items[i].UpdatedAt = time.Now()
			in := r.Items[i]
			return &in, nil
		}
	}
	return nil, nil
}

func (r *Inquiries) Delete(_ context.Context, id string) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *Inquiries) Count(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.Items)), nil
}

func (r *Inquiries) CountByEventType(_ context.Context, t domain.EventType) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for i := range r.Items {
		if r.Items[i].EventType == t {
			n++
		}
	}
	return n, nil
}

func (r *Inquiries) CountByStatus(_ context.Context, s domain.InquiryStatus) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for i := range r.Items {
		if r.Items[i].Status == s {
			n++
		}
	}
	return n, nil
}

func (r *Inquiries) Recent(_ context.Context, limit int64) ([]domain.InquirySummary, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := []domain.InquirySummary{}
	for i := len(r.Items) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		in := r.Items[i]
		out = append(out, domain.InquirySummary{
			ID:            in.ID,
			Name:          in.Name,
			EventType:     in.EventType,
			PreferredDate: in.PreferredDate,
			Status:        in.Status,
		})
	}
	return out, nil
}

// Feedbacks is an in-memory domain.FeedbackRepository.
type Feedbacks struct {
	Items []domain.Feedback
	Err   error
	seq   int
}

func (r *Feedbacks) Insert(_ context.Context, f *domain.Feedback) error {
	if r.Err != nil {
		return r.Err
	}
	f.ID = primitive.NewObjectID()
	r.seq++
	ts := time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	f.CreatedAt = ts
	f.UpdatedAt = ts
	if f.Date.IsZero() {
		f.Date = ts
	}
	r.Items = append(r.Items, *f)
	return nil
}

func (r *Feedbacks) FindAll(_ context.Context) ([]domain.Feedback, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Feedback, 0, len(r.Items))
	for i := len(r.Items) - 1; i >= 0; i-- {
		out = append(out, r.Items[i])
	}
	return out, nil
}

func (r *Feedbacks) FindFeatured(_ context.Context, limit int64) ([]domain.Feedback, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := []domain.Feedback{}
	for i := len(r.Items) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.Items[i].Featured {
			out = append(out, r.Items[i])
		}
	}
	return out, nil
}

func (r *Feedbacks) FindByID(_ context.Context, id string) (*domain.Feedback, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() == id {
			f := r.Items[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *Feedbacks) Update(_ context.Context, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() != id {
			continue
		}
		f := &r.Items[i]
		if upd.Name != nil {
			f.Name = *upd.Name
		}
		if upd.Email != nil {
			f.Email = *upd.Email
		}
		if upd.EventType != nil {
			f.EventType = *upd.EventType
		}
		if upd.EventDate != nil {
			f.EventDate = *upd.EventDate
		}
		if upd.Rating != nil {
			f.Rating = *upd.Rating
		}
		if upd.Message != nil {
			f.Message = *upd.Message
		}
		if upd.Featured != nil {
			f.Featured = *upd.Featured
		}
		f.UpdatedAt = time.Now()
		out := *f
		return &out, nil
	}
	return nil, nil
}

func (r *Feedbacks) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Feedback, error) {
	return r.Update(ctx, id, domain.FeedbackUpdate{Featured: &featured})
}

func (r *Feedbacks) Delete(_ context.Context, id string) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	for i := range r.Items {
		if r.Items[i].ID.Hex() == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *Feedbacks) Count(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.Items)), nil
}

func (r *Feedbacks) Recent(_ context.Context, limit int64) ([]domain.FeedbackSummary, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := []domain.FeedbackSummary{}
	for i := len(r.Items) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		f := r.Items[i]
		out = append(out, domain.FeedbackSummary{
			ID:        f.ID,
			Name:      f.Name,
			EventType: f.EventType,
			Rating:    f.Rating,
			Featured:  f.Featured,
		})
	}
	return out, nil
}

var (
	_ domain.UserRepository     = (*Users)(nil)
	_ domain.InquiryRepository  = (*Inquiries)(nil)
	_ domain.FeedbackRepository = (*Feedbacks)(nil)
)
