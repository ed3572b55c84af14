package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/repo/repotest"
)

func validFeedback() FeedbackInput {
	return FeedbackInput{
		Name:      "Carol",
		Email:     "carol@example.com",
		EventType: "birthday",
		EventDate: "2024-11-20",
		Rating:    5,
		Message:   "great party",
	}
}

func TestFeedbackCreateForcesFeaturedFalse(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	f, err := svc.Create(context.Background(), validFeedback())
	require.NoError(t, err)
	assert.False(t, f.Featured)
	assert.False(t, f.Date.IsZero())
}

func TestFeedbackRatingBounds(t *testing.T) {
	svc := NewFeedbackService(&repotest.Feedbacks{})

	for _, rating := range []int{0, 6, -1, 100} {
		input := validFeedback()
		input.Rating = rating

		_, err := svc.Create(context.Background(), input)
		var de *domain.Error
		require.ErrorAs(t, err, &de, "rating %d", rating)
		assert.Equal(t, domain.CodeValidation, de.Code)
		assert.Contains(t, de.Fields, "rating")
	}

	for rating := 1; rating <= 5; rating++ {
		input := validFeedback()
		input.Rating = rating
		_, err := svc.Create(context.Background(), input)
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestFeedbackFeaturedRoundTrip(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	f, err := svc.Create(context.Background(), validFeedback())
	require.NoError(t, err)

	_, err = svc.SetFeatured(context.Background(), f.ID.Hex(), true)
	require.NoError(t, err)

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, f.ID, featured[0].ID)

	_, err = svc.SetFeatured(context.Background(), f.ID.Hex(), false)
	require.NoError(t, err)

	featured, err = svc.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, featured)
}

func TestFeedbackListFeaturedCapped(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	for i := 0; i < 8; i++ {
		f, err := svc.Create(context.Background(), validFeedback())
		require.NoError(t, err)
		_, err = svc.SetFeatured(context.Background(), f.ID.Hex(), true)
		require.NoError(t, err)
	}

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 6)
}

func TestFeedbackPartialUpdate(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	f, err := svc.Create(context.Background(), validFeedback())
	require.NoError(t, err)

	newRating := 3
	updated, err := svc.Update(context.Background(), f.ID.Hex(), FeedbackUpdateInput{Rating: &newRating})
	require.NoError(t, err)

	// only rating changed; everything else stays as stored
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, f.Name, updated.Name)
	assert.Equal(t, f.Email, updated.Email)
	assert.Equal(t, f.EventType, updated.EventType)
	assert.Equal(t, f.Message, updated.Message)
	assert.Equal(t, f.Featured, updated.Featured)
}

func TestFeedbackUpdateValidatesSuppliedFields(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	f, err := svc.Create(context.Background(), validFeedback())
	require.NoError(t, err)

	badRating := 9
	badType := "gala"
	_, err = svc.Update(context.Background(), f.ID.Hex(), FeedbackUpdateInput{Rating: &badRating, EventType: &badType})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.ElementsMatch(t, []string{"rating", "eventType"}, de.Fields)
}

func TestFeedbackUpdateNotFound(t *testing.T) {
	svc := NewFeedbackService(&repotest.Feedbacks{})

	name := "Nobody"
	_, err := svc.Update(context.Background(), "64b0c3f7a1b2c3d4e5f60718", FeedbackUpdateInput{Name: &name})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeNotFound, de.Code)
}

func TestFeedbackDeleteNotFound(t *testing.T) {
	svc := NewFeedbackService(&repotest.Feedbacks{})

	err := svc.Delete(context.Background(), "64b0c3f7a1b2c3d4e5f60718")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeNotFound, de.Code)
}

func TestFeedbackGet(t *testing.T) {
	store := &repotest.Feedbacks{}
	svc := NewFeedbackService(store)

	f, err := svc.Create(context.Background(), validFeedback())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), f.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)

	_, err = svc.Get(context.Background(), "64b0c3f7a1b2c3d4e5f60718")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeNotFound, de.Code)
}
