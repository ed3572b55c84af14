package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventplanner-api/internal/domain"
)

type FeedbackRepo struct{ col *mongo.Collection }

func NewFeedbackRepo(col *mongo.Collection) *FeedbackRepo { return &FeedbackRepo{col: col} }

func (r *FeedbackRepo) Insert(ctx context.Context, f *domain.Feedback) error {
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	if f.Date.IsZero() {
		f.Date = now
	}
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid
	}
	return nil
}

func (r *FeedbackRepo) FindAll(ctx context.Context) ([]domain.Feedback, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(sortNewestFirst))
}

func (r *FeedbackRepo) FindFeatured(ctx context.Context, limit int64) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(sortNewestFirst).SetLimit(limit)
	return r.find(ctx, bson.M{"featured": true}, opts)
}

func (r *FeedbackRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Feedback, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []domain.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *FeedbackRepo) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var f domain.Feedback
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Update sets only the supplied fields; absent fields are untouched.
func (r *FeedbackRepo) Update(ctx context.Context, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.EventType != nil {
		set["eventType"] = *upd.EventType
	}
	if upd.EventDate != nil {
		set["eventDate"] = *upd.EventDate
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.Message != nil {
		set["message"] = *upd.Message
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *FeedbackRepo) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Feedback, error) {
	return r.findOneAndSet(ctx, id, bson.M{"featured": featured, "updatedAt": time.Now()})
}

func (r *FeedbackRepo) findOneAndSet(ctx context.Context, id string, set bson.M) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var f domain.Feedback
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *FeedbackRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *FeedbackRepo) Recent(ctx context.Context, limit int64) ([]domain.FeedbackSummary, error) {
	opts := options.Find().
		SetSort(sortNewestFirst).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "eventType": 1, "rating": 1, "featured": 1})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recent := []domain.FeedbackSummary{}
	if err := cursor.All(ctx, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}
