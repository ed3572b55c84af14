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

var sortNewestFirst = bson.D{{Key: "createdAt", Value: -1}}

type InquiryRepo struct{ col *mongo.Collection }

func NewInquiryRepo(col *mongo.Collection) *InquiryRepo { return &InquiryRepo{col: col} }

func (r *InquiryRepo) Insert(ctx context.Context, in *domain.Inquiry) error {
	now := time.Now()
	in.CreatedAt = now
	in.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, in)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		in.ID = oid
	}
	return nil
}

func (r *InquiryRepo) FindAll(ctx context.Context) ([]domain.Inquiry, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(sortNewestFirst))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	inquiries := []domain.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepo) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var in domain.Inquiry
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&in)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *InquiryRepo) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *InquiryRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *InquiryRepo) CountByEventType(ctx context.Context, t domain.EventType) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"eventType": t})
}

func (r *InquiryRepo) CountByStatus(ctx context.Context, s domain.InquiryStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": s})
}

func (r *InquiryRepo) Recent(ctx context.Context, limit int64) ([]domain.InquirySummary, error) {
	opts := options.Find().
		SetSort(sortNewestFirst).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "eventType": 1, "preferredDate": 1, "status": 1})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recent := []domain.InquirySummary{}
	if err := cursor.All(ctx, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}
