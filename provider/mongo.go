package provider

import (
	"context"
	"fmt"

	"agent-dashboard/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSource reads record collections straight from the CRM database. It
// only ever reads; the dashboard owns no schema and writes nothing.
type MongoSource struct {
	bookings  *mongo.Collection
	inquiries *mongo.Collection
}

// NewMongoSource creates a source over the CRM's bookings and inquiries
// collections.
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{
		bookings:  db.Collection("bookings"),
		inquiries: db.Collection("inquiries"),
	}
}

func (s *MongoSource) Bookings(ctx context.Context) ([]model.Record, error) {
	return s.allRecords(ctx, s.bookings)
}

func (s *MongoSource) Inquiries(ctx context.Context) ([]model.Record, error) {
	return s.allRecords(ctx, s.inquiries)
}

func (s *MongoSource) allRecords(ctx context.Context, coll *mongo.Collection) ([]model.Record, error) {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %v: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var records []model.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %v: %w", coll.Name(), err)
	}

	return records, nil
}
