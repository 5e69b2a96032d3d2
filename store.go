// store.go

package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the document-store contract all handlers go through. One
// implementation wraps the shared mongo database handle; tests swap in
// an in-memory fake.
type Store interface {
	List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (interface{}, error)
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, patch bson.M) (int64, error)
	UpdateOne(ctx context.Context, collection string, filter bson.M, patch bson.M) (*mongo.UpdateResult, error)
	Upsert(ctx context.Context, collection string, filter bson.M, doc bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error)
}

type mongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *mongoStore) InsertOne(ctx context.Context, collection string, doc bson.M) (interface{}, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// UpdateByID merge-patches the document with $set. The modified count is
// zero both when no document matches and when the patch changes nothing;
// callers cannot tell the two apart.
func (s *mongoStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, patch bson.M) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoStore) UpdateOne(ctx context.Context, collection string, filter bson.M, patch bson.M) (*mongo.UpdateResult, error) {
	return s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": patch})
}

func (s *mongoStore) Upsert(ctx context.Context, collection string, filter bson.M, doc bson.M) (*mongo.UpdateResult, error) {
	return s.db.Collection(collection).ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
}

func (s *mongoStore) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
