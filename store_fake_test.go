// store_fake_test.go

package main

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore is an in-memory Store for handler tests. It mirrors the bits of
// mongo semantics the handlers rely on: minted _id on insert, ErrNoDocuments
// on a miss, and a modified count that stays zero for a no-op patch.
type memStore struct {
	collections map[string][]bson.M
	failWith    error
}

func newMemStore() *memStore {
	return &memStore{collections: map[string][]bson.M{}}
}

func cloneDoc(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func (m *memStore) List(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			out = append(out, cloneDoc(doc))
		}
	}
	return out, nil
}

func (m *memStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return cloneDoc(doc), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memStore) InsertOne(_ context.Context, collection string, doc bson.M) (interface{}, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	stored := cloneDoc(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.collections[collection] = append(m.collections[collection], stored)
	return stored["_id"], nil
}

func (m *memStore) UpdateByID(_ context.Context, collection string, id primitive.ObjectID, patch bson.M) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	for _, doc := range m.collections[collection] {
		if doc["_id"] != id {
			continue
		}
		var modified int64
		for k, v := range patch {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				modified = 1
			}
		}
		return modified, nil
	}
	return 0, nil
}

func (m *memStore) UpdateOne(_ context.Context, collection string, filter bson.M, patch bson.M) (*mongo.UpdateResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		res := &mongo.UpdateResult{MatchedCount: 1}
		for k, v := range patch {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				res.ModifiedCount = 1
			}
		}
		return res, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memStore) Upsert(_ context.Context, collection string, filter bson.M, doc bson.M) (*mongo.UpdateResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i, existing := range m.collections[collection] {
		if !matches(existing, filter) {
			continue
		}
		replacement := cloneDoc(doc)
		replacement["_id"] = existing["_id"]
		m.collections[collection][i] = replacement
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	stored := cloneDoc(doc)
	stored["_id"] = primitive.NewObjectID()
	m.collections[collection] = append(m.collections[collection], stored)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: stored["_id"]}, nil
}

func (m *memStore) DeleteByID(_ context.Context, collection string, id primitive.ObjectID) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	docs := m.collections[collection]
	for i, doc := range docs {
		if doc["_id"] == id {
			m.collections[collection] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
