package kv

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	Version   int64     `bson:"version"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per key in a single collection. The key is
// the document _id, so exact reads and anchored prefix scans both use the
// primary index.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	return &MongoStore{col: db.Collection(collection)}
}

func (s *MongoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var doc kvDocument
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc.Value), nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{
			"$set": bson.M{"value": string(value), "updated_at": time.Now().UTC()},
			"$inc": bson.M{"version": 1},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []kvDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, Entry{Key: d.Key, Value: json.RawMessage(d.Value)})
	}
	return entries, nil
}

// Update reads the document with its version and writes back only if the
// version is unchanged, retrying when another writer got there first.
func (s *MongoStore) Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error) {
	for attempt := 0; attempt < MaxUpdateRetries; attempt++ {
		var doc kvDocument
		err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		next, err := fn(json.RawMessage(doc.Value))
		if err != nil {
			return nil, err
		}

		res, err := s.col.UpdateOne(ctx,
			bson.M{"_id": key, "version": doc.Version},
			bson.M{
				"$set": bson.M{"value": string(next), "updated_at": time.Now().UTC()},
				"$inc": bson.M{"version": 1},
			},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			return next, nil
		}
		observeRetry("mongo")
	}
	return nil, ErrConflict
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.col.Database().Client().Disconnect(ctx)
}
