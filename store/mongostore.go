package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a MongoDB database. Document keys
// are kept as plain strings in _id so that caller-chosen keys (usernames,
// "role_access", "main") and generated keys live in the same namespace.
type MongoStore struct {
	DB *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db}
}

func (s *MongoStore) Get(ctx context.Context, collection, key string) (M, error) {
	var raw bson.M
	err := s.DB.Collection(collection).FindOne(ctx, bson.M{"_id": key}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	fields := normalizeMap(raw)
	delete(fields, "_id")
	return fields, nil
}

func (s *MongoStore) Set(ctx context.Context, collection, key string, fields M, merge bool) error {
	resolved := resolveTimestamps(fields)
	if merge {
		opts := options.Update().SetUpsert(true)
		_, err := s.DB.Collection(collection).UpdateOne(ctx,
			bson.M{"_id": key}, bson.M{"$set": bson.M(resolved)}, opts)
		return err
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.DB.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": key}, bson.M(resolved), opts)
	return err
}

func (s *MongoStore) Update(ctx context.Context, collection, key string, fields M) error {
	resolved := resolveTimestamps(fields)
	result, err := s.DB.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": key}, bson.M{"$set": bson.M(resolved)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, key string) error {
	result, err := s.DB.Collection(collection).DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Add(ctx context.Context, collection string, fields M) (string, error) {
	key := primitive.NewObjectID().Hex()
	resolved := resolveTimestamps(fields)
	resolved["_id"] = key
	_, err := s.DB.Collection(collection).InsertOne(ctx, bson.M(resolved))
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter M, opts QueryOpts) ([]Doc, error) {
	mongoFilter := bson.M{}
	for k, v := range filter {
		mongoFilter[k] = v
	}

	findOpts := options.Find()
	if opts.SortBy != "" {
		order := 1
		if opts.Descending {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortBy, Value: order}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.DB.Collection(collection).Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Doc
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		fields := normalizeMap(raw)
		id, _ := fields["_id"].(string)
		delete(fields, "_id")
		docs = append(docs, Doc{ID: id, Fields: fields})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// resolveTimestamps returns a copy of fields with every ServerTimestamp
// sentinel replaced by the current time.
func resolveTimestamps(fields M) M {
	out := make(M, len(fields))
	now := time.Now().UTC()
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = now
			continue
		}
		out[k] = v
	}
	return out
}

// normalizeMap converts decoded bson values into the plain map/slice shapes
// the handlers work with (bson.M -> map[string]any, bson.A -> []any).
func normalizeMap(in bson.M) M {
	out := make(M, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return normalizeMap(val)
	case bson.D:
		m := make(M, len(val))
		for _, e := range val {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case bson.A:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = normalizeValue(e)
		}
		return s
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
