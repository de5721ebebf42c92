package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// table holds the lookups shared by the int64-keyed entity collections.
// notFound is returned whenever the addressed document does not exist.
type table[T any] struct {
	col      *mongo.Collection
	seq      sequence
	notFound error
}

func newTable[T any](db *mongo.Database, name string, notFound error) table[T] {
	return table[T]{col: db.Collection(name), seq: newSequence(db, name), notFound: notFound}
}

func (t table[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := t.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", t.col.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.col.Name(), err)
	}
	return out, nil
}

func (t table[T]) findByID(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := t.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, t.notFound
		}
		return nil, fmt.Errorf("find %s %d: %w", t.col.Name(), id, err)
	}
	return &doc, nil
}

// insert assigns the next id through setID before writing doc.
func (t table[T]) insert(ctx context.Context, doc *T, setID func(int64)) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := t.seq.next(ctx)
	if err != nil {
		return 0, err
	}
	setID(id)
	if _, err := t.col.InsertOne(ctx, doc); err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.col.Name(), err)
	}
	return id, nil
}

func (t table[T]) set(ctx context.Context, id int64, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := t.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s %d: %w", t.col.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return t.notFound
	}
	return nil
}

func (t table[T]) delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := t.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.col.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return t.notFound
	}
	return nil
}

func (t table[T]) index(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	models := make([]mongo.IndexModel, 0, len(keys))
	for _, k := range keys {
		models = append(models, mongo.IndexModel{Keys: bson.D{{Key: k, Value: 1}}})
	}
	_, err := t.col.Indexes().CreateMany(ctx, models)
	return err
}
