package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivChilu/chicken-shop/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
	ordersCollection     = "orders"
	pincodesCollection   = "pincodes"
)

// publicProjection hides the storage-internal _id from every read.
var publicProjection = bson.M{"_id": 0}

// EnsureIndexes creates the unique public-id indexes, the unique pincode
// code index and the order listing index. It is safe to call repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{categoriesCollection, productsCollection, ordersCollection, pincodesCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("index %s.id: %w", name, err)
		}
	}
	if _, err := db.Collection(pincodesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("index pincodes.code: %w", err)
	}
	if _, err := db.Collection(ordersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("index orders.created_at: %w", err)
	}
	return nil
}

// NewStore wires all repositories onto one database. Close disconnects the
// client that owns db.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Orders:     NewOrderRepository(db),
		Pincodes:   NewPincodeRepository(db),
		Close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts.SetProjection(publicProjection))
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var v T
	err := coll.FindOne(ctx, filter, options.FindOne().SetProjection(publicProjection)).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func insertMany[T any](ctx context.Context, coll *mongo.Collection, docs []*T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]any, len(docs))
	for i, d := range docs {
		batch[i] = d
	}
	_, err := coll.InsertMany(ctx, batch)
	return translate(err)
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func translate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}
