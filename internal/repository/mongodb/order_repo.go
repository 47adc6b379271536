package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderRepo struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepo{coll: db.Collection(ordersCollection)}
}

func (r *orderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	filter := bson.M{}
	if f.Date != "" {
		filter["created_at"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.Date)}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(repository.OrderLimit)
	out, err := findAll[domain.Order](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *orderRepo) Save(ctx context.Context, o *domain.Order) error {
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("save order: %w", translate(err))
	}
	return nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return res.MatchedCount > 0, nil
}
