package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepo{coll: db.Collection(categoriesCollection)}
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	out, err := findAll[domain.Category](ctx, r.coll, bson.M{}, options.Find().SetLimit(repository.CategoryLimit))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (r *categoryRepo) Save(ctx context.Context, c *domain.Category) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("save category: %w", translate(err))
	}
	return nil
}

func (r *categoryRepo) SaveBatch(ctx context.Context, cs []*domain.Category) error {
	if err := insertMany(ctx, r.coll, cs); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return ok, nil
}

type productRepo struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepo{coll: db.Collection(productsCollection)}
}

func (r *productRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	out, err := findAll[domain.Product](ctx, r.coll, filter, options.Find().SetLimit(repository.ProductLimit))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := findOne[domain.Product](ctx, r.coll, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func (r *productRepo) Save(ctx context.Context, p *domain.Product) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("save product: %w", translate(err))
	}
	return nil
}

func (r *productRepo) SaveBatch(ctx context.Context, ps []*domain.Product) error {
	if err := insertMany(ctx, r.coll, ps); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		// $set with an empty document is rejected by the server.
		return r.FindByID(ctx, id)
	}

	var p domain.Product
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(publicProjection)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return ok, nil
}

type pincodeRepo struct {
	coll *mongo.Collection
}

func NewPincodeRepository(db *mongo.Database) repository.PincodeRepository {
	return &pincodeRepo{coll: db.Collection(pincodesCollection)}
}

func (r *pincodeRepo) List(ctx context.Context) ([]domain.Pincode, error) {
	out, err := findAll[domain.Pincode](ctx, r.coll, bson.M{}, options.Find().SetLimit(repository.PincodeLimit))
	if err != nil {
		return nil, fmt.Errorf("list pincodes: %w", err)
	}
	return out, nil
}

func (r *pincodeRepo) FindByCode(ctx context.Context, code string) (*domain.Pincode, error) {
	p, err := findOne[domain.Pincode](ctx, r.coll, bson.M{"code": code})
	if err != nil {
		return nil, fmt.Errorf("find pincode: %w", err)
	}
	return p, nil
}

func (r *pincodeRepo) Save(ctx context.Context, p *domain.Pincode) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("save pincode: %w", translate(err))
	}
	return nil
}

func (r *pincodeRepo) SaveBatch(ctx context.Context, ps []*domain.Pincode) error {
	if err := insertMany(ctx, r.coll, ps); err != nil {
		return fmt.Errorf("save pincodes: %w", err)
	}
	return nil
}

func (r *pincodeRepo) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		return false, fmt.Errorf("delete pincode: %w", err)
	}
	return ok, nil
}
