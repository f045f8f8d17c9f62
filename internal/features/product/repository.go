package product

import (
	"context"

	"go-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	List(ctx context.Context, filter Filter) ([]Product, int64, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	Insert(ctx context.Context, product *Product) error
	Update(ctx context.Context, id string, product *Product) error
	Delete(ctx context.Context, id string) error
	UpdateMany(ctx context.Context, ids []string, fields map[string]interface{}) (int64, error)
}

type ProductRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewProductRepository(mongodb *database.MongodbDB) ProductRepository {
	return &ProductRepositoryImpl{
		Collection: mongodb.DB.Collection("products"),
	}
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter Filter) ([]Product, int64, error) {
	query := bson.M{"is_active": true}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": regex}},
			{"sku": bson.M{"$regex": regex}},
			{"barcode": bson.M{"$regex": regex}},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.LowStock {
		query["$expr"] = bson.M{"$lte": bson.A{"$stock", "$min_stock"}}
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sortField := "created_at"
	if filter.SortBy != "" {
		sortField = filter.SortBy
	}
	sortDir := -1
	if filter.SortOrder == "asc" {
		sortDir = 1
	}

	opts := options.Find().
		SetSkip((filter.Page - 1) * filter.Limit).
		SetLimit(filter.Limit).
		SetSort(bson.D{{Key: sortField, Value: sortDir}})

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var p Product
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepositoryImpl) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	var p Product
	if err := r.Collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepositoryImpl) Insert(ctx context.Context, product *Product) error {
	_, err := r.Collection.InsertOne(ctx, product)
	return err
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, id string, product *Product) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProductRepositoryImpl) UpdateMany(ctx context.Context, ids []string, fields map[string]interface{}) (int64, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objectIDs}},
		bson.M{"$set": set},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
