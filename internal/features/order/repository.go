package order

import (
	"context"
	"time"

	"go-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	List(ctx context.Context, filter Filter) ([]Order, int64, error)
	FindByID(ctx context.Context, id string) (*Order, error)
	Insert(ctx context.Context, order *Order) error
	Update(ctx context.Context, id string, order *Order) error
	// All returns every order in the window, unpaginated, for report
	// aggregation.
	All(ctx context.Context, from, to *time.Time) ([]Order, error)
}

type OrderRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewOrderRepository(mongodb *database.MongodbDB) OrderRepository {
	return &OrderRepositoryImpl{
		Collection: mongodb.DB.Collection("orders"),
	}
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter Filter) ([]Order, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"order_number": bson.M{"$regex": regex}},
			{"customer.name": bson.M{"$regex": regex}},
			{"customer.email": bson.M{"$regex": regex}},
			{"invoice_number": bson.M{"$regex": regex}},
		}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		query["payment_status"] = filter.PaymentStatus
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		window := bson.M{}
		if filter.DateFrom != nil {
			window["$gte"] = *filter.DateFrom
		}
		if filter.DateTo != nil {
			window["$lte"] = *filter.DateTo
		}
		query["created_at"] = window
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

	var orders []Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var o Order
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepositoryImpl) Insert(ctx context.Context, order *Order) error {
	_, err := r.Collection.InsertOne(ctx, order)
	return err
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, id string, order *Order) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, order)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *OrderRepositoryImpl) All(ctx context.Context, from, to *time.Time) ([]Order, error) {
	query := bson.M{}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = *from
		}
		if to != nil {
			window["$lte"] = *to
		}
		query["created_at"] = window
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
