package menu

import (
	"context"

	"go-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository is the injected store boundary: the real implementation is
// Mongo, tests and mock mode use the in-memory one.
type MenuRepository interface {
	List(ctx context.Context) ([]Menu, error)
	FindByID(ctx context.Context, id string) (*Menu, error)
	FindActiveByPath(ctx context.Context, path string) (*Menu, error)
	Insert(ctx context.Context, menu *Menu) error
	Update(ctx context.Context, id string, menu *Menu) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
}

type MenuRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewMenuRepository(mongodb *database.MongodbDB) MenuRepository {
	return &MenuRepositoryImpl{
		Collection: mongodb.DB.Collection("menus"),
	}
}

func (r *MenuRepositoryImpl) List(ctx context.Context) ([]Menu, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var menus []Menu
	if err = cursor.All(ctx, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepositoryImpl) FindByID(ctx context.Context, id string) (*Menu, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var m Menu
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepositoryImpl) FindActiveByPath(ctx context.Context, path string) (*Menu, error) {
	var m Menu
	if err := r.Collection.FindOne(ctx, bson.M{"path": path, "is_active": true}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepositoryImpl) Insert(ctx context.Context, menu *Menu) error {
	_, err := r.Collection.InsertOne(ctx, menu)
	return err
}

func (r *MenuRepositoryImpl) Update(ctx context.Context, id string, menu *Menu) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	update := bson.M{
		"$set": bson.M{
			"name":       menu.Name,
			"path":       menu.Path,
			"icon":       menu.Icon,
			"roles":      menu.Roles,
			"parent":     menu.Parent,
			"order":      menu.Order,
			"is_active":  menu.IsActive,
			"updated_at": menu.UpdatedAt,
		},
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MenuRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *MenuRepositoryImpl) CountChildren(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	return r.Collection.CountDocuments(ctx, bson.M{"parent": objectID, "is_active": true})
}
