package permission

import (
	"context"

	"go-dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	FindByName(ctx context.Context, name string) (*Permission, error)
	List(ctx context.Context) ([]Permission, error)
}

type PermissionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPermissionRepository(mongodb *database.MongodbDB) PermissionRepository {
	return &PermissionRepositoryImpl{
		Collection: mongodb.DB.Collection("permissions"),
	}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, permission *Permission) error {
	_, err := r.Collection.InsertOne(ctx, permission)
	return err
}

func (r *PermissionRepositoryImpl) FindByName(ctx context.Context, name string) (*Permission, error) {
	var p Permission
	if err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepositoryImpl) List(ctx context.Context) ([]Permission, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var permissions []Permission
	if err = cursor.All(ctx, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}
