// Package mongodb implements the inventory persistence ports on MongoDB.
package mongodb

import (
	"context"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemRepository implements ItemRepository on MongoDB.
type MongoItemRepository struct {
	collection *mongo.Collection
}

// NewMongoItemRepository creates the item repository and its indexes.
func NewMongoItemRepository(db *mongo.Database) (*MongoItemRepository, error) {
	repo := &MongoItemRepository{
		collection: db.Collection("inventory_items"),
	}

	ctx := context.Background()

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, idIndex); err != nil {
		return nil, err
	}

	typeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, typeIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new item.
func (r *MongoItemRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// GetByID returns one item by its string ID.
func (r *MongoItemRepository) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List returns items matching the filter, most recently updated first.
func (r *MongoItemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*model.InventoryItem, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.LowStock {
		// Quantity at or below the per-item reorder threshold.
		query["$expr"] = bson.M{"$lte": bson.A{"$quantity", "$minimum_quantity"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]*model.InventoryItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the stored document for the item.
func (r *MongoItemRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by ID.
func (r *MongoItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

var _ repository.ItemRepository = (*MongoItemRepository)(nil)
