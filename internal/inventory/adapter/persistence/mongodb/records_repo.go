package mongodb

import (
	"context"
	"time"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOperationRepository implements OperationRepository on MongoDB.
type MongoOperationRepository struct {
	collection *mongo.Collection
}

// NewMongoOperationRepository creates the operation repository.
func NewMongoOperationRepository(db *mongo.Database) (*MongoOperationRepository, error) {
	repo := &MongoOperationRepository{
		collection: db.Collection("operations"),
	}
	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), idIndex); err != nil {
		return nil, err
	}
	return repo, nil
}

// Create inserts a new operation.
func (r *MongoOperationRepository) Create(ctx context.Context, op *model.Operation) error {
	_, err := r.collection.InsertOne(ctx, op)
	return err
}

// GetByID returns one operation by its string ID.
func (r *MongoOperationRepository) GetByID(ctx context.Context, id string) (*model.Operation, error) {
	var op model.Operation
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&op)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrOperationNotFound
		}
		return nil, err
	}
	return &op, nil
}

// List returns all operations, soonest first.
func (r *MongoOperationRepository) List(ctx context.Context) ([]*model.Operation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "operation_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ops := make([]*model.Operation, 0)
	if err := cursor.All(ctx, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// UpdateStatus sets the operation status.
func (r *MongoOperationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.ErrOperationNotFound
	}
	return nil
}

// MongoPatientRepository implements PatientRepository on MongoDB.
type MongoPatientRepository struct {
	collection *mongo.Collection
}

// NewMongoPatientRepository creates the patient repository.
func NewMongoPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{collection: db.Collection("patients")}
}

// Create inserts a new patient.
func (r *MongoPatientRepository) Create(ctx context.Context, p *model.Patient) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

// GetByID returns one patient by its string ID.
func (r *MongoPatientRepository) GetByID(ctx context.Context, id string) (*model.Patient, error) {
	var p model.Patient
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrPatientNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all patients by name.
func (r *MongoPatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := make([]*model.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// MongoProviderRepository implements ProviderRepository on MongoDB.
type MongoProviderRepository struct {
	collection *mongo.Collection
}

// NewMongoProviderRepository creates the provider repository.
func NewMongoProviderRepository(db *mongo.Database) *MongoProviderRepository {
	return &MongoProviderRepository{collection: db.Collection("providers")}
}

// Create inserts a new provider.
func (r *MongoProviderRepository) Create(ctx context.Context, p *model.Provider) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

// GetByID returns one provider by its string ID.
func (r *MongoProviderRepository) GetByID(ctx context.Context, id string) (*model.Provider, error) {
	var p model.Provider
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrProviderNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all providers by name.
func (r *MongoProviderRepository) List(ctx context.Context) ([]*model.Provider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	providers := make([]*model.Provider, 0)
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

var (
	_ repository.OperationRepository = (*MongoOperationRepository)(nil)
	_ repository.PatientRepository   = (*MongoPatientRepository)(nil)
	_ repository.ProviderRepository  = (*MongoProviderRepository)(nil)
)
