package customerRepo

import (
	"context"
	"fmt"
	"time"

	"lilac/database"
	"lilac/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	coll := database.MongoClient.Database("lilac").Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a customer by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoCustomerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

// GetByID retrieves a customer by its unique ID.
func (r *MongoCustomerRepo) GetByID(id string) (*models.Customer, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a customer by its email address.
func (r *MongoCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with email %s: %w", email, err)
	}
	return &customer, nil
}

// Create inserts a new customer document.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update modifies an existing customer document.
func (r *MongoCustomerRepo) Update(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	filter := bson.M{"id": customer.ID}
	update := bson.M{"$set": customer}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update customer with id %s: %w", customer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %s not found", customer.ID)
	}
	return nil
}

// Delete removes a customer document by its ID.
func (r *MongoCustomerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete customer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("customer with id %s not found", id)
	}
	return nil
}
