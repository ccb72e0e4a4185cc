package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"lilac/config"
	"lilac/database"
	"lilac/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the customers collection with demo accounts for local checkout runs.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database("lilac")
	customerColl := db.Collection("customers")

	// Clear existing customers.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := customerColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear customers collection: %v", err)
	}

	pass := "$Password1234"
	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var customers []interface{}
	for i := 1; i <= 10; i++ {
		customer := models.Customer{
			ID:           fmt.Sprintf("cust-%d", i),
			Email:        fmt.Sprintf("customer_%d@example.com", i),
			FirstName:    fmt.Sprintf("Demo%d", i),
			LastName:     "Customer",
			PhoneNumber:  fmt.Sprintf("900000%04d", i),
			PasswordHash: string(hashed),
			Meta: map[string]string{
				models.FieldBillingPhone:     fmt.Sprintf("555-01%02d", i),
				models.FieldBillingFirstName: fmt.Sprintf("Demo%d", i),
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		// Every third account has no stored billing phone, to exercise the
		// fallback-to-client-input path.
		if i%3 == 0 {
			delete(customer.Meta, models.FieldBillingPhone)
		}
		customers = append(customers, customer)
	}

	insertResult, err := customerColl.InsertMany(ctx, customers)
	if err != nil {
		log.Fatalf("Failed to insert customers: %v", err)
	}
	fmt.Printf("Inserted customer IDs: %v\n", insertResult.InsertedIDs)
}
