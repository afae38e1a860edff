package main

import (
	"context"
	"flag"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/drivers/database"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seeds the users collection with fake doctors so the booking flow can be
// exercised locally. Every department gets at least perDepartment doctors.
func main() {
	perDepartment := flag.Int("per-department", 3, "number of doctors to create per department")
	drop := flag.Bool("drop", false, "remove previously seeded doctors first")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := mongoDB.Database(driverConfig.MongoDB.DbName).Collection(constvars.MongoCollectionUsers)

	if *drop {
		result, err := collection.DeleteMany(ctx, bson.M{"role": constvars.RoleDoctor, "seeded": true})
		if err != nil {
			log.Fatalf("Failed to remove previously seeded doctors: %v", err)
		}
		log.Printf("Removed %d previously seeded doctors", result.DeletedCount)
	}

	if err := gofakeit.Seed(0); err != nil {
		log.Fatalf("Failed to seed generator: %v", err)
	}

	now := time.Now().UTC()
	var docs []interface{}
	for _, department := range models.Departments() {
		for i := 0; i < *perDepartment; i++ {
			firstName := gofakeit.FirstName()
			lastName := gofakeit.LastName()
			email := strings.ToLower(firstName + "." + lastName + "@" + gofakeit.DomainName())

			docs = append(docs, bson.M{
				"_id":              primitive.NewObjectID(),
				"firstName":        firstName,
				"lastName":         lastName,
				"email":            email,
				"phone":            gofakeit.Numerify("###########"),
				"role":             constvars.RoleDoctor,
				"doctorDepartment": string(department),
				"seeded":           true,
				"createdAt":        now,
				"updatedAt":        now,
			})
		}
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert doctors: %v", err)
	}

	log.Printf("Seeded %d doctors across %d departments", len(result.InsertedIDs), len(models.Departments()))

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to disconnect from MongoDB: %v", err)
	}
}
