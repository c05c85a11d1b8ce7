package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Run wipes the doctors and articles collections and installs the fixed
// sample set. Running it again yields the same state; documents are never
// duplicated.
func Run(ctx context.Context, db *mongo.Database) error {
	doctors := db.Collection("doctors")
	articles := db.Collection("articles")

	if _, err := doctors.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear doctors: %w", err)
	}
	if _, err := articles.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear articles: %w", err)
	}
	logrus.Info("Cleared existing data")

	doctorDocs := make([]interface{}, 0)
	for _, d := range SampleDoctors() {
		doctorDocs = append(doctorDocs, d)
	}
	if _, err := doctors.InsertMany(ctx, doctorDocs); err != nil {
		return fmt.Errorf("insert doctors: %w", err)
	}
	logrus.Infof("Seeded %d doctors", len(doctorDocs))

	articleDocs := make([]interface{}, 0)
	for _, a := range SampleArticles() {
		articleDocs = append(articleDocs, a)
	}
	if _, err := articles.InsertMany(ctx, articleDocs); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	logrus.Infof("Seeded %d articles", len(articleDocs))

	return nil
}
