package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) FindByAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	err := r.Col.FindOne(ctx, bson.M{"assessment_id": assessmentID}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.AssessmentResult
	for cur.Next(ctx) {
		var res models.AssessmentResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Upsert replaces the result for an assessment, which makes recomputation
// before finalization idempotent at the storage layer.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.AssessmentResult) error {
	filter := bson.M{"assessment_id": result.AssessmentID}
	_, err := r.Col.ReplaceOne(ctx, filter, result, options.Replace().SetUpsert(true))
	return err
}
