package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseRepository struct {
	Col *mongo.Collection
}

func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{Col: db.Collection("responses")}
}

func (r *ResponseRepository) FindByAssessment(ctx context.Context, assessmentID string) ([]models.QuestionnaireResponse, error) {
	cur, err := r.Col.Find(ctx, bson.M{"assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var responses []models.QuestionnaireResponse
	for cur.Next(ctx) {
		var resp models.QuestionnaireResponse
		if err := cur.Decode(&resp); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Upsert keeps the one-response-per-question invariant: resubmitting an
// answer overwrites the previous one instead of adding a duplicate.
func (r *ResponseRepository) Upsert(ctx context.Context, response *models.QuestionnaireResponse) error {
	filter := bson.M{
		"assessment_id": response.AssessmentID,
		"question_id":   response.QuestionID,
	}
	update := bson.M{"$set": bson.M{
		"assessment_id": response.AssessmentID,
		"question_id":   response.QuestionID,
		"section":       response.Section,
		"numeric_value": response.NumericValue,
		"text_value":    response.TextValue,
		"multi_value":   response.MultiValue,
		"importance":    response.Importance,
		"answered_at":   response.AnsweredAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ResponseRepository) CountByAssessment(ctx context.Context, assessmentID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"assessment_id": assessmentID})
}
