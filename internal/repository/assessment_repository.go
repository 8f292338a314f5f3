package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssessmentRepository struct {
	Col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{Col: db.Collection("assessments")}
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*models.Assessment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var assessment models.Assessment
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&assessment)
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) FindByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var assessments []models.Assessment
	for cur.Next(ctx) {
		var a models.Assessment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	res, err := r.Col.InsertOne(ctx, assessment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = oid.Hex()
	}
	return nil
}

func (r *AssessmentRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}
