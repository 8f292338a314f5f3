package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository struct {
	Col *mongo.Collection
}

func NewTemplateRepository(db *mongo.Database) *TemplateRepository {
	return &TemplateRepository{Col: db.Collection("templates")}
}

func (r *TemplateRepository) FindAll(ctx context.Context) ([]models.MessageTemplate, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var templates []models.MessageTemplate
	for cur.Next(ctx) {
		var tpl models.MessageTemplate
		if err := cur.Decode(&tpl); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var tpl models.MessageTemplate
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&tpl)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *models.MessageTemplate) error {
	res, err := r.Col.InsertOne(ctx, tpl)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tpl.ID = oid.Hex()
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
