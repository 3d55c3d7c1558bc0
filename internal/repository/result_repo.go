package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"neuma/internal/model"
)

// ResultRepo handles MongoDB operations for assessment results. Completion
// status is derived from the presence of a result record; no separate
// "has completed" flag is stored.
type ResultRepo interface {
	Create(ctx context.Context, result *model.AssessmentResult) error
	LatestBySubject(ctx context.Context, subjectID string) (*model.AssessmentResult, error)
	HasCompleted(ctx context.Context, subjectID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new assessment result repository.
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("vark_results"),
	}
}

func (r *resultRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "subjectId", Value: 1}, {Key: "completedAt", Value: -1}},
	})
	return err
}

func (r *resultRepo) Create(ctx context.Context, result *model.AssessmentResult) error {
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

func (r *resultRepo) LatestBySubject(ctx context.Context, subjectID string) (*model.AssessmentResult, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	var result model.AssessmentResult
	err := r.collection.FindOne(ctx, bson.M{"subjectId": subjectID}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) HasCompleted(ctx context.Context, subjectID string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"subjectId": subjectID}, options.Count().SetLimit(1))
	return n > 0, err
}
