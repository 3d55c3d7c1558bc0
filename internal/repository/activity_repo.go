package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"neuma/internal/model"
)

// ActivityRepo handles MongoDB operations for classroom activities.
type ActivityRepo interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, classroomID, activityID string) (*model.Activity, error)
	ListByClassroom(ctx context.Context, classroomID string) ([]*model.Activity, error)
	Delete(ctx context.Context, classroomID, activityID string) error
	DeleteByClassroom(ctx context.Context, classroomID string) error
	EnsureIndexes(ctx context.Context) error
}

type activityRepo struct {
	collection *mongo.Collection
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(db *mongo.Database) ActivityRepo {
	return &activityRepo{
		collection: db.Collection("activities"),
	}
}

func (r *activityRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "classroomId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *activityRepo) Create(ctx context.Context, activity *model.Activity) error {
	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

func (r *activityRepo) GetByID(ctx context.Context, classroomID, activityID string) (*model.Activity, error) {
	var activity model.Activity
	err := r.collection.FindOne(ctx, bson.M{"_id": activityID, "classroomId": classroomID}).Decode(&activity)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByClassroom returns activities most-recent-first.
func (r *activityRepo) ListByClassroom(ctx context.Context, classroomID string) ([]*model.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"classroomId": classroomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []*model.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Delete removes an activity. Deleting an id that does not exist is not an
// error; the activity is treated as already gone.
func (r *activityRepo) Delete(ctx context.Context, classroomID, activityID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": activityID, "classroomId": classroomID})
	return err
}

func (r *activityRepo) DeleteByClassroom(ctx context.Context, classroomID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"classroomId": classroomID})
	return err
}
