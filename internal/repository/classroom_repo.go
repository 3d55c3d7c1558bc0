package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"neuma/internal/model"
)

// ClassroomRepo handles MongoDB operations for classrooms.
type ClassroomRepo interface {
	Create(ctx context.Context, classroom *model.Classroom) error
	GetByID(ctx context.Context, id string) (*model.Classroom, error)
	// GetByCode searches the whole directory, not one owner's classrooms.
	GetByCode(ctx context.Context, code string) (*model.Classroom, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Classroom, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type classroomRepo struct {
	collection *mongo.Collection
}

// NewClassroomRepo creates a new classroom repository.
func NewClassroomRepo(db *mongo.Database) ClassroomRepo {
	return &classroomRepo{
		collection: db.Collection("classrooms"),
	}
}

func (r *classroomRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	})
	return err
}

// Create persists a classroom. Returns ErrDuplicate when the code is already
// taken anywhere in the directory.
func (r *classroomRepo) Create(ctx context.Context, classroom *model.Classroom) error {
	_, err := r.collection.InsertOne(ctx, classroom)
	return translateWriteErr(err)
}

func (r *classroomRepo) GetByID(ctx context.Context, id string) (*model.Classroom, error) {
	var classroom model.Classroom
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&classroom)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *classroomRepo) GetByCode(ctx context.Context, code string) (*model.Classroom, error) {
	var classroom model.Classroom
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&classroom)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *classroomRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Classroom, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classrooms := []*model.Classroom{}
	if err := cursor.All(ctx, &classrooms); err != nil {
		return nil, err
	}
	return classrooms, nil
}

func (r *classroomRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
