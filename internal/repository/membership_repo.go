package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"neuma/internal/model"
)

// MembershipRepo handles MongoDB operations for classroom memberships.
type MembershipRepo interface {
	Create(ctx context.Context, membership *model.Membership) error
	ListByStudent(ctx context.Context, studentID string) ([]*model.Membership, error)
	ListByClassroom(ctx context.Context, classroomID string) ([]*model.Membership, error)
	Exists(ctx context.Context, studentID, classroomID string) (bool, error)
	DeleteByClassroom(ctx context.Context, classroomID string) error
	EnsureIndexes(ctx context.Context) error
}

type membershipRepo struct {
	collection *mongo.Collection
}

// NewMembershipRepo creates a new membership repository.
func NewMembershipRepo(db *mongo.Database) MembershipRepo {
	return &membershipRepo{
		collection: db.Collection("memberships"),
	}
}

func (r *membershipRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "classroomId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "classroomId", Value: 1}},
		},
	})
	return err
}

// Create records a membership. Returns ErrDuplicate when the student already
// belongs to the classroom.
func (r *membershipRepo) Create(ctx context.Context, membership *model.Membership) error {
	_, err := r.collection.InsertOne(ctx, membership)
	return translateWriteErr(err)
}

// ListByStudent returns memberships in join order, oldest first.
func (r *membershipRepo) ListByStudent(ctx context.Context, studentID string) ([]*model.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	memberships := []*model.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListByClassroom returns a classroom's memberships in join order.
func (r *membershipRepo) ListByClassroom(ctx context.Context, classroomID string) ([]*model.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"classroomId": classroomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	memberships := []*model.Membership{}
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepo) Exists(ctx context.Context, studentID, classroomID string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"studentId": studentID, "classroomId": classroomID})
	return n > 0, err
}

func (r *membershipRepo) DeleteByClassroom(ctx context.Context, classroomID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"classroomId": classroomID})
	return err
}
