package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studyhive/studyhive-api/internal/models"
)

const assignmentCollection = "assignments"

// AssignmentRepository gates all access to the assignments collection.
type AssignmentRepository struct {
	col *mongo.Collection
}

// NewAssignmentRepository creates an assignment repository.
func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{col: db.Collection(assignmentCollection)}
}

// List returns one page of assignments plus the estimated collection total.
// The total is deliberately unfiltered: the pagination UI wants the
// collection size and tolerates drift against the filtered page.
func (r *AssignmentRepository) List(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	query := bson.M{}
	if filter.Level != "" {
		query["level"] = filter.Level
	}

	opts := options.Find().
		SetSkip(int64(filter.Page) * int64(filter.Size)).
		SetLimit(int64(filter.Size))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	assignments := make([]models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, 0, err
	}

	count, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, 0, err
	}

	return assignments, count, nil
}

// FindByID returns a single assignment or mongo.ErrNoDocuments.
func (r *AssignmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByOwner returns every assignment declaring the given owner email.
func (r *AssignmentRepository) ListByOwner(ctx context.Context, email string) ([]models.Assignment, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := make([]models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListFeatured returns assignments carrying the spotlight flag.
func (r *AssignmentRepository) ListFeatured(ctx context.Context) ([]models.Assignment, error) {
	cursor, err := r.col.Find(ctx, bson.M{"features": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := make([]models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Create inserts the assignment and returns the generated id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateFields applies a $set of the named fields only; untouched fields on
// the stored document persist.
func (r *AssignmentRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

// Delete removes the assignment and reports the deleted count.
func (r *AssignmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
