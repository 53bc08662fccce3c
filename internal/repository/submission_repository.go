package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studyhive/studyhive-api/internal/models"
)

const submissionCollection = "submissions"

// SubmissionRepository gates all access to the submissions collection.
type SubmissionRepository struct {
	col *mongo.Collection
}

// NewSubmissionRepository creates a submission repository.
func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(submissionCollection)}
}

// ListPending returns every submission still awaiting grading.
func (r *SubmissionRepository) ListPending(ctx context.Context) ([]models.Submission, error) {
	return r.list(ctx, bson.M{"status": false})
}

// ListBySubmitter returns the submissions declaring the given email.
func (r *SubmissionRepository) ListBySubmitter(ctx context.Context, email string) ([]models.Submission, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *SubmissionRepository) list(ctx context.Context, filter bson.M) ([]models.Submission, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]models.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Create inserts the submission and returns the generated id.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, submission)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Grade writes marks and feedback and flips status to graded. Repeating the
// call with the same values is a no-op on the stored document.
func (r *SubmissionRepository) Grade(ctx context.Context, id primitive.ObjectID, marks int, feedback string) (matched, modified int64, err error) {
	update := bson.M{"$set": bson.M{
		"given_marks": marks,
		"feedback":    feedback,
		"status":      true,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}
