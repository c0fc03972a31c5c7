package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/caseline/caseline/internal/model"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

type SubmissionRepository interface {
	ByUser(ctx context.Context, userID string) (*model.TimelineSubmission, error)
	Save(ctx context.Context, sub *model.TimelineSubmission) error
	UpdateStatus(ctx context.Context, userID, status string) error
	Delete(ctx context.Context, userID string) error
}

type submissionRepository struct {
	coll *mongo.Collection
}

func NewSubmissionRepository(coll *mongo.Collection) SubmissionRepository {
	return &submissionRepository{coll: coll}
}

func (r *submissionRepository) ByUser(ctx context.Context, userID string) (*model.TimelineSubmission, error) {
	sub := &model.TimelineSubmission{}
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Save persists the aggregate with query-then-upsert semantics: a user's
// existing submission is updated in place, otherwise a new document is
// inserted. The unique index on user_id turns a concurrent double insert
// into a duplicate-key error, which is retried as an update so two tabs
// cannot create two aggregate roots.
func (r *submissionRepository) Save(ctx context.Context, sub *model.TimelineSubmission) error {
	existing, err := r.ByUser(ctx, sub.UserID)
	if err != nil && !errors.Is(err, ErrSubmissionNotFound) {
		return err
	}

	if existing != nil {
		sub.ID = existing.ID
		return r.update(ctx, sub)
	}

	_, err = r.coll.InsertOne(ctx, sub)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race against another save for the same user.
		winner, findErr := r.ByUser(ctx, sub.UserID)
		if findErr != nil {
			return findErr
		}
		sub.ID = winner.ID
		return r.update(ctx, sub)
	}
	return err
}

func (r *submissionRepository) update(ctx context.Context, sub *model.TimelineSubmission) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, userID, status string) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *submissionRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
