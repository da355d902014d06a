package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

// The collection is keyed by the stringified user id under "userid", the
// field name the original frontend deployment already wrote.
const resumeCollection = "resume"

const ownerField = "userid"

type ResumeRepository struct {
	coll *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{coll: db.Collection(resumeCollection)}
}

// FindByOwner returns the owner's resume with the _id and userid fields
// stripped, so internal identifiers never leak to the client.
func (r *ResumeRepository) FindByOwner(ctx context.Context, ownerID string) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var raw bson.M
	err := r.coll.FindOne(ctx, bson.M{ownerField: ownerID}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, fmt.Errorf("find resume: %w", err)
	}

	delete(raw, "_id")
	delete(raw, ownerField)

	return domain.Document(raw), nil
}

// Replace swaps the owner's resume for doc in a single upsert, so a failure
// can never leave the owner without a document and two concurrent saves
// cannot interleave into a duplicate.
func (r *ResumeRepository) Replace(ctx context.Context, ownerID string, doc domain.Document) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	data := make(bson.M, len(doc)+1)
	for k, v := range doc {
		data[k] = v
	}
	data[ownerField] = ownerID

	_, err := r.coll.ReplaceOne(ctx, bson.M{ownerField: ownerID}, data, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace resume: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique owner index on the resume collection,
// backing the one-resume-per-user invariant at the store level.
func (r *ResumeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: ownerField, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
