package submissions

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the collection holding submission documents.
const CollectionName = "submissions"

// MongoRepo stores submissions in a MongoDB collection keyed by _id = submission id.
type MongoRepo struct {
	Coll *mongo.Collection
}

// NewMongoRepo binds the repo to the submissions collection of db.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{Coll: db.Collection(CollectionName)}
}

type mongoDocument struct {
	Key        string `bson:"_id"`
	Submission `bson:",inline"`
}

// Create inserts the submission document.
func (r *MongoRepo) Create(ctx context.Context, sub Submission) error {
	_, err := r.Coll.InsertOne(ctx, mongoDocument{Key: sub.ID, Submission: sub})
	return err
}

// GetByID returns the submission keyed by id.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	var doc mongoDocument
	if err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return doc.Submission, nil
}

// ListByUser returns a user's submissions newest first.
func (r *MongoRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Submission, error) {
	limit, offset = clampPage(limit, offset)
	findOpts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.Coll.Find(ctx, bson.M{"userId": userID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Submission, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Submission)
	}
	return out, nil
}

var _ Repo = (*MongoRepo)(nil)
