package repository

import (
	"context"
	"time"

	"github.com/siliguripickdrop/backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatusCheckRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	FindAll(ctx context.Context) ([]domain.StatusCheck, error)
}

type MongoStatusCheckRepository struct {
	col *mongo.Collection
}

func NewStatusCheckRepository(db *mongo.Database) StatusCheckRepository {
	return &MongoStatusCheckRepository{col: db.Collection("status_checks")}
}

type statusCheckDoc struct {
	ID         string `bson:"id"`
	ClientName string `bson:"client_name"`
	Timestamp  string `bson:"timestamp"`
}

func (r *MongoStatusCheckRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	doc := statusCheckDoc{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.Format(time.RFC3339Nano),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return domain.PersistenceError{Op: "insert status check", Err: err}
	}
	return nil
}

func (r *MongoStatusCheckRepository) FindAll(ctx context.Context) ([]domain.StatusCheck, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(maxListDocs)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.PersistenceError{Op: "find status checks", Err: err}
	}
	defer cur.Close(ctx)

	var docs []statusCheckDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.PersistenceError{Op: "decode status checks", Err: err}
	}

	checks := make([]domain.StatusCheck, 0, len(docs))
	for _, d := range docs {
		ts, err := time.Parse(time.RFC3339Nano, d.Timestamp)
		if err != nil {
			return nil, domain.PersistenceError{Op: "decode status checks", Err: err}
		}
		checks = append(checks, domain.StatusCheck{ID: d.ID, ClientName: d.ClientName, Timestamp: ts})
	}
	return checks, nil
}

var _ StatusCheckRepository = (*MongoStatusCheckRepository)(nil)
