package repository

import (
	"context"
	"time"

	"github.com/siliguripickdrop/backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxListDocs caps FindAll result sets; the listing endpoints have no
// pagination, so this is the only bound on them.
const maxListDocs = 1000

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	FindAll(ctx context.Context) ([]domain.Booking, error)
}

type MongoBookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoBookingRepository{col: db.Collection("bookings")}
}

// bookingDoc is the stored shape. Timestamps are kept as RFC 3339
// strings in the documents and parsed back on read.
type bookingDoc struct {
	BookingID      string `bson:"booking_id"`
	Name           string `bson:"name"`
	Phone          string `bson:"phone"`
	Email          string `bson:"email,omitempty"`
	ServiceType    string `bson:"service_type"`
	PickupLocation string `bson:"pickup_location"`
	DropLocation   string `bson:"drop_location"`
	Date           string `bson:"date"`
	Time           string `bson:"time,omitempty"`
	Notes          string `bson:"notes,omitempty"`
	Status         string `bson:"status"`
	CreatedAt      string `bson:"created_at"`
	UpdatedAt      string `bson:"updated_at"`
}

func toBookingDoc(b *domain.Booking) bookingDoc {
	return bookingDoc{
		BookingID:      b.BookingID,
		Name:           b.Name,
		Phone:          b.Phone,
		Email:          b.Email,
		ServiceType:    b.ServiceType,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		Date:           b.Date,
		Time:           b.Time,
		Notes:          b.Notes,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func (d bookingDoc) toDomain() (domain.Booking, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return domain.Booking{}, err
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	if err != nil {
		return domain.Booking{}, err
	}
	return domain.Booking{
		BookingID:      d.BookingID,
		Name:           d.Name,
		Phone:          d.Phone,
		Email:          d.Email,
		ServiceType:    d.ServiceType,
		PickupLocation: d.PickupLocation,
		DropLocation:   d.DropLocation,
		Date:           d.Date,
		Time:           d.Time,
		Notes:          d.Notes,
		Status:         d.Status,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func (r *MongoBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	// The insert ack's ObjectID stays internal; booking_id is the public key.
	if _, err := r.col.InsertOne(ctx, toBookingDoc(booking)); err != nil {
		return domain.PersistenceError{Op: "insert booking", Err: err}
	}
	return nil
}

func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(maxListDocs)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.PersistenceError{Op: "find bookings", Err: err}
	}
	defer cur.Close(ctx)

	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.PersistenceError{Op: "decode bookings", Err: err}
	}

	bookings := make([]domain.Booking, 0, len(docs))
	for _, d := range docs {
		b, err := d.toDomain()
		if err != nil {
			return nil, domain.PersistenceError{Op: "decode bookings", Err: err}
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
