package migration

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongodb "github.com/dmitrymomot/bookstore/integration/database/mongo"
)

// Customers is the customer collection as seen by the job.
type Customers interface {
	// Scan calls fn for every customer in ascending _id order, strictly one at a time.
	// When after is non-nil only customers with a greater _id are visited.
	// An error from fn stops the scan and is returned unchanged.
	Scan(ctx context.Context, after any, fn func(doc bson.M) error) error
	// Patch applies one update document to the customer with the given _id.
	Patch(ctx context.Context, id any, update bson.D) error
	// Close releases the connection.
	Close(ctx context.Context) error
}

// Connector opens the customer collection.
type Connector interface {
	Connect(ctx context.Context) (Customers, error)
}

// MongoConnector opens the customers collection of the database named in the connection URL.
type MongoConnector struct {
	Config mongodb.Config
}

// Connect dials MongoDB and verifies the connection.
func (c MongoConnector) Connect(ctx context.Context) (Customers, error) {
	db, err := mongodb.NewWithDatabase(ctx, c.Config, "")
	if err != nil {
		return nil, err
	}
	return &mongoCustomers{coll: db.Collection(CollectionName)}, nil
}

type mongoCustomers struct {
	coll *mongo.Collection
}

func (m *mongoCustomers) Scan(ctx context.Context, after any, fn func(doc bson.M) error) (err error) {
	filter := bson.D{}
	if after != nil {
		filter = bson.D{{Key: "_id", Value: bson.D{{Key: "$gt", Value: after}}}}
	}
	cur, err := m.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cur.Close(context.WithoutCancel(ctx)))
	}()

	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return cur.Err()
}

func (m *mongoCustomers) Patch(ctx context.Context, id any, update bson.D) error {
	_, err := m.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

func (m *mongoCustomers) Close(ctx context.Context) error {
	return m.coll.Database().Client().Disconnect(ctx)
}
