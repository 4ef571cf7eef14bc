package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// MongoCollection is the collection projects are stored in.
const MongoCollection = "projects"

// mongoDoc is the stored form. The project itself stays a JSON string so
// element tagging is identical across backends; name and timestamps are
// lifted out for sorting and ad-hoc queries.
type mongoDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
	Body      string    `bson:"body"`
}

// MongoStore keeps one document per project.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and pings the server.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, storageErr(err, "connect mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, storageErr(err, "ping mongo")
	}
	return &MongoStore{client: client, coll: client.Database(database).Collection(MongoCollection)}, nil
}

func toDoc(p *drawing.Project) (mongoDoc, error) {
	data, err := encode(p)
	if err != nil {
		return mongoDoc{}, err
	}
	return mongoDoc{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt, Body: string(data)}, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*drawing.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storageErr(err, "list projects")
	}
	defer cur.Close(ctx)

	out := []*drawing.Project{}
	for cur.Next(ctx) {
		var doc mongoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr(err, "list projects")
		}
		p, err := decode([]byte(doc.Body))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr(err, "list projects")
	}
	return out, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*drawing.Project, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, storageErr(err, "get project %s", id)
	}
	return decode([]byte(doc.Body))
}

func (s *MongoStore) Create(ctx context.Context, p *drawing.Project) error {
	doc, err := toDoc(p)
	if err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exists(p.ID)
		}
		return storageErr(err, "create project %s", p.ID)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, p *drawing.Project) error {
	doc, err := toDoc(p)
	if err != nil {
		return err
	}
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc)
	if err != nil {
		return storageErr(err, "update project %s", p.ID)
	}
	if res.MatchedCount == 0 {
		return notFound(p.ID)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storageErr(err, "delete project %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
