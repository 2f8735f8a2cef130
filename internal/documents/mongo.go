package documents

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates the repository and ensures unique indexes on
// "id" and "name". Uniqueness on both fields is what makes the
// check-then-insert create path safe under concurrency.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	col.Indexes().CreateMany(context.Background(), models)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, d *Document) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByIDOrName resolves an identifier against both keyspaces with OR
// semantics. The two fields come from disjoint generation schemes but value
// collision is not assumed impossible; first match wins.
func (r *MongoRepository) FindByIDOrName(ctx context.Context, identifier string) (*Document, error) {
	filter := bson.M{"$or": bson.A{bson.M{"id": identifier}, bson.M{"name": identifier}}}
	return r.findOne(ctx, filter)
}

func (r *MongoRepository) FindByName(ctx context.Context, name string) (*Document, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Document, error) {
	var d Document
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *MongoRepository) UpdateContentByID(ctx context.Context, id, content string) error {
	set := bson.M{"content": content, "updatedAt": time.Now().UTC()}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Listing, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "id": 1, "name": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Listing{}
	for cur.Next(ctx) {
		var l Listing
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
