package apikeys

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates the repository and ensures unique indexes on
// "id" and "key" so duplicate inserts surface as storage conflicts.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	col.Indexes().CreateMany(context.Background(), models)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, k *Key) error {
	if _, err := r.col.InsertOne(ctx, k); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Key, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoRepository) FindBySecret(ctx context.Context, secret string) (*Key, error) {
	return r.findOne(ctx, bson.M{"key": secret})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Key, error) {
	var k Key
	if err := r.col.FindOne(ctx, filter).Decode(&k); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Key, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Key{}
	for cur.Next(ctx) {
		var k Key
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, cur.Err()
}
