package content

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store over one MongoDB collection. Mongo-specific
// representations (_id ObjectID, DateTime) are translated to the canonical
// record shape at this boundary so handlers never see driver types.
type MongoStore struct {
	desc Descriptor
	col  *mongo.Collection
}

func NewMongoStore(desc Descriptor, col *mongo.Collection) *MongoStore {
	return &MongoStore{desc: desc, col: col}
}

func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	dir := -1
	if s.desc.SortAsc {
		dir = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: s.desc.SortField, Value: dir}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Record{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromMongo(doc))
	}
	return out, cur.Err()
}

func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc bson.M
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromMongo(doc), nil
}

func (s *MongoStore) Insert(ctx context.Context, fields map[string]any) (Record, error) {
	doc := Record(fields).Clone()
	StripImmutable(doc)
	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	res, err := s.col.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	stored := doc.Clone()
	stored["id"] = oid.Hex()
	return stored, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, patch map[string]any) (Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set := Record(patch).Clone()
	StripImmutable(set)
	set["updatedAt"] = time.Now().UTC()
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed id deletes nothing; delete is idempotent
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (s *MongoStore) ClearActive(ctx context.Context, exceptID string) error {
	filter := bson.M{}
	if exceptID != "" {
		if oid, err := primitive.ObjectIDFromHex(exceptID); err == nil {
			filter = bson.M{"_id": bson.M{"$ne": oid}}
		}
	}
	_, err := s.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isActive": false}})
	return err
}

// fromMongo rewrites driver types into the canonical record shape.
func fromMongo(doc bson.M) Record {
	r := make(Record, len(doc))
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				r["id"] = oid.Hex()
				continue
			}
		}
		r[k] = fromMongoValue(v)
	}
	return r
}

func fromMongoValue(v any) any {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.ObjectID:
		return x.Hex()
	case primitive.A:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = fromMongoValue(e)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = fromMongoValue(e)
		}
		return out
	case int32:
		return int64(x)
	default:
		return v
	}
}
