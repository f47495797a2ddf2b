package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "thethao247"

// nextSequence hands out monotonically increasing int64 ids from the counters
// collection, so Mongo documents carry the same numeric ids Postgres rows do.
func nextSequence(ctx context.Context, client *mongo.Client, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}

	err := client.Database(mongoDatabase).Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}

	return doc.Seq, nil
}
