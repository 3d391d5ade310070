package repository

import (
	"context"
	"os"
	"time"

	"smartbuddy/model"
	"smartbuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScreenRepo struct {
	MongoCollection *mongo.Collection
}

func GetScreenRepo(client *mongo.Client) *ScreenRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SCREEN_COLLECTION", "screen_activity")
	return &ScreenRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// UpsertSample writes the day's screen-time sample, replacing any earlier
// report for the same user and date.
func (r *ScreenRepo) UpsertSample(ctx context.Context, sample *model.ScreenActivity) error {
	timer := utils.TrackDBOperation("upsert", "screen_activity")
	defer timer.ObserveDuration()

	sample.UpdatedAt = time.Now()
	filter := bson.M{"user_id": sample.UserID, "date": sample.Date}
	update := bson.M{"$set": bson.M{
		"user_id":        sample.UserID,
		"date":           sample.Date,
		"screen_minutes": sample.ScreenMinutes,
		"breaks":         sample.Breaks,
		"updated_at":     sample.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		utils.TrackError("database", "screen_upsert_failed")
	}
	return err
}

// GetSamplesSince returns the user's samples for dates >= since (YYYY-MM-DD
// string comparison, which orders correctly for ISO dates).
func (r *ScreenRepo) GetSamplesSince(ctx context.Context, userID, since string) ([]*model.ScreenActivity, error) {
	timer := utils.TrackDBOperation("find", "screen_activity")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "screen_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var samples []*model.ScreenActivity
	if err = cursor.All(ctx, &samples); err != nil {
		utils.TrackError("database", "screen_decode_failed")
		return nil, err
	}
	return samples, nil
}
