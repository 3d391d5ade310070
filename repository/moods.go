package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"smartbuddy/model"
	"smartbuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodsRepo struct {
	MongoCollection *mongo.Collection
}

func GetMoodsRepo(client *mongo.Client) *MoodsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("MOOD_COLLECTION", "mood_entries")
	return &MoodsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *MoodsRepo) CreateEntry(ctx context.Context, entry *model.MoodEntry) error {
	timer := utils.TrackDBOperation("insert", "mood_entries")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "mood_creation_failed")
		return err
	}
	return nil
}

// GetUserEntries returns the user's mood log, newest first.
func (r *MoodsRepo) GetUserEntries(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	timer := utils.TrackDBOperation("find", "mood_entries")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.MoodEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "mood_decode_failed")
		return nil, err
	}
	return entries, nil
}

// GetEntriesSince returns entries created at or after the cutoff, oldest first.
func (r *MoodsRepo) GetEntriesSince(ctx context.Context, userID string, cutoff time.Time) ([]*model.MoodEntry, error) {
	timer := utils.TrackDBOperation("find", "mood_entries")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": cutoff},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.MoodEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "mood_decode_failed")
		return nil, err
	}
	return entries, nil
}

// UpdateEntry rewrites the mood and note of one entry. The original
// timestamp is preserved on update.
func (r *MoodsRepo) UpdateEntry(ctx context.Context, entryID, userID string, mood model.Mood, note string) error {
	timer := utils.TrackDBOperation("update", "mood_entries")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     entryID,
		"user_id": userID,
	}
	update := bson.M{
		"$set": bson.M{
			"mood": mood,
			"note": note,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "mood_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "mood_not_found")
		return errors.New("mood entry not found")
	}
	return nil
}

func (r *MoodsRepo) DeleteEntry(ctx context.Context, entryID, userID string) error {
	timer := utils.TrackDBOperation("delete", "mood_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     entryID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "mood_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "mood_not_found")
		return errors.New("mood entry not found")
	}
	return nil
}

// ClearEntries removes the user's whole mood log. Destructive; handlers
// expose it as its own endpoint so clients can gate it behind confirmation.
func (r *MoodsRepo) ClearEntries(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("delete", "mood_entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "mood_clear_failed")
		return 0, err
	}
	return int(result.DeletedCount), nil
}
