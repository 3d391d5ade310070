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

type PreferencesRepo struct {
	MongoCollection *mongo.Collection
}

func GetPreferencesRepo(client *mongo.Client) *PreferencesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("PREFERENCES_COLLECTION", "preferences")
	return &PreferencesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Load returns the user's saved preferences, or the defaults when nothing
// has ever been saved.
func (r *PreferencesRepo) Load(ctx context.Context, userID string) (*model.Preferences, error) {
	timer := utils.TrackDBOperation("find", "preferences")
	defer timer.ObserveDuration()

	var prefs model.Preferences
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return model.DefaultPreferences(userID), nil
	}
	if err != nil {
		utils.TrackError("database", "preferences_fetch_failed")
		return nil, err
	}
	return &prefs, nil
}

// Save upserts the user's preferences row.
func (r *PreferencesRepo) Save(ctx context.Context, prefs *model.Preferences) error {
	timer := utils.TrackDBOperation("upsert", "preferences")
	defer timer.ObserveDuration()

	prefs.UpdatedAt = time.Now()
	filter := bson.M{"user_id": prefs.UserID}
	update := bson.M{"$set": prefs}
	opts := options.Update().SetUpsert(true)

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		utils.TrackError("database", "preferences_save_failed")
	}
	return err
}
