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

type FocusSessionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetFocusSessionsRepo(client *mongo.Client) *FocusSessionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("FOCUS_SESSIONS_COLLECTION", "focus_sessions")
	return &FocusSessionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *FocusSessionsRepo) CreateSession(ctx context.Context, session *model.FocusSession) error {
	timer := utils.TrackDBOperation("insert", "focus_sessions")
	defer timer.ObserveDuration()

	if session.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, session)
	if err != nil {
		utils.TrackError("database", "session_creation_failed")
		return err
	}
	return nil
}

// CloseSession stamps an open session with its end time and elapsed seconds.
func (r *FocusSessionsRepo) CloseSession(ctx context.Context, sessionID, userID string, end time.Time, durationSeconds int) error {
	timer := utils.TrackDBOperation("update", "focus_sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": sessionID, "user_id": userID},
		bson.M{"$set": bson.M{
			"end_time":         end,
			"duration_seconds": durationSeconds,
		}})
	if err != nil {
		utils.TrackError("database", "session_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "session_not_found")
		return errors.New("focus session not found")
	}
	return nil
}

func (r *FocusSessionsRepo) GetUserSessions(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "focus_sessions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}

// GetSessionsSince returns closed sessions started at or after the cutoff,
// oldest first, for the focus-time series.
func (r *FocusSessionsRepo) GetSessionsSince(ctx context.Context, userID string, cutoff time.Time) ([]*model.FocusSession, error) {
	timer := utils.TrackDBOperation("find", "focus_sessions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":    userID,
		"start_time": bson.M{"$gte": cutoff},
		"end_time":   bson.M{"$exists": true, "$ne": time.Time{}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.FocusSession
	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}
