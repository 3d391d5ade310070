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

type EventsRepo struct {
	MongoCollection *mongo.Collection
}

func GetEventsRepo(client *mongo.Client) *EventsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("EVENTS_COLLECTION", "calendar_events")
	return &EventsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetUpcoming returns one page of events starting inside [now, now+days),
// ordered by start time, plus the total match count for pagination.
func (r *EventsRepo) GetUpcoming(ctx context.Context, userID string, now time.Time, days, page, pageSize int) ([]*model.CalendarEvent, int, error) {
	timer := utils.TrackDBOperation("find", "calendar_events")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"start_time": bson.M{
			"$gte": now,
			"$lt":  now.AddDate(0, 0, days),
		},
	}

	total, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.TrackError("database", "event_count_failed")
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "event_fetch_failed")
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var events []*model.CalendarEvent
	if err = cursor.All(ctx, &events); err != nil {
		utils.TrackError("database", "event_decode_failed")
		return nil, 0, err
	}
	return events, int(total), nil
}

// CountUpcoming counts events starting inside [now, now+days).
func (r *EventsRepo) CountUpcoming(ctx context.Context, userID string, now time.Time, days int) (int, error) {
	timer := utils.TrackDBOperation("count", "calendar_events")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"start_time": bson.M{
			"$gte": now,
			"$lt":  now.AddDate(0, 0, days),
		},
	})
	if err != nil {
		utils.TrackError("database", "event_count_failed")
		return 0, err
	}
	return int(count), nil
}

// UpsertEvent writes one mirrored event row. Only the sync job calls this;
// the API surface is read-only.
func (r *EventsRepo) UpsertEvent(ctx context.Context, event *model.CalendarEvent) error {
	timer := utils.TrackDBOperation("upsert", "calendar_events")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": event.EventID, "user_id": event.UserID}
	update := bson.M{"$set": event}
	opts := options.Update().SetUpsert(true)

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		utils.TrackError("database", "event_upsert_failed")
	}
	return err
}
