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

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, task)
	if err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}

func (r *TasksRepo) GetTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     taskID,
		"user_id": userID,
	}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	return &task, nil
}

func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, updates bson.M) error {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	updates["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": taskID, "user_id": userID},
		bson.M{"$set": updates})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}

	if status, ok := updates["status"]; ok && status == model.StatusCompleted {
		utils.TrackTaskCompletion(userID)
	}
	return nil
}

func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     taskID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "task_not_found")
		return errors.New("task not found")
	}
	return nil
}

// GetCompletedSince returns tasks completed (by updated_at) at or after the
// cutoff, for the daily completion series.
func (r *TasksRepo) GetCompletedSince(ctx context.Context, userID string, cutoff time.Time) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":    userID,
		"status":     model.StatusCompleted,
		"updated_at": bson.M{"$gte": cutoff},
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}
