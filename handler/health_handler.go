package handler

import (
	"context"
	"time"

	"smartbuddy/services"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the server and its backing stores. Redis being
// down degrades the report without failing it; Mongo being down fails it.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"status": "ok",
		"mongo":  "ok",
		"redis":  "disabled",
	}

	if err := utils.MongoClient.Ping(ctx, nil); err != nil {
		status["status"] = "degraded"
		status["mongo"] = "unreachable"
		c.JSON(503, status)
		return
	}

	if services.RedisClient != nil {
		if err := services.RedisClient.Ping(ctx).Err(); err != nil {
			status["redis"] = "unreachable"
		} else {
			status["redis"] = "ok"
		}
	}

	c.JSON(200, status)
}
