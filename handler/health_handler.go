package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

var startTime = time.Now()

// HealthHandler reports process and database health for orchestration
// probes. Degraded (database unreachable) still answers 200 so probes can
// distinguish "slow dependency" from "dead process".
func HealthHandler(c *gin.Context, mongoClient *mongo.Client) {
	dbStatus := "connected"
	if err := mongoClient.Ping(c, nil); err != nil {
		dbStatus = "disconnected"
	}

	utils.Success(c, gin.H{
		"status":   "ok",
		"uptime":   time.Since(startTime).Round(time.Second).String(),
		"database": dbStatus,
		"system": gin.H{
			"cpuPercent":    utils.GetCPUUsage(),
			"memoryPercent": utils.GetMemoryUsage(),
		},
	})
}
