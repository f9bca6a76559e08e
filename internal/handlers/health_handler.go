package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version 是当前服务版本号
const Version = "1.0.0"

// HealthStatus 定义了健康检查响应结构
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 存活探针，不依赖任何资源
// @Tags health
// @Produce  json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	})
}
