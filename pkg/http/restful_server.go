package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"batteryhub.xyz/battery-inventory-service/pkg/battery"
)

type RestfulServer struct {
	Server           *gin.Engine
	Hub              *battery.Inventory
	RateLimiterStore *battery.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RequestIDMiddleware tags every request with an id, honoring one the
// client already sent.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestIDMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := rs.Server.Group("/api")
	{
		api.POST("/records", rs.AddRecord)
		api.GET("/records", rs.GetRecords)
		api.GET("/records/:barcode", rs.GetRecord)
		api.PUT("/records/:barcode", rs.UpdateRecord)
		api.DELETE("/records/:barcode", rs.DeleteRecord)
	}
}
