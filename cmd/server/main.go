package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"batteryhub.xyz/battery-inventory-service/pkg/battery"
	"batteryhub.xyz/battery-inventory-service/pkg/common"
	"batteryhub.xyz/battery-inventory-service/pkg/db"
	hubHttp "batteryhub.xyz/battery-inventory-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	hubDbType := os.Getenv(common.EnvKeyHubDBType)
	switch hubDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown BATTERYHUB_DB_TYPE: " + hubDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHubHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":5011"
	}

	logger := common.GetLogger()

	hub := battery.Inventory{
		Db: *dbInstance,
	}
	hub.WithServices(battery.ServiceOpts{
		Records: hub.GetIRecords(),
	})

	var limiterStore *battery.RateLimiterStore
	if rawRate := os.Getenv(common.EnvKeyHubDefaultRate); rawRate != "" {
		var defaultRate float64
		var defaultBurst int64

		if defaultRate, err = strconv.ParseFloat(rawRate, 64); err != nil {
			log.Fatal("Invalid BATTERYHUB_DEFAULT_RATE, should be a float64 value")
		}
		if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHubDefaultBurst), 10, 64); err != nil {
			log.Fatal("Invalid BATTERYHUB_DEFAULT_BURST, or not set in .env, should be an int value")
		}

		limiterStore = battery.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
		logger.Info("http server rate limiter enabled:",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &hubHttp.RestfulServer{
		Server:           gin.Default(),
		Hub:              &hub,
		RateLimiterStore: limiterStore,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
