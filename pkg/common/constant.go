package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHubDBType string = "BATTERYHUB_DB_TYPE"
	EnvKeyHubDbPath string = "BATTERYHUB_DB_PATH"

	EnvKeyHubHttpHostPort string = "BATTERYHUB_HTTP_HOST_PORT"

	EnvKeyHubDefaultRate  string = "BATTERYHUB_DEFAULT_RATE"
	EnvKeyHubDefaultBurst string = "BATTERYHUB_DEFAULT_BURST"

	// kept for parity with legacy deployments, nothing reads it yet
	EnvKeyHubSecretKey string = "BATTERYHUB_SECRET_KEY"

	LoggerNameHubCore       string = "battery_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldHubCategory  string = "category"
	LoggerCategoryHubLookup string = "lookup"
	LoggerCategoryHubRecord string = "record"
	LoggerCategoryHubQuery  string = "query"
)
