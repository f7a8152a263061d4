package config

const (
	// EnvPrefix namespaces every StockFlow environment variable.
	EnvPrefix = "stockflow"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv  = "STOCKFLOW_APP_ENV"
	EnvAppPort = "STOCKFLOW_APP_PORT"

	EnvDBDSN  = "STOCKFLOW_DB_DSN"
	EnvDBHost = "STOCKFLOW_DB_HOST"
	EnvDBUser = "STOCKFLOW_DB_USER"
	EnvDBName = "STOCKFLOW_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
