package config

// Environment variable names
const (
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvVersion            = "VERSION"
	EnvBindAddr           = "BIND_ADDR"
	EnvPort               = "PORT"
	EnvStaticDir          = "STATIC_DIR"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvServerURL          = "CARDTABLE_SERVER"
)

// Defaults applied when a variable is unset
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultBindAddr    = "localhost"
	DefaultPort        = 8080
	DefaultStaticDir   = "./dist"
	DefaultServerURL   = "http://localhost:8080"
	DefaultServiceName = "cardtable"
)
