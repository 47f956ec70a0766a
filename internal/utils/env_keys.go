package utils

// Environment variable names used across the application and the launcher.
const (
	// GoogleApiKeyEnv holds the Gemini API key. Required.
	GoogleApiKeyEnv = "GOOGLE_API_KEY"

	// GoogleServiceAccountEnv holds the full service account JSON used for
	// the calendar backend. Required.
	GoogleServiceAccountEnv = "GOOGLE_SERVICE_ACCOUNT_JSON"

	// PortEnv holds the port the server binds to.
	PortEnv = "PORT"

	// LogLevelEnv selects the logrus level (DEBUG, INFO, WARN, ERROR, FATAL).
	LogLevelEnv = "LOG_LEVEL"

	// EnvironmentEnv distinguishes production from development and test.
	EnvironmentEnv = "ENVIRONMENT"

	// ClientSecretHashEnv holds the bcrypt hash of the frontend client
	// secret. When unset, token auth is disabled.
	ClientSecretHashEnv = "CLIENT_SECRET_HASH"

	// KeyPairPathEnv points to the persisted ed25519 key pair for JWTs.
	KeyPairPathEnv = "KEY_PAIR_PATH"

	// MailgunApiKeyEnv and MailgunDomainEnv configure the mail backend.
	MailgunApiKeyEnv = "MAILGUN_API_KEY"
	MailgunDomainEnv = "MAILGUN_DOMAIN"

	// Database settings for the optional event log.
	DbHostEnv = "DB_HOST"
	DbPortEnv = "DB_PORT"
	DbUserEnv = "DB_USER"
	DbPassEnv = "DB_PASS"
	DbNameEnv = "DB_NAME"

	// Launcher settings.
	DepsManifestEnv   = "DEPS_MANIFEST"
	PackageManagerEnv = "PACKAGE_MANAGER"
	ServerBinaryEnv   = "SERVER_BINARY"
)
