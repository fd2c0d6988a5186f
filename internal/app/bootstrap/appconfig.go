// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request limits. AppConfig is where
// everything specific to the club site lives: the Mongo connection,
// session cookies, file storage, Google sign-in, and the static admin
// fallback login.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads/media")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files/media")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region string // AWS region
	StorageS3Bucket string // S3 bucket name
	StorageS3Prefix string // Key prefix (e.g., "media/")

	// Base URL for OAuth callbacks and absolute links
	BaseURL string // e.g., "https://robotics.example.edu" or "http://localhost:3000"

	// Google OAuth configuration
	GoogleClientID     string // Google OAuth2 client ID
	GoogleClientSecret string // Google OAuth2 client secret

	// Human verification for the public membership and fest forms.
	// Blank disables verification (local development).
	CaptchaSecret string

	// Static admin fallback login. Used when Google sign-in is not
	// configured, or as a break-glass path. Blank username disables it.
	AdminUsername     string
	AdminPasswordHash string // bcrypt hash of the fallback password

	// Email of an admin user to create/authorize on startup, so a fresh
	// deployment has at least one account that can sign in with Google.
	AdminEmail string
}
