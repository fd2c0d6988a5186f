// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the club site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: ROBOHUB_MONGO_URI, ROBOHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "robohub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "robohub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./uploads/media", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/files/media", Desc: "URL prefix for serving local files"},

	// S3 configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "media/", Desc: "S3 key prefix"},

	// Base URL for OAuth callbacks and absolute links
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of this deployment"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	// Human verification for public forms (blank disables verification)
	{Name: "captcha_secret", Default: "", Desc: "reCAPTCHA secret key for the join and fest forms"},

	// Static admin fallback login (blank username disables it)
	{Name: "admin_username", Default: "", Desc: "Username for the static admin fallback login"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the fallback admin password"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of an admin user to create/authorize on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ROBOHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ROBOHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),

		// File storage
		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		// S3
		StorageS3Region: appValues.String("storage_s3_region"),
		StorageS3Bucket: appValues.String("storage_s3_bucket"),
		StorageS3Prefix: appValues.String("storage_s3_prefix"),

		// Base URL
		BaseURL: appValues.String("base_url"),

		// Google OAuth
		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		// Human verification
		CaptchaSecret: appValues.String("captcha_secret"),

		// Fallback admin login
		AdminUsername:     appValues.String("admin_username"),
		AdminPasswordHash: appValues.String("admin_password_hash"),

		// Admin bootstrap
		AdminEmail: appValues.String("admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// The MongoDB URI format is validated here to catch configuration
// errors early, before attempting to connect. The fallback login is
// validated as a pair: a username without a password hash (or the
// reverse) is a deployment mistake, not a disabled feature.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if (appCfg.AdminUsername == "") != (appCfg.AdminPasswordHash == "") {
		return fmt.Errorf("admin_username and admin_password_hash must be set together")
	}

	if appCfg.StorageType != "local" && appCfg.StorageType != "s3" {
		return fmt.Errorf("storage_type must be 'local' or 's3', got %q", appCfg.StorageType)
	}
	if appCfg.StorageType == "s3" && (appCfg.StorageS3Region == "" || appCfg.StorageS3Bucket == "") {
		return fmt.Errorf("s3 storage requires storage_s3_region and storage_s3_bucket")
	}

	return nil
}
