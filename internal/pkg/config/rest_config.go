package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ApplicationName is reported by the health endpoints
const ApplicationName = "portfolio"

// ApplicationVersion is reported by the health endpoints
const ApplicationVersion = "1.0.0"

// RestConfig is the single configuration object for the REST server and the CLI
type RestConfig struct {
	Environment  string           `mapstructure:"environment" validate:"required,oneof=dev prod"`
	Debug        bool             `mapstructure:"debug"`
	Port         string           `mapstructure:"port" validate:"required,numeric"`
	SecretKey    string           `mapstructure:"secret_key"`
	AllowedHosts []string         `mapstructure:"allowed_hosts"`
	Logger       LoggerSettings   `mapstructure:"logger"`
	Database     DatabaseSettings `mapstructure:"database"`
	Storage      StorageSettings  `mapstructure:"storage"`
	Mail         MailSettings     `mapstructure:"mail"`
	Auth         AuthSettings     `mapstructure:"auth"`
	Cache        CacheSettings    `mapstructure:"cache"`
}

// devSecretKey keys session digests when no secret is configured outside production
const devSecretKey = "portfolio-insecure-dev-secret"

// environment variable bindings, first name wins
var envBindings = map[string][]string{
	"environment":                     {"APP_ENV", "ENVIRONMENT"},
	"debug":                           {"DEBUG"},
	"port":                            {"PORT"},
	"secret_key":                      {"SECRET_KEY", "DJANGO_SECRET_KEY"},
	"allowed_hosts":                   {"ALLOWED_HOSTS"},
	"logger.log_level":                {"LOG_LEVEL"},
	"logger.log_type":                 {"LOG_TYPE"},
	"logger.file_path":                {"LOG_FILE_PATH"},
	"database.url":                    {"DATABASE_URL"},
	"storage.backend":                 {"STORAGE_BACKEND"},
	"storage.document_backend":        {"DOCUMENT_STORAGE_BACKEND"},
	"storage.use_cloudinary":          {"USE_CLOUDINARY"},
	"storage.media_root":              {"MEDIA_ROOT"},
	"storage.media_url":               {"MEDIA_URL"},
	"storage.static_root":             {"STATIC_ROOT"},
	"storage.cloudinary.cloud_name":   {"CLOUDINARY_CLOUD_NAME"},
	"storage.cloudinary.api_key":      {"CLOUDINARY_API_KEY"},
	"storage.cloudinary.api_secret":   {"CLOUDINARY_API_SECRET"},
	"storage.s3.bucket":               {"AWS_STORAGE_BUCKET_NAME", "S3_BUCKET"},
	"storage.s3.region":               {"AWS_S3_REGION_NAME", "AWS_REGION"},
	"storage.s3.endpoint":             {"AWS_S3_ENDPOINT_URL"},
	"storage.s3.access_key_id":        {"AWS_ACCESS_KEY_ID"},
	"storage.s3.secret_access_key":    {"AWS_SECRET_ACCESS_KEY"},
	"storage.s3.public_base_url":      {"AWS_S3_CUSTOM_DOMAIN"},
	"storage.azure.connection_string": {"AZURE_STORAGE_CONNECTION_STRING"},
	"storage.azure.container_name":    {"AZURE_STORAGE_CONTAINER"},
	"mail.backend":                    {"EMAIL_BACKEND"},
	"mail.host":                       {"EMAIL_HOST"},
	"mail.port":                       {"EMAIL_PORT"},
	"mail.username":                   {"EMAIL_HOST_USER"},
	"mail.password":                   {"EMAIL_HOST_PASSWORD"},
	"mail.use_tls":                    {"EMAIL_USE_TLS"},
	"mail.from":                       {"DEFAULT_FROM_EMAIL"},
	"mail.contact_email":              {"CONTACT_EMAIL"},
	"mail.subject_prefix":             {"EMAIL_SUBJECT_PREFIX"},
	"mail.send_auto_reply":            {"SEND_AUTO_REPLY"},
	"mail.timeout":                    {"EMAIL_TIMEOUT"},
	"auth.session_store_path":         {"SESSION_STORE_PATH"},
	"auth.cookie_secure":              {"SESSION_COOKIE_SECURE"},
	"auth.superuser.username":         {"DJANGO_SUPERUSER_USERNAME", "ADMIN_USERNAME"},
	"auth.superuser.email":            {"DJANGO_SUPERUSER_EMAIL", "ADMIN_EMAIL"},
	"auth.superuser.password":         {"DJANGO_SUPERUSER_PASSWORD", "ADMIN_PASSWORD"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", DevEnvironment)
	v.SetDefault("debug", false)
	v.SetDefault("port", "8000")
	v.SetDefault("allowed_hosts", []string{})

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "db.sqlite3")

	v.SetDefault("storage.backend", "")
	v.SetDefault("storage.media_root", "media")
	v.SetDefault("storage.media_url", "/media/")

	v.SetDefault("mail.backend", ConsoleMailBackend)
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.use_tls", true)
	v.SetDefault("mail.from", "noreply@example.com")
	v.SetDefault("mail.subject_prefix", "[Portfolio Contact] ")
	v.SetDefault("mail.send_auto_reply", false)
	v.SetDefault("mail.timeout", 30*time.Second)

	v.SetDefault("auth.session_store_path", "sessions.db")
	v.SetDefault("auth.session_ttl", 14*24*time.Hour)
	v.SetDefault("auth.cookie_name", "portfolio_session")

	v.SetDefault("cache.personal_info_ttl", 15*time.Minute)
}

// InitializeRestConfig loads the configuration file at configPath (when present),
// overlays environment variables and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *RestConfig) normalize() error {
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	switch c.Environment {
	case "production":
		c.Environment = ProdEnvironment
	case "development", "local":
		c.Environment = DevEnvironment
	}
	if c.SecretKey == "" && c.Environment == DevEnvironment {
		c.SecretKey = devSecretKey
	}

	hosts := c.AllowedHosts[:0]
	for _, h := range c.AllowedHosts {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	c.AllowedHosts = hosts

	if err := c.Database.ApplyURL(); err != nil {
		return fmt.Errorf("failed to apply DATABASE_URL: %w", err)
	}
	c.Storage.ResolveBackend()
	if c.Storage.DocumentBackend == "" {
		c.Storage.DocumentBackend = c.Storage.Backend
	}
	if !strings.HasSuffix(c.Storage.MediaURL, "/") {
		c.Storage.MediaURL += "/"
	}
	return nil
}

// Validate checks the whole configuration, section by section
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Environment", "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if c.Environment == ProdEnvironment {
		if c.SecretKey == "" {
			return fmt.Errorf("secret key is required in the %s environment", ProdEnvironment)
		}
		if c.Debug {
			return fmt.Errorf("debug must be disabled in the %s environment", ProdEnvironment)
		}
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *RestConfig) IsProduction() bool {
	return c.Environment == ProdEnvironment
}
