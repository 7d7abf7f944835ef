package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port           int    `yaml:"port"`
	GinMode        string `yaml:"gin_mode"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type StorageConfig struct {
	Backend  string `yaml:"backend"` // "local" or "s3"
	LocalDir string `yaml:"local_dir"`
	S3Bucket string `yaml:"s3_bucket"`
	S3Region string `yaml:"s3_region"`
	S3Prefix string `yaml:"s3_prefix"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Storage  StorageConfig  `yaml:"storage"`
}

type Config struct {
	Port           string
	GinMode        string
	MaxUploadBytes int64
	DSN            string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	JWTIssuer      string
	TokenTTL       time.Duration
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFrom       string
	TwilioSID      string
	TwilioToken    string
	TwilioFrom     string
	StorageBackend string
	UploadDir      string
	S3Bucket       string
	S3Region       string
	S3Prefix       string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml (overridable via CONFIG_PATH) and applies
// environment overrides for the secrets deployments inject.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	ttl, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	maxUpload := configFile.App.MaxUploadBytes
	if maxUpload <= 0 {
		// Transport-level ceiling: both uploads plus form fields. The
		// largest legal request is well under 1MB.
		maxUpload = 2 << 20
	}

	uploadDir := configFile.Storage.LocalDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	backend := configFile.Storage.Backend
	if backend == "" {
		backend = "local"
	}

	return &Config{
		Port:           env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:        configFile.App.GinMode,
		MaxUploadBytes: maxUpload,
		DSN:            env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:      env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:  configFile.Redis.Password,
		RedisDB:        configFile.Redis.DB,
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      configFile.JWT.Issuer,
		TokenTTL:       ttl,
		SMTPHost:       configFile.SMTP.Host,
		SMTPPort:       configFile.SMTP.Port,
		SMTPUsername:   env("EMAIL_USER", configFile.SMTP.Username),
		SMTPPassword:   env("EMAIL_PASS", configFile.SMTP.Password),
		SMTPFrom:       configFile.SMTP.From,
		TwilioSID:      configFile.Twilio.AccountSID,
		TwilioToken:    configFile.Twilio.AuthToken,
		TwilioFrom:     configFile.Twilio.FromNumber,
		StorageBackend: backend,
		UploadDir:      uploadDir,
		S3Bucket:       configFile.Storage.S3Bucket,
		S3Region:       configFile.Storage.S3Region,
		S3Prefix:       configFile.Storage.S3Prefix,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
