package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort   string `yaml:"APP_PORT"`
	AppURL    string `yaml:"APP_URL"`
	LogFile   string `yaml:"LOG_FILE"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	RateLimit int    `yaml:"RATE_LIMIT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Session storage
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB"`
	CookieSecure  bool   `yaml:"COOKIE_SECURE"`

	// Flash cookie signing key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Seeded admin account
	AdminPassword string `yaml:"ADMIN_PASSWORD"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	AdminNotifyEmail string `yaml:"ADMIN_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:   "3000",
		AppURL:    "http://localhost:3000",
		LogFile:   "./logs/app.log",
		LogLevel:  "info",
		RateLimit: 10,
		DBHost:    "localhost",
		DBPort:    "5432",
		SMTPPort:  "587",
	}
}

// LoadConfig reads config.yaml (or CONFIG_FILE) and lets environment
// variables with the same keys override file values. A missing file is
// not fatal: defaults plus environment are used.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	applyEnv(&cfg)
	config = cfg
	return cfg
}

func applyEnv(cfg *Config) {
	for key, field := range cfg.stringFields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
	if v, ok := os.LookupEnv("RATE_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = n
		}
	}
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		}
	}
	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CookieSecure = b
		}
	}
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"LOG_FILE":           &c.LogFile,
		"LOG_LEVEL":          &c.LogLevel,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"REDIS_ADDR":         &c.RedisAddr,
		"REDIS_PASSWORD":     &c.RedisPassword,
		"JWT_SECRET":         &c.JWTSecret,
		"ADMIN_PASSWORD":     &c.AdminPassword,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"ADMIN_NOTIFY_EMAIL": &c.AdminNotifyEmail,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

func GetConfig(key string) string {
	switch key {
	case "RATE_LIMIT":
		return strconv.Itoa(config.RateLimit)
	case "REDIS_DB":
		return strconv.Itoa(config.RedisDB)
	case "COOKIE_SECURE":
		return strconv.FormatBool(config.CookieSecure)
	}
	if field, ok := config.stringFields()[key]; ok {
		return *field
	}
	return ""
}
