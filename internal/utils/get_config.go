package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	Port   string `yaml:"PORT"`
	AppURL string `yaml:"APP_URL"`

	// Database: postgres DSN, sqlite:// URL or a bare file path
	DatabaseURL string `yaml:"DATABASE_URL"`

	// Auth
	JWTSecret string `yaml:"JWT_SECRET"`

	// Suggestion provider (optional; local fallback when unset)
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"OPENAI_MODEL"`
	OpenAIBaseURL string `yaml:"OPENAI_BASE_URL"`

	// Mailing (optional)
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 image storage (optional)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the same-named
// environment variable so the server also runs without a config file.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "PORT":
		value = config.Port
	case "APP_URL":
		value = config.AppURL
	case "DATABASE_URL":
		value = config.DatabaseURL
	case "JWT_SECRET":
		value = config.JWTSecret
	case "OPENAI_API_KEY":
		value = config.OpenAIAPIKey
	case "OPENAI_MODEL":
		value = config.OpenAIModel
	case "OPENAI_BASE_URL":
		value = config.OpenAIBaseURL
	case "SMTP_HOST":
		value = config.SMTPHost
	case "SMTP_PORT":
		value = config.SMTPPort
	case "SMTP_SENDER_NAME":
		value = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		value = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		value = config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
