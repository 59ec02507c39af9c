package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type LinearConfig struct {
	APIKey        string
	WebhookSecret string
	SafetyChecks  bool // ownership safety checks on mutations, default on
}

// IsConfigured returns true if all required Linear configuration is present
func (c LinearConfig) IsConfigured() bool {
	return c.APIKey != "" && c.WebhookSecret != ""
}

type OpenCodeConfig struct {
	ServerURL string
}

// IsConfigured returns true if all required OpenCode configuration is present
func (c OpenCodeConfig) IsConfigured() bool {
	return c.ServerURL != ""
}

type AlertConfig struct {
	WebhookURL string
}

// IsConfigured returns true if error alerting is enabled
func (c AlertConfig) IsConfigured() bool {
	return c.WebhookURL != ""
}

type AppConfig struct {
	// Core configuration
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	UseStrictConfig    bool // If true, error when any integration is not fully configured

	// Integration configurations (grouped)
	LinearConfig   LinearConfig
	OpenCodeConfig OpenCodeConfig
	AlertConfig    AlertConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		LinearConfig: LinearConfig{
			APIKey:        os.Getenv("LINEAR_API_KEY"),
			WebhookSecret: os.Getenv("LINEAR_WEBHOOK_SECRET"),
			SafetyChecks:  getEnvWithDefault("LINEAR_SAFETY_CHECKS", "true") == "true",
		},

		OpenCodeConfig: OpenCodeConfig{
			ServerURL: os.Getenv("OPENCODE_SERVER_URL"),
		},

		// Alerting is optional in both modes
		AlertConfig: AlertConfig{
			WebhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
		},
	}

	if config.LinearConfig.IsConfigured() {
		log.Printf("✅ Linear integration configured")
	} else {
		log.Printf("⚠️ Linear integration not configured - webhook processing and tracker tools will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("linear integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.OpenCodeConfig.IsConfigured() {
		log.Printf("✅ OpenCode integration configured")
	} else {
		log.Printf("⚠️ OpenCode integration not configured - command execution will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("opencode integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.AlertConfig.IsConfigured() {
		log.Printf("✅ Error alerting configured")
	} else {
		log.Printf("⚠️ Error alerting not configured - alerts will only be logged")
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
