package config

import (
	"errors"
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := validateGenAIConfig(&config.GenAI); err != nil {
		return fmt.Errorf("genai config validation failed: %w", err)
	}

	if err := validateSchedulerConfig(&config.Scheduler); err != nil {
		return fmt.Errorf("scheduler config validation failed: %w", err)
	}

	if err := validateWorkerConfig(&config.Worker); err != nil {
		return fmt.Errorf("worker config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if config.Cache.ConfigTTL <= 0 {
		return fmt.Errorf("cache config validation failed: config ttl must be positive, got %v", config.Cache.ConfigTTL)
	}

	if config.OTel.SampleRatio < 0 || config.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel config validation failed: sample ratio must be within [0,1], got %v", config.OTel.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", config.RequestTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.URL == "" {
		return errors.New("DATABASE_URL is required")
	}

	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be within [0,%d], got %d", config.MaxConns, config.MinConns)
	}

	if config.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got %v", config.ConnectTimeout)
	}

	return nil
}

func validateAuthConfig(config *AuthConfig) error {
	if len(config.JWTSecret) < 32 {
		return errors.New("ADMIN_JWT_SECRET must be at least 32 bytes")
	}

	if config.Issuer == "" || config.Audience == "" {
		return errors.New("issuer and audience are required")
	}

	if config.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %v", config.TokenTTL)
	}

	return nil
}

func validateGenAIConfig(config *GenAIConfig) error {
	switch config.Provider {
	case "vertex":
		if config.VertexProject == "" && config.GeminiAPIKey == "" {
			return errors.New("vertex provider requires GOOGLE_CLOUD_PROJECT or GEMINI_API_KEY")
		}
	case "openai":
		if config.OpenAIAPIKey == "" {
			return errors.New("openai provider requires OPENAI_API_KEY")
		}
	case "none":
	default:
		return fmt.Errorf("invalid provider: %s (must be one of: vertex, openai, none)", config.Provider)
	}

	if config.Temperature < 0 || config.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0,2], got %v", config.Temperature)
	}

	if config.QuizQuestions < 1 || config.HangmanWords < 1 {
		return errors.New("quiz questions and hangman words must be at least 1")
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}

	return nil
}

func validateSchedulerConfig(config *SchedulerConfig) error {
	if config.MinInterval <= 0 || config.FetchTimeout <= 0 || config.ReconcileEvery <= 0 {
		return errors.New("intervals and timeouts must be positive")
	}

	if config.MinInterval > config.DefaultInterval || config.DefaultInterval > config.MaxInterval {
		return fmt.Errorf("intervals must satisfy min <= default <= max, got %v <= %v <= %v",
			config.MinInterval, config.DefaultInterval, config.MaxInterval)
	}

	if config.AutoDisableAfter < 0 {
		return fmt.Errorf("auto disable threshold must not be negative, got %d", config.AutoDisableAfter)
	}

	return nil
}

func validateWorkerConfig(config *WorkerConfig) error {
	if config.PollInterval <= 0 || config.MaxBackoff < config.PollInterval {
		return fmt.Errorf("poll interval must be positive and not exceed max backoff, got %v / %v",
			config.PollInterval, config.MaxBackoff)
	}

	if config.MaxAttempts < 1 || config.Concurrency < 1 {
		return errors.New("max attempts and concurrency must be at least 1")
	}

	if config.JobTimeout <= 0 {
		return fmt.Errorf("job timeout must be positive, got %v", config.JobTimeout)
	}

	// A job still inside its timeout must never look stale.
	if config.StaleAfter <= config.JobTimeout {
		return fmt.Errorf("stale job timeout %v must exceed job timeout %v", config.StaleAfter, config.JobTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	isValid := false
	for _, valid := range validLevels {
		if level == valid {
			isValid = true
			break
		}
	}
	if !isValid {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", config.Level, strings.Join(validLevels, ", "))
	}

	if config.Format != "json" && config.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", config.Format)
	}

	return nil
}
