package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the caller through usecases.
type Scope struct {
	ChatID string // Telegram chat id, or "web" for dashboard requests
	Source string // "telegram" or "web"
}
