package model

// Scope carries the caller identity for a request.
type Scope struct {
	UserID   string
	Username string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
