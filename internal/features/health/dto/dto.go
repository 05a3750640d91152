package dto

import "github.com/aouiniamine/devbox/internal/features/health/checker"

type HealthStatus struct {
	App   string `json:"app" example:"healthy"`
	DB    string `json:"db" example:"healthy"`
	Cache string `json:"cache" example:"unhealthy: dial tcp 10.0.0.3:6379: connect: connection refused"`
}

// NewHealthStatus starts every field as unhealthy so an early return never
// reports a dependency as up.
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{
		App:   checker.StatusUnhealthy,
		DB:    checker.StatusUnhealthy,
		Cache: checker.StatusUnhealthy,
	}
}
