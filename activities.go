package activities

import "github.com/mergington/go-activities/service"

// Re-export the service package entry point so consumers can do
// `activities.New(...)` without importing internal wiring helpers.
type (
	Service  = service.Service
	Config   = service.Config
	Commands = service.Commands
	Queries  = service.Queries
)

// New constructs the go-activities runtime using the provided configuration.
func New(cfg Config) *Service {
	return service.New(cfg)
}
