// Package service wires the registry, commands, and queries into the
// go-activities entry point.
package service

import (
	"context"
	"fmt"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-masker"
	"github.com/mergington/go-activities/command"
	"github.com/mergington/go-activities/pkg/types"
	"github.com/mergington/go-activities/query"
	"github.com/mergington/go-activities/registry"
)

// Service is the entry point for go-activities. Hosts supply the registry,
// gate, hooks, and logger; missing ambient dependencies fall back to sane
// defaults.
type Service struct {
	cfg      Config
	registry types.Registry
	commands Commands
	queries  Queries
}

// Commands exposes the service command handlers.
type Commands struct {
	Enroll   *command.EnrollCommand
	Withdraw *command.WithdrawCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	Activities *query.ActivityListQuery
}

// Config captures the service dependencies. A nil Registry gets the default
// nine-activity catalog; a nil Gate means every feature is enabled.
type Config struct {
	Registry    types.Registry
	Catalog     []types.Activity
	Gate        featuregate.FeatureGate
	Clock       types.Clock
	IDGenerator types.IDGenerator
	Hooks       types.Hooks
	Logger      types.Logger
	Masker      *masker.Masker
}

// New constructs a Service from the supplied configuration.
func New(cfg Config) *Service {
	norm := normalizeConfig(cfg)

	reg := norm.Registry
	if reg == nil {
		built, err := registry.New(registry.Config{
			Catalog: norm.Catalog,
			Logger:  norm.Logger,
		})
		if err != nil {
			norm.Logger.Error("go-activities: registry initialization failed", err)
		} else {
			reg = built
		}
	}

	s := &Service{
		cfg:      norm,
		registry: reg,
	}
	s.commands = Commands{
		Enroll: command.NewEnrollCommand(command.EnrollCommandConfig{
			Registry: reg,
			Gate:     norm.Gate,
			Clock:    norm.Clock,
			IDs:      norm.IDGenerator,
			Hooks:    norm.Hooks,
			Logger:   norm.Logger,
			Masker:   norm.Masker,
		}),
		Withdraw: command.NewWithdrawCommand(command.WithdrawCommandConfig{
			Registry: reg,
			Gate:     norm.Gate,
			Clock:    norm.Clock,
			IDs:      norm.IDGenerator,
			Hooks:    norm.Hooks,
			Logger:   norm.Logger,
			Masker:   norm.Masker,
		}),
	}
	s.queries = Queries{
		Activities: query.NewActivityListQuery(reg),
	}
	return s
}

func normalizeConfig(cfg Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = types.SystemClock{}
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = types.UUIDGenerator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	if cfg.Masker == nil {
		cfg.Masker = command.DefaultMasker()
	}
	return cfg
}

// Commands returns the command facade.
func (s *Service) Commands() Commands {
	return s.commands
}

// Queries returns the query facade.
func (s *Service) Queries() Queries {
	return s.queries
}

// Registry returns the backing registry.
func (s *Service) Registry() types.Registry {
	return s.registry
}

// HealthCheck verifies the service can serve its catalog.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.registry == nil {
		return types.ErrMissingRegistry
	}
	if len(s.registry.Snapshot(ctx)) == 0 {
		return fmt.Errorf("go-activities: empty activity catalog")
	}
	return nil
}
