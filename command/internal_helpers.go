package command

import (
	"context"
	"sync"
	"time"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-masker"
	"github.com/mergington/go-activities/pkg/types"
)

const (
	featureEmailValidation = "activities.email_validation"
	featureUnregister      = "activities.unregister"
)

func safeClock(clock types.Clock) types.Clock {
	if clock != nil {
		return clock
	}
	return types.SystemClock{}
}

func safeLogger(logger types.Logger) types.Logger {
	if logger != nil {
		return logger
	}
	return types.NopLogger{}
}

func safeIDs(ids types.IDGenerator) types.IDGenerator {
	if ids != nil {
		return ids
	}
	return types.UUIDGenerator{}
}

func now(clock types.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now()
}

// featureEnabled treats a missing gate as enabled so the library defaults to
// the stricter product variant.
func featureEnabled(ctx context.Context, gate featuregate.FeatureGate, key string) (bool, error) {
	if gate == nil {
		return true, nil
	}
	return gate.Enabled(ctx, key)
}

var defaultMaskerOnce sync.Once

// DefaultMasker returns the shared masker with the roster denylist applied.
func DefaultMasker() *masker.Masker {
	defaultMaskerOnce.Do(func() {
		if masker.Default == nil {
			return
		}
		masker.Default.RegisterMaskField("email", "filled4")
	})
	return masker.Default
}

// maskPayload masks sensitive keys in an event payload. On masker failure the
// payload is dropped entirely rather than leaked.
func maskPayload(mask *masker.Masker, payload map[string]any) map[string]any {
	if len(payload) == 0 {
		return map[string]any{}
	}
	if mask == nil {
		mask = DefaultMasker()
	}
	if mask == nil {
		return map[string]any{}
	}
	cloned := make(map[string]any, len(payload))
	for k, v := range payload {
		cloned[k] = v
	}
	masked, err := mask.Mask(cloned)
	if err != nil {
		return map[string]any{}
	}
	if out, ok := masked.(map[string]any); ok {
		return out
	}
	return map[string]any{}
}

func emitEnrollHook(ctx context.Context, hooks types.Hooks, event types.EnrollmentEvent) {
	if hooks.AfterEnroll == nil {
		return
	}
	hooks.AfterEnroll(ctx, event)
}

func emitWithdrawHook(ctx context.Context, hooks types.Hooks, event types.WithdrawalEvent) {
	if hooks.AfterWithdraw == nil {
		return
	}
	hooks.AfterWithdraw(ctx, event)
}
