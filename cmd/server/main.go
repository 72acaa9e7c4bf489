// The activities server exposes the Mergington High School extracurricular
// catalog over HTTP: students browse activities, sign up, and unregister from
// the bundled static frontend or straight against the JSON endpoints.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	activities "github.com/mergington/go-activities"
	"github.com/mergington/go-activities/command"
	"github.com/mergington/go-activities/pkg/types"
	"github.com/mergington/go-activities/rest"
)

type App struct {
	config *gconfig.Container[*AppConfig]
	logger *glog.BaseLogger
	srv    router.Server[*fiber.App]
	svc    *activities.Service
}

func (a *App) Config() *AppConfig {
	return a.config.Raw()
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Info),
		glog.WithName("activities"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := gconfig.New(&AppConfig{
		Server: ServerConfig{
			Host:      "localhost",
			Port:      "8000",
			StaticDir: "./public",
		},
		Features: FeaturesConfig{
			EmailValidation: true,
			Unregister:      true,
		},
	}).WithLogger(lgr.GetLogger("config"))

	ctx := context.Background()
	if err := cfg.Load(ctx); err != nil {
		panic(err)
	}

	fmt.Println(print.MaybeHighlightJSON(cfg.Raw()))

	app := &App{config: cfg, logger: lgr}

	if err := WithActivityService(ctx, app); err != nil {
		panic(err)
	}
	if err := WithHTTPServer(ctx, app); err != nil {
		panic(err)
	}

	rest.Register(app.srv, app.svc, &loggerAdapter{app.GetLogger("rest")})

	serverCfg := app.Config().Server
	addr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	log.Printf("Starting server on http://%s\n", addr)
	app.srv.Serve(addr)

	WaitExitSignal()
}

func WithActivityService(ctx context.Context, app *App) error {
	hooks := types.Hooks{
		AfterEnroll: func(_ context.Context, event types.EnrollmentEvent) {
			app.GetLogger("hooks").Info("enrollment recorded",
				"event_id", event.ID,
				"activity", event.Activity,
				"roster_size", event.RosterSize,
				"payload", event.Data,
			)
		},
		AfterWithdraw: func(_ context.Context, event types.WithdrawalEvent) {
			app.GetLogger("hooks").Info("withdrawal recorded",
				"event_id", event.ID,
				"activity", event.Activity,
				"roster_size", event.RosterSize,
				"payload", event.Data,
			)
		},
	}

	svc := activities.New(activities.Config{
		Gate:   newStaticGate(app.Config().Features),
		Hooks:  hooks,
		Logger: &loggerAdapter{app.GetLogger("service")},
		Masker: command.DefaultMasker(),
	})

	if err := svc.HealthCheck(ctx); err != nil {
		return err
	}

	app.svc = svc
	return nil
}

func WithHTTPServer(_ context.Context, app *App) error {
	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return fiber.New(fiber.Config{
			// Activity names carry spaces; paths arrive percent-encoded.
			UnescapePath:  true,
			StrictRouting: false,
		})
	})

	srv.Router().Static("/static", app.Config().Server.StaticDir)
	srv.Router().WithLogger(app.GetLogger("router"))

	app.srv = srv
	return nil
}

// staticGate serves the feature toggles straight from config. Unknown keys
// default to enabled.
type staticGate struct {
	features map[string]bool
}

func newStaticGate(cfg FeaturesConfig) featuregate.FeatureGate {
	return &staticGate{features: map[string]bool{
		"activities.email_validation": cfg.EmailValidation,
		"activities.unregister":       cfg.Unregister,
	}}
}

func (g *staticGate) Enabled(_ context.Context, key string, _ ...featuregate.ResolveOption) (bool, error) {
	enabled, ok := g.features[key]
	if !ok {
		return true, nil
	}
	return enabled, nil
}

// loggerAdapter adapts glog.Logger to types.Logger.
type loggerAdapter struct {
	l glog.Logger
}

func (a *loggerAdapter) Debug(msg string, args ...any) {
	a.l.Debug(msg, args...)
}

func (a *loggerAdapter) Info(msg string, args ...any) {
	a.l.Info(msg, args...)
}

func (a *loggerAdapter) Warn(msg string, args ...any) {
	a.l.Warn(msg, args...)
}

func (a *loggerAdapter) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	a.l.Error(msg, args...)
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
