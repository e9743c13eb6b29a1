package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/pkg/clientip"
	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/httpserver"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/ratelimiter"
	"github.com/dmitrymomot/regform/pkg/requestid"
	reg "github.com/dmitrymomot/regform/svc/registration"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

// Config is the process configuration.
type Config struct {
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"regform"`
	LogLevel      string `env:"LOG_LEVEL"`
	StrictNumbers bool   `env:"REGISTRATION_STRICT_NUMBERS" envDefault:"false"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func (c Config) validator() *reg.Validator {
	if c.StrictNumbers {
		return reg.New(reg.WithStrictNumbers())
	}
	return reg.New()
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "regform: load config: %v\n", err)
		return exitError
	}

	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return serve(ctx, cfg, args, stdout, stderr)
	case "validate":
		return validate(cfg, args, stdin, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "regform: unknown command %q (want serve or validate)\n", cmd)
		return exitError
	}
}

// newRouter builds the service routes. A nil limiter leaves /register
// unlimited.
func newRouter(cfg Config, log *slog.Logger, limiter ratelimiter.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	module := registration.New(
		registration.WithValidator(cfg.validator()),
		registration.WithLogger(log),
	)
	r.Route("/register", func(r chi.Router) {
		if limiter != nil {
			r.Use(limitByClient(limiter))
		}
		r.Mount("/", module.Handle())
	})
	return r
}

var errTooManyRequests = handler.NewHTTPError(http.StatusTooManyRequests, "too_many_requests")

func limitByClient(limiter ratelimiter.RateLimiter) func(http.Handler) http.Handler {
	denied := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(errTooManyRequests).Render(w, r)
	})
	return ratelimiter.Middleware(limiter,
		func(r *http.Request) string { return clientip.FromContext(r.Context()) },
		ratelimiter.WithDeniedHandler(denied),
	)
}

func serve(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address, overrides HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	log := newLogger(cfg, stdout)
	logger.SetAsDefault(log)

	var limiter ratelimiter.RateLimiter
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			log.Error("invalid rate limit config", logger.Error(err))
			return exitError
		}
		limiter = bucket
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newRouter(cfg, log, limiter)); err != nil {
		log.Error("http server failed", logger.Error(err))
		return exitError
	}
	return exitOK
}

func validate(cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", cfg.StrictNumbers, "parse age and weight as whole numbers only")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	cfg.StrictNumbers = *strict

	in := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "regform: %v\n", err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	input, err := readRecord(in)
	if err != nil {
		fmt.Fprintf(stderr, "regform: %v\n", err)
		return exitError
	}

	res := cfg.validator().Validate(input)
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(stderr, "regform: write result: %v\n", err)
		return exitError
	}
	if !res.IsValid {
		return exitInvalid
	}
	return exitOK
}

var errBadRecord = errors.New("record must be a JSON object of strings")

func readRecord(r io.Reader) (reg.Input, error) {
	var record map[string]string
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return reg.Input{}, fmt.Errorf("%w: %v", errBadRecord, err)
	}
	if record == nil {
		return reg.Input{}, errBadRecord
	}
	return reg.ParseInput(record)
}
