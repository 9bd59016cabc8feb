package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/UzairRan/studymind-cli/internal/api"
	cfgpkg "github.com/UzairRan/studymind-cli/internal/config"
)

var (
	// Global flags (wired to config at load time)
	cfgFile        string
	debug          bool
	flagBaseURL    string
	flagTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Global

	// Shared structured logger; writes to a rotated file so interactive
	// output is never mixed with log lines.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "studymind",
	Short: "StudyMind CLI: ask questions and generate quizzes from your PDF study notes",
	Long: `StudyMind is a terminal client for the StudyMind document Q&A backend.
Upload PDF study notes, ask natural-language questions against them, and
generate chapter quizzes. Run "studymind chat" for the interactive interface.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(initApp)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.studymind/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend base URL (overrides environment selection)")
	rootCmd.PersistentFlags().IntVar(&flagTimeoutSec, "timeout", 0, "HTTP request timeout in seconds (overrides config)")
}

func initApp() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			Environment:    cfgpkg.EnvLocal,
			LocalBaseURL:   "http://localhost:8000",
			HTTPTimeoutSec: 60,
		}
	}
	cfg = c

	if f := rootCmd.PersistentFlags(); f.Changed("timeout") && flagTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagTimeoutSec
	}

	logger = newLogger(cfg.LogFile, debug)
}

func newLogger(path string, debug bool) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, level))
}

// baseURL resolves the effective backend host: flag > config environment.
func baseURL() string {
	if flagBaseURL != "" {
		return flagBaseURL
	}
	return cfg.BaseURL()
}

func httpTimeout() time.Duration {
	if cfg.HTTPTimeoutSec > 0 {
		return time.Duration(cfg.HTTPTimeoutSec) * time.Second
	}
	return 60 * time.Second
}

func newClient() *api.Client {
	return api.New(baseURL(), httpTimeout(), logger)
}

// requestContext bounds a single CLI request; the TUI builds its own.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), httpTimeout())
}
