/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"

	"github.com/nspcc-dev/reqasm-go/pkg/config"
	"github.com/nspcc-dev/reqasm-go/pkg/io"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvKey is the cli.App metadata key holding a prepared *Env. Commands
// running inside the interactive shell get their Env from there.
const EnvKey = "env"

// Config is a flag for commands that use a configuration file.
var Config = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the YAML configuration file (built-in defaults are used if not specified)",
}

// Debug is a flag for commands that allow debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// Env is the configuration and the logger shared by commands.
type Env struct {
	Config config.Config
	Log    *zap.Logger
}

// GetConfigFromContext returns the configuration specified by the
// config-file flag or the default one.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	configFile := ctx.GlobalString("config-file")
	if len(configFile) == 0 {
		configFile = ctx.String("config-file")
	}
	if len(configFile) == 0 {
		return config.Default(), nil
	}
	return config.LoadFile(configFile)
}

// GetEnv returns the Env stored in application metadata or creates a new one
// from the configuration file and logging flags. The returned function must
// be called when the Env is no longer needed.
func GetEnv(ctx *cli.Context) (*Env, func(), *cli.ExitError) {
	if env, ok := ctx.App.Metadata[EnvKey].(*Env); ok {
		return env, func() {}, nil
	}
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	log, _, err := HandleLoggingParams(ctx.GlobalBool("debug") || ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	return &Env{Config: cfg, Log: log}, func() { _ = log.Sync() }, nil
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := io.MakeDirForFile(logPath, "logger"); err != nil {
			return nil, nil, err
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}
