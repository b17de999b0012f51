// Package cli implements the certgen and certgen-simple commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/config"
	"github.com/alnah/go-certgen/internal/fileutil"
	"github.com/alnah/go-certgen/internal/hints"
	"github.com/alnah/go-certgen/internal/logging"
	"github.com/alnah/go-certgen/internal/yamlutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Main runs a command with the production environment and returns its
// exit code.
func Main(args []string, mode certgen.Mode) int {
	return Run(context.Background(), args, mode, DefaultEnv())
}

// Run executes one certificate batch. args[0] is the program name.
func Run(ctx context.Context, args []string, mode certgen.Mode, env *Environment) int {
	name := programName(mode)
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, err := parseFlags(name, rest)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintf(env.Stderr, "Run '%s --help' for usage.\n", name)
		return ExitUsage
	}
	if flags.help {
		printUsage(env.Stdout, name, mode)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "%s %s\n", name, Version)
		return ExitSuccess
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg, configName, err := resolveConfig(flags, mode, env)
	if err != nil {
		return fail(env, nil, err, configName)
	}

	if flags.printConfig {
		data, err := yamlutil.Encode(cfg)
		if err != nil {
			return fail(env, nil, err, "")
		}
		_, _ = env.Stdout.Write(data)
		return ExitSuccess
	}

	logger, closeLog, err := newLogger(cfg, env)
	if err != nil {
		return fail(env, nil, err, "")
	}
	defer func() { _ = closeLog() }()

	ctx, stop := notifyContext(ctx)
	defer stop()

	summary, err := generate(ctx, cfg, mode, env, logger)
	if err != nil {
		return fail(env, logger, err, "")
	}
	if summary.Failed > 0 {
		return ExitPartial
	}
	return ExitSuccess
}

// resolveConfig layers defaults, config file, environment and flags, then
// validates the result.
// configName is the config file name or path that was used, if any.
func resolveConfig(flags *cliFlags, mode certgen.Mode, env *Environment) (cfg *config.Config, configName string, err error) {
	loadDotEnv(env.DotEnv, env.Stderr)
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	configName = flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg = defaultsFor(mode)
	if configName != "" {
		if cfg, err = config.LoadConfig(configName, cfg); err != nil {
			return nil, configName, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, configName, err
	}
	return cfg, configName, nil
}

func newLogger(cfg *config.Config, env *Environment) (*zap.Logger, func() error, error) {
	logCfg := &logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}
	if cfg.Log.Console {
		logCfg.Console = env.Stdout
	}
	if cfg.Log.File {
		logCfg.FilePath = cfg.Files.LogFile
	}
	return logging.New(logCfg)
}

func generate(ctx context.Context, cfg *config.Config, mode certgen.Mode, env *Environment, logger *zap.Logger) (*certgen.Summary, error) {
	records, err := certgen.LoadRecords(cfg.Files.Participants, mode, certgen.WithSheet(cfg.Files.Sheet))
	if err != nil {
		return nil, err
	}

	layout, err := layoutFromConfig(cfg, mode, env.Now())
	if err != nil {
		return nil, err
	}
	renderer, err := certgen.NewRenderer(layout, fontFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer func() { _ = renderer.Close() }()

	gen := certgen.NewGenerator(
		certgen.WithRenderer(renderer),
		certgen.WithExporter(exporterFromConfig(cfg, env.Now)),
		certgen.WithLogger(logger),
	)
	return gen.Run(ctx, records, cfg.Files.Template)
}

// fail reports a fatal error with hints and returns its exit code.
func fail(env *Environment, logger *zap.Logger, err error, configName string) int {
	if logger != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Certificate generation aborted", zap.Error(err))
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName))
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string) string {
	var mce *certgen.MissingColumnError
	switch {
	case errors.As(err, &mce):
		return hints.ForMissingColumn(mce.Missing, mce.Found)
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if configName != "" && !fileutil.IsFilePath(configName) {
			searched = config.SearchPaths(configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, certgen.ErrUnsupportedInput):
		return hints.ForUnsupportedInput()
	case errors.Is(err, certgen.ErrFileNotFound):
		return hints.ForInputNotFound(EnvParticipants + " or " + EnvTemplate)
	case errors.Is(err, certgen.ErrWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}

func programName(mode certgen.Mode) string {
	if mode == certgen.ModeFull {
		return "certgen"
	}
	return "certgen-simple"
}
