package entrocheck

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/entrocheck/entrocheck/internal/config"
	"github.com/entrocheck/entrocheck/internal/engine"
	"github.com/entrocheck/entrocheck/internal/policy"
	"github.com/entrocheck/entrocheck/internal/report"
)

var (
	flagTarget   string
	flagVerbose  bool
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64

	flagMinLength       int
	flagThreshold       float64
	flagStrongThreshold float64
	flagCharset         string
	flagIgnoreKeys      []string
	flagIgnoreValues    []string
	flagKeyHintBoost    float64
	flagNoDefaultExcl   bool
)

// defaultMaxBytes bounds per-file reads when neither flag nor config sets one.
const defaultMaxBytes = 1 << 20

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan configuration files for high-entropy values",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagTarget, "target", "t", ".", "file or directory to scan")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this, -1 for no limit (default 1MB)")
	cmd.Flags().IntVar(&flagMinLength, "min-length", 0, "minimum candidate value length (default 8)")
	cmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "entropy threshold in bits/char (default 3.5)")
	cmd.Flags().Float64Var(&flagStrongThreshold, "strong-threshold", 0, "severity cutoff for weak findings (default 4.5)")
	cmd.Flags().StringVar(&flagCharset, "charset", "", "charset mode: any|base64|hex")
	cmd.Flags().StringSliceVar(&flagIgnoreKeys, "ignore-key", nil, "glob pattern for key names to skip (repeatable)")
	cmd.Flags().StringSliceVar(&flagIgnoreValues, "ignore-value", nil, "glob pattern for values to skip (repeatable)")
	cmd.Flags().Float64Var(&flagKeyHintBoost, "key-hint-boost", 0, "threshold reduction for secret-suggestive key names (default 0.5, negative disables)")
	cmd.Flags().BoolVar(&flagNoDefaultExcl, "no-default-excludes", false, "scan vendored dirs and lockfiles too")
}

// newLogger builds the CLI's stderr logger. The core never logs; every
// diagnostic the tool emits funnels through here.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// buildEngineConfig merges CLI flags with repo-local and global file config
// (CLI > local > global) into a validated engine configuration.
func buildEngineConfig(target string, lcfg, gcfg config.FileConfig) (engine.Config, error) {
	pol, err := policy.New(policy.Options{
		MinLength:        pickInt(flagMinLength, lcfg.MinLength, gcfg.MinLength),
		EntropyThreshold: pickFloat(flagThreshold, lcfg.EntropyThreshold, gcfg.EntropyThreshold),
		StrongThreshold:  pickFloat(flagStrongThreshold, lcfg.StrongThreshold, gcfg.StrongThreshold),
		CharsetMode:      pickString(flagCharset, lcfg.CharsetMode, gcfg.CharsetMode),
		IgnoreKeys:       pickSlice(flagIgnoreKeys, lcfg.IgnoreKeys, gcfg.IgnoreKeys),
		IgnoreValues:     pickSlice(flagIgnoreValues, lcfg.IgnoreValues, gcfg.IgnoreValues),
		KeyHintBoost:     pickFloat(flagKeyHintBoost, lcfg.KeyHintBoost, gcfg.KeyHintBoost),
		KeyHints:         pickSlice(nil, lcfg.KeyHints, gcfg.KeyHints),
	})
	if err != nil {
		return engine.Config{}, err
	}
	maxBytes := pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes)
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}
	return engine.Config{
		Target:          target,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        maxBytes,
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DefaultExcludes: !flagNoDefaultExcl,
		Policy:          pol,
	}, nil
}

func runScan(_ *cobra.Command, _ []string) error {
	log := newLogger(flagVerbose)

	abs, err := filepath.Abs(flagTarget)
	if err != nil {
		return err
	}

	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
		log.Debug().Msg("loaded global config")
	}
	confRoot := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		confRoot = filepath.Dir(abs)
	}
	if c, err := config.LoadLocal(confRoot); err == nil {
		lcfg = c
		log.Debug().Str("root", confRoot).Msg("loaded local config")
	}

	cfg, err := buildEngineConfig(abs, lcfg, gcfg)
	if err != nil {
		return err
	}

	if flagSelfUpdate {
		if err := selfUpdate(); err == nil {
			log.Info().Msg("updated to latest; re-run command")
			return nil
		}
	}

	log.Debug().
		Str("target", abs).
		Int("min_length", cfg.Policy.MinLength).
		Float64("entropy_threshold", cfg.Policy.EntropyThreshold).
		Float64("strong_threshold", cfg.Policy.StrongThreshold).
		Str("charset_mode", string(cfg.Policy.CharsetMode)).
		Msg("starting scan")

	res, err := engine.Run(context.Background(), cfg)
	if err != nil {
		return err
	}
	for _, fe := range res.FileErrors {
		log.Warn().Str("file", fe.Path).Err(fe.Err).Msg("file skipped with error")
	}
	log.Debug().
		Int("scanned", res.FilesScanned).
		Int("skipped", res.FilesSkipped).
		Int("findings", len(res.Findings)).
		Dur("duration", res.Duration).
		Msg("scan complete")

	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, res.Findings, version); err != nil {
			return err
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, res.Findings); err != nil {
			return err
		}
	default:
		noColor := flagNoColor || pickBool(false, lcfg.NoColor, gcfg.NoColor)
		report.PrintText(os.Stdout, res.Findings, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
			FilesSkipped: res.FilesSkipped,
			FileErrors:   len(res.FileErrors),
		})
	}

	if report.ShouldFail(res.Findings, failOn) {
		os.Exit(1)
	}
	return nil
}
