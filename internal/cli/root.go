package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-formaudit/internal/config"
	"github.com/goliatone/go-formaudit/internal/logging"
	"github.com/goliatone/go-formaudit/pkg/donation"
)

// Version is stamped at build time through -ldflags.
var Version = "dev"

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"association": config.KeyAssociation,
	"format":      config.KeyFormat,
	"sanitize":    config.KeySanitize,
	"log-level":   config.KeyLogLevel,
	"templates":   config.KeyTemplates,
}

type app struct {
	v          *viper.Viper
	cfgFile    string
	verbose    bool
	cfg        config.Config
	configUsed string
	logger     *zap.Logger
	confirmer  Confirmer
}

// Option customises the root command, mainly for tests.
type Option func(*app)

// WithConfirmer replaces the interactive survey prompt.
func WithConfirmer(confirmer Confirmer) Option {
	return func(a *app) {
		if confirmer != nil {
			a.confirmer = confirmer
		}
	}
}

// WithLogger skips logger construction and uses logger instead.
func WithLogger(logger *zap.Logger) Option {
	return func(a *app) {
		a.logger = logger
	}
}

// NewRootCommand builds the formaudit command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		v:         config.New(),
		confirmer: surveyConfirmer{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	injectedLogger := a.logger != nil

	root := &cobra.Command{
		Use:   "formaudit",
		Short: "Audit donation form markup for structural and accessibility defects",
		Long: `formaudit inspects donation form HTML for <input> closing tags, labels
without matching inputs, missing required attributes and an email field that
is not typed as email. It can rewrite the legacy donation form into a passing
shape and print the hand-authored reference form.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (FORMAUDIT_*)
  3. Config file (~/.formaudit/config.yaml)
  4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bindFlags(cmd.Flags()); err != nil {
				return err
			}
			used, err := config.Read(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.configUsed = used

			cfg, err := config.Decode(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if !injectedLogger {
				logger, err := logging.New(cfg.LogLevel, a.verbose)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			a.logger.Debug("configuration loaded",
				zap.String("config_file", used),
				zap.String("association", cfg.Association),
				zap.String("format", cfg.Format),
			)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil && !injectedLogger {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.formaudit/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("association", "", "label association semantics: strict, last-label")

	root.AddCommand(
		newCheckCommand(a),
		newChecklistCommand(a),
		newAuditCommand(a),
		newFixCommand(a),
		newReferenceCommand(),
		newDemoCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// bindFlags binds the flags of the executing command onto config keys so that
// explicitly set flags override file and environment values.
func (a *app) bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (a *app) validator() (*donation.Validator, error) {
	mode, err := donation.ParseAssociationMode(a.cfg.Association)
	if err != nil {
		return nil, err
	}
	return donation.New(donation.WithAssociationMode(mode)), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "formaudit %s\n", Version)
			return err
		},
	}
}
