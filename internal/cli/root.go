// Package cli is the intervalfind command tree
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"intervalparser/internal/core/settings"
	"intervalparser/internal/platform/config"
	perr "intervalparser/internal/platform/errors"
	"intervalparser/internal/platform/logger"
	pstrings "intervalparser/internal/platform/strings"

	"github.com/spf13/cobra"
)

// EnvPrefix namespaces the settings environment variables
const EnvPrefix = "INTERVAL_"

// app carries state shared by the subcommands once the root has run its setup
type app struct {
	settingsPath string
	verbose      bool

	settings settings.Settings
	log      logger.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	root := &cobra.Command{
		Use:               "intervalfind",
		Short:             "Find time intervals such as 9w8d7h or \"in 5 minutes\" in text",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "YAML settings file (default: "+EnvPrefix+"* environment)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(
		a.findCmd(),
		a.parseCmd(),
		a.normalizeCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the process exit status
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
	}
	return perr.ExitCode(err)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "intervalfind"
	}
	if a.verbose {
		opts.Level = "debug"
	}
	opts.Writer = cmd.ErrOrStderr()
	logger.Init(opts)
	a.log = *logger.Named(cmd.Name())

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	a.settings = s
	a.log.Debug().
		Str("leading_separator", s.LeadingSeparator).
		Str("separation_type", string(s.SeparationType)).
		Msg("settings loaded")
	return nil
}

func (a *app) loadSettings() (settings.Settings, error) {
	if a.settingsPath == "" {
		return settings.FromEnv(config.New().Prefix(EnvPrefix))
	}
	f, err := os.Open(a.settingsPath)
	if err != nil {
		return settings.Settings{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open settings %s", a.settingsPath)
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.log.Error().Err(err).Msg("failed to close settings file")
		}
	}()
	return settings.Load(f)
}

// inputText joins args with single spaces, or reads stdin when there are none
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read stdin")
	}
	return pstrings.TrimRight(string(b)), nil
}
