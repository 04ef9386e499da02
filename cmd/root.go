/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sony-level/projspace/internal/config"
	"github.com/sony-level/projspace/internal/project"
	"github.com/sony-level/projspace/internal/scaffold"
	"github.com/sony-level/projspace/internal/ui"
	"github.com/sony-level/projspace/internal/vcs"
)

var (
	// Global flags
	cleanFlag    bool
	verbose      bool
	configPath   string
	templatePath string
)

// rootCmd represents the base command - creates or cleans a project directly
var rootCmd = &cobra.Command{
	Use:   "projspace <name|url>",
	Short: "Scaffold project directories and editor workspace files",
	Long: `projspace creates a project directory under the configured repository
root, initializes a fresh git repository in it (or clones a remote one
when given a URL), and writes a matching .code-workspace file under the
configured workspace root. With --clean it removes both artifacts.

Configuration comes from an INI file with a [core] section holding the
"repository" and "workspace" base directories.

Examples:
  projspace my-tool
  projspace https://github.com/user/repo.git
  projspace --template scaffold.yaml my-tool
  projspace -c my-tool`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

		// Classify before touching the filesystem, so invalid input gets
		// a usage message and nothing else.
		if cleanFlag {
			if !vcs.IsProjectName(identifier) {
				return fmt.Errorf("invalid project name %q: only letters, digits, hyphens and underscores are allowed", identifier)
			}
		} else if vcs.Classify(identifier) == vcs.KindInvalid {
			return fmt.Errorf("invalid project identifier %q: expected a bare name or an http(s)/git URL", identifier)
		}

		// Input is valid; remaining failures are not usage errors.
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		slog.Debug("configuration loaded", "path", cfg.Path, "repository", cfg.Repository, "workspace", cfg.Workspace)

		opts := project.Options{
			Reporter: ui.NewConsoleReporter(os.Stdout),
			Progress: progressWriter(),
		}

		if cleanFlag {
			return project.Clean(cfg, identifier, opts)
		}

		if templatePath != "" {
			tpl, err := scaffold.Load(templatePath)
			if err != nil {
				return err
			}
			opts.Template = tpl
		}

		_, err = project.Create(cmd.Context(), cfg, identifier, opts)
		return err
	},
}

// Execute runs the root command. This is called by main.main().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the process-wide slog handler. Verbose mode drops
// the level to debug; color follows the terminal.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}

// progressWriter returns the clone progress destination.
func progressWriter() io.Writer {
	if verbose {
		return os.Stderr
	}
	return io.Discard
}

func init() {
	rootCmd.Flags().BoolVarP(&cleanFlag, "clean", "c", false, "Remove the project directory and workspace descriptor")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: ./config.ini, then next to the executable)")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "YAML scaffold template for new projects")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
