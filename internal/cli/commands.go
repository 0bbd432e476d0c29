package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sketchlink/internal/version"
	"github.com/arthur-debert/sketchlink/pkg/config"
	"github.com/arthur-debert/sketchlink/pkg/display"
	"github.com/arthur-debert/sketchlink/pkg/errors"
	"github.com/arthur-debert/sketchlink/pkg/filesystem"
	"github.com/arthur-debert/sketchlink/pkg/linker"
	"github.com/arthur-debert/sketchlink/pkg/logging"
	"github.com/arthur-debert/sketchlink/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are shared by every command
type globalOptions struct {
	verbosity  int
	root       string
	configFile string
}

// linkOptions are the root command's own flags
type linkOptions struct {
	dryRun      bool
	format      string
	relative    bool
	brokenLinks string
}

// NewRootCmd creates and returns the root command. Running it with no
// subcommand performs the link run.
func NewRootCmd() *cobra.Command {
	var (
		global globalOptions
		opts   linkOptions
	)

	rootCmd := &cobra.Command{
		Use:     "sketchlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, global, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&global.root, "root", "r", "", "Project root (default $SKETCHLINK_ROOT or the current directory)")
	rootCmd.PersistentFlags().StringVarP(&global.configFile, "config", "c", "", "Config file (default <root>/.sketchlink.toml)")

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview changes without creating links")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "auto", "Output format: auto, term, text, json, yaml")
	rootCmd.Flags().BoolVar(&opts.relative, "relative", false, "Create links relative to the sketch directory")
	rootCmd.Flags().StringVar(&opts.brokenLinks, "broken-links", "", "Dangling links at a resource path: keep or replace")

	initTemplateFormatting(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd(&global))

	return rootCmd
}

// loadConfig resolves the root and loads the layered configuration
func loadConfig(global globalOptions, overrides map[string]interface{}) (string, *config.Config, error) {
	root, err := paths.ResolveRoot(global.root)
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.Load(config.LoadOptions{
		Root:       root,
		ConfigFile: global.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

func runLink(cmd *cobra.Command, global globalOptions, opts linkOptions) error {
	logger := logging.GetLogger("cmd.link")

	format, err := display.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("relative") {
		overrides["link.relative"] = opts.relative
	}
	if cmd.Flags().Changed("broken-links") {
		overrides["link.broken_links"] = opts.brokenLinks
	}

	root, cfg, err := loadConfig(global, overrides)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer, err := display.NewRenderer(resolveFormat(format, out), out)
	if err != nil {
		return err
	}

	logger.Info().
		Str("root", root).
		Bool("dryRun", opts.dryRun).
		Msg("Starting link run")

	l := linker.New(filesystem.NewOS(), renderer)
	result, err := l.Run(linker.OptionsFromConfig(root, cfg, opts.dryRun))
	if err != nil {
		logger.Error().
			Str("code", string(errors.GetErrorCode(err))).
			Int("created", result.Summary.Created).
			Msg("Link run aborted, links created so far are kept")
		return err
	}

	logger.Info().
		Int("markers", result.Summary.Markers).
		Int("created", result.Summary.Created).
		Int("existing", result.Summary.Existing).
		Msg("Link run completed")

	return renderer.Finish(result)
}

// resolveFormat only auto-detects when writing to a real file
func resolveFormat(format display.Format, out io.Writer) display.Format {
	if format != display.FormatAuto {
		return format
	}
	if f, ok := out.(*os.File); ok {
		return display.Resolve(format, f)
	}
	return display.FormatText
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sketchlink version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd(global *globalOptions) *cobra.Command {
	var (
		write    bool
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadConfig(*global, nil)
			if err != nil {
				return err
			}
			if defaults {
				cfg = config.Default()
			}

			content, err := config.Generate(cfg)
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			target := filepath.Join(root, config.RootConfigFiles[0])
			if _, err := os.Lstat(target); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, target)
				return nil
			}
			if err := os.WriteFile(target, content, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write .sketchlink.toml to the root instead of stdout")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Ignore local settings and print the built-in defaults")

	return cmd
}
