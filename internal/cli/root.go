package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/freedance-video/workscheck/internal/branding"
	"github.com/freedance-video/workscheck/internal/config"
	"github.com/freedance-video/workscheck/internal/validate"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDir     string
	flagConfig  string
	flagColor   string
	flagVerbose bool
)

// errChecksFailed is returned when a check failed. The report has already
// been printed, so main only sets the exit code.
var errChecksFailed = errors.New("checks failed")

// IsChecksFailed reports whether err means a check failed, as opposed to a
// usage or configuration error.
func IsChecksFailed(err error) bool {
	return errors.Is(err, errChecksFailed)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", "", "Working directory containing works.json and images/ (default \".\")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default <dir>/"+branding.ConfigFile()+")")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", config.ColorAuto, "Colorize output: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	addImageFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks works.json for missing fields and missing local image
files, then lists the images directory. It exits with status 1 when any
check fails, so it can gate a deploy.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if !validate.Run(cmd.OutOrStdout(), s) {
			return errChecksFailed
		}
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// addImageFlags registers the flags that shape the images listing.
func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("table", false, "Render the images listing as a table")
	cmd.Flags().Bool("dimensions", false, "Decode image headers and show dimensions")
}

// loadSettings resolves settings, applying only the flags the user set.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	overrides := map[string]interface{}{}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		overrides[config.KeyColor] = flagColor
	}
	for _, name := range []string{config.KeyTable, config.KeyDimensions} {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		v, err := cmd.Flags().GetBool(name)
		if err != nil {
			return config.Settings{}, err
		}
		overrides[name] = v
	}

	s, err := config.Load(config.LoadOptions{
		Dir:        flagDir,
		ConfigFile: flagConfig,
		Overrides:  overrides,
	})
	if err != nil {
		return config.Settings{}, err
	}
	slog.Debug("settings resolved",
		"dir", s.Dir,
		"manifest", s.ManifestPath(),
		"images", s.ImagesPath(),
		"config_file", s.ConfigFile,
	)
	return s, nil
}
