// Package cli wires the merged argument schema into the configure
// command and orchestrates resolution and persistence of the two
// configuration artifacts.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wohlbier/taucmdr/internal/confmodel"
	"github.com/wohlbier/taucmdr/internal/domain"
	"github.com/wohlbier/taucmdr/internal/schema"
	"github.com/wohlbier/taucmdr/internal/synthesis"
	"github.com/wohlbier/taucmdr/internal/version"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitPrereq  = 3
)

// reservedNames are option names owned by the configure command itself.
// They are excluded from every provider so a module growing an option
// with one of these names cannot collide with the top-level parser.
var reservedNames = []string{
	"prefix", "compile", "optimize",
	"build-config", "defaults-config",
	"verbose", "help", "version",
}

type configureOptions struct {
	prefix       string
	compile      string
	optimize     int
	buildPath    string
	defaultsPath string
	verbose      bool
}

// exitCode is set by the command handler to control the process exit code.
var exitCode = ExitSuccess

// Run builds and executes the configure command, returning an exit code.
func Run() int {
	exitCode = ExitSuccess
	cmd, err := NewConfigureCommand()
	if err != nil {
		log.Error("invalid argument schema", "err", err)
		return ExitFailure
	}
	if err := cmd.Execute(); err != nil {
		// Cobra already printed the parse error.
		return ExitUsage
	}
	return exitCode
}

// NewConfigureCommand merges the create-command schemas and builds the
// configure command carrying the unified flag set. It fails if two
// providers define the same non-excluded option name.
func NewConfigureCommand() (*cobra.Command, error) {
	merger := schema.NewMerger().Add(domain.Providers()...)
	for _, p := range domain.Providers() {
		merger.Exclude(p.Title(), reservedNames...)
	}
	merged, err := merger.Merge()
	if err != nil {
		return nil, err
	}

	opts := &configureOptions{}
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the taucmdr installation",
		Long: "Configure writes the build-time and runtime-default configuration\n" +
			"files consumed by the install sequence. Runtime defaults mirror the\n" +
			"options of the target, application, and measurement create commands.",
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runConfigure(opts, schema.Collect(cmd.Flags())); err != nil {
				log.Error("configuration failed", "err", err)
				exitCode = ExitFailure
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.prefix, "prefix", version.DefaultPrefix(), "installation prefix")
	fs.StringVar(&opts.compile, "compile", "true", "compile bytecode during installation (true/false, yes/no, 1/0)")
	fs.IntVar(&opts.optimize, "optimize", 1, "bytecode optimization level")
	fs.StringVar(&opts.buildPath, "build-config", "", "build-config output path (default: <prefix>/"+version.BuildConfigName+")")
	fs.StringVar(&opts.defaultsPath, "defaults-config", "", "defaults-config output path (default: <prefix>/"+version.DefaultsConfigName+")")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	if err := merged.AddFlags(fs); err != nil {
		return nil, err
	}
	fs.SortFlags = false
	cmd.SetUsageFunc(groupedUsage)

	return cmd, nil
}

// runConfigure is the synthesis pipeline: resolve defaults against parsed
// values, derive the installation layout, and persist both artifacts.
func runConfigure(opts *configureOptions, vals schema.Values) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("parsed values", "count", len(vals))

	compile, err := synthesis.ParseToggle(opts.compile)
	if err != nil {
		return fmt.Errorf("--compile: %w", err)
	}

	defaults := domain.DefaultConfig()
	defaults.SetBanner(confmodel.GeneratedBanner(
		"Runtime default values for target, application, and measurement creation.",
		version.Version)...)
	synthesis.Resolve(vals, defaults)

	build := confmodel.New()
	build.SetBanner(confmodel.GeneratedBanner(
		"Build and installation mechanics for this taucmdr installation.",
		version.Version)...)
	synthesis.ApplyBuild(build, domain.ExtractCompilers(vals))
	install := synthesis.DeriveInstall(opts.prefix, compile, int64(opts.optimize))
	synthesis.ApplyInstall(build, install)

	buildPath := opts.buildPath
	if buildPath == "" {
		buildPath = version.ConfigPath(version.BuildConfigName, install.Data)
	}
	defaultsPath := opts.defaultsPath
	if defaultsPath == "" {
		defaultsPath = version.ConfigPath(version.DefaultsConfigName, install.Data)
	}

	if err := build.Save(buildPath); err != nil {
		return err
	}
	log.Info("wrote build configuration", "path", buildPath)

	if err := defaults.Save(defaultsPath); err != nil {
		return err
	}
	log.Info("wrote runtime defaults", "path", defaultsPath)

	return nil
}

// groupedUsage renders flag help grouped by the owning provider's title,
// with the configure command's own flags first and provider groups in
// registration order.
func groupedUsage(cmd *cobra.Command) error {
	w := cmd.OutOrStderr()
	fmt.Fprintf(w, "Usage:\n  %s [flags]\n", cmd.UseLine())

	groups := make(map[string]*pflag.FlagSet)
	order := []string{""}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		title := schema.GroupOf(f)
		fs, ok := groups[title]
		if !ok {
			fs = pflag.NewFlagSet(title, pflag.ContinueOnError)
			fs.SortFlags = false
			groups[title] = fs
			if title != "" {
				order = append(order, title)
			}
		}
		fs.AddFlag(f)
	})

	for _, title := range order {
		fs, ok := groups[title]
		if !ok {
			continue
		}
		heading := "Flags:"
		if title != "" {
			heading = fmt.Sprintf("%s arguments:", strings.ToUpper(title[:1])+title[1:])
		}
		fmt.Fprintf(w, "\n%s\n%s", heading, fs.FlagUsages())
	}
	return nil
}
