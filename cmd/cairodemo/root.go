package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/cairo"
	"github.com/gogpu/cairo/backend"
)

// config is the resolved command configuration. Every field can be set by
// flag or by a CAIRODEMO_* environment variable.
type config struct {
	Backend string
	Format  string
	Output  string
	Width   int
	Height  int
	Gzip    bool
	Verbose bool
}

func loadConfig(v *viper.Viper) config {
	return config{
		Backend: v.GetString("backend"),
		Format:  strings.ToLower(v.GetString("format")),
		Output:  v.GetString("output"),
		Width:   v.GetInt("width"),
		Height:  v.GetInt("height"),
		Gzip:    v.GetBool("gzip"),
		Verbose: v.GetBool("verbose"),
	}
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("CAIRODEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// commandConfig reads the configuration of cmd from its flags and the
// environment.
func commandConfig(cmd *cobra.Command) (config, error) {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return config{}, err
	}
	return loadConfig(v), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cairodemo",
		Short: "Render a demo scene with the cairo bindings",
		Long: `cairodemo draws a gradient, a mesh patch and a few rectangles on an
image, PDF, PostScript, SVG or CairoScript surface and writes the result to
a file or to standard output.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("backend", "", "engine to use (libcairo, software; default: best available)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log engine activity to stderr")

	root.AddCommand(newRenderCmd(), newPathCmd(), newBackendsCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Output = outputName(cfg)

			if err := setup(cfg); err != nil {
				return err
			}
			n, err := renderTo(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %dx%d) to %s\n",
				humanize.Bytes(uint64(n)), cfg.Format, cfg.Width, cfg.Height, cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "png", "output format: png, pdf, ps, svg, script")
	cmd.Flags().StringP("output", "o", "", "output file (default: demo.<format>, - for stdout)")
	cmd.Flags().Int("width", 256, "scene width")
	cmd.Flags().Int("height", 256, "scene height")
	cmd.Flags().Bool("gzip", false, "compress vector output with gzip")
	return cmd
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the decoded outline of the demo mesh patch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commandConfig(cmd)
			if err != nil {
				return err
			}
			if err := setup(cfg); err != nil {
				return err
			}
			return printMeshPath(cmd.OutOrStdout())
		},
	}
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			def := cairo.DefaultBackend()
			for _, name := range backend.Available() {
				mark := " "
				if def != nil && def.Name() == name {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			return nil
		},
	}
}

func setup(cfg config) error {
	if cfg.Verbose {
		cairo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if cfg.Backend != "" {
		if err := cairo.SetDefaultBackend(cfg.Backend); err != nil {
			return fmt.Errorf("backend %q: %w", cfg.Backend, err)
		}
	}
	return nil
}

// outputName returns the file the render command writes to.
func outputName(cfg config) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	name := "demo." + cfg.Format
	if cfg.Gzip && cfg.Format != "png" {
		name += ".gz"
	}
	return filepath.Clean(name)
}
