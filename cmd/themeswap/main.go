package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/themeswap"
	"github.com/jsvensson/themeswap/internal/config"
	"github.com/jsvensson/themeswap/internal/engine"
	"github.com/jsvensson/themeswap/internal/format"
	"github.com/jsvensson/themeswap/internal/preview"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "dev" // Injected at build time via ldflags

var errNeedsFormatting = errors.New("some files are not formatted")

type convertOptions struct {
	name       string
	appearance string
	author     string
	outFile    string // empty writes to stdout
}

type importOptions struct {
	manifest string
	outDir   string
	themes   []string
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:     "themeswap",
		Short:   "Import VS Code color themes as refinement themes",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (can be repeated)")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return rootCmd
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a single VS Code theme",
		Long: "Convert a single VS Code theme into a one-theme family document. " +
			"The name and appearance default to the theme's own name and type.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "theme name (default: the theme's name)")
	cmd.Flags().StringVar(&opts.appearance, "appearance", "", "light or dark (default: from the theme's type)")
	cmd.Flags().StringVar(&opts.author, "author", "", "family author")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import every theme of a family manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.manifest, "manifest", "family.hcl", "path to family manifest")
	cmd.Flags().StringVar(&opts.outDir, "out", "output", "output directory")
	cmd.Flags().StringArrayVar(&opts.themes, "theme", nil, "import only specific themes (can be repeated)")
	return cmd
}

func newFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format family manifests",
		Long:  "Format one or more family manifests in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, check)
		},
	}

	cmd.Flags().BoolVarP(&check, "check", "c", false, "check if files are formatted (do not write changes)")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var appearance string

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Print color swatches of a converted theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ut, err := themeswap.ConvertFile(args[0], themeswap.Meta{Appearance: appearance})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), preview.Render(ut))
			return nil
		},
	}

	cmd.Flags().StringVar(&appearance, "appearance", "", "light or dark (default: from the theme's type)")
	return cmd
}

func runConvert(cmd *cobra.Command, path string, opts *convertOptions) error {
	family, err := themeswap.ConvertFamily(path, themeswap.Meta{
		Name:       opts.name,
		Author:     opts.author,
		Appearance: opts.appearance,
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(family, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	data = append(data, '\n')

	if opts.outFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.outFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.outFile, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.outFile)
	return nil
}

func runImport(cmd *cobra.Command, opts *importOptions) error {
	family, err := config.Load(opts.manifest)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	e := &engine.Engine{
		OutputDir: opts.outDir,
		Themes:    opts.themes,
	}

	path, err := e.Run(family)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runFmt(cmd *cobra.Command, args []string, check bool) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		changed, err := format.File(path, !check)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			hasErrors = true
			continue
		}
		if changed {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			needsFormatting = true
		}
	}

	if hasErrors {
		return fmt.Errorf("formatting failed")
	}
	if check && needsFormatting {
		return errNeedsFormatting
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
