package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"muxgen/internal/diagfmt"
	"muxgen/internal/driver"
	"muxgen/internal/emit"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] topology.mux.toml",
	Short: "Generate typed constant tables from a topology file",
	Long: `Generate validates a topology description and emits the enumerated
constant blocks plus the external alias table. The argument may also be a
directory, in which case every *.mux.toml below it is processed.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file (single input) or directory; stdout when empty")
	generateCmd.Flags().Int("jobs", 0, "parallel jobs in directory mode (0 = GOMAXPROCS)")
	generateCmd.Flags().Bool("include-unknown-sentinel", false, "append an UNKNOWN sentinel constant to every domain")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withUnknown, err := cmd.Flags().GetBool("include-unknown-sentinel")
	if err != nil {
		return fmt.Errorf("failed to get include-unknown-sentinel flag: %w", err)
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Emit:           emit.Options{IncludeUnknownSentinel: withUnknown},
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if info.IsDir() {
		return generateDir(cmd, path, output, opts, jobs)
	}
	return generateFile(cmd, path, output, opts)
}

func generateFile(cmd *cobra.Command, path, output string, opts driver.Options) error {
	res, err := driver.Generate(path, opts)
	reportDiagnostics(cmd, res)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(res.Output)
		return err
	}
	if err := driver.WriteOutput(output, res.Output); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

func generateDir(cmd *cobra.Command, dir, output string, opts driver.Options, jobs int) error {
	results, err := driver.GenerateDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no %s files under %s", driver.TopologySuffix, dir)
	}

	failed := 0
	for _, res := range results {
		reportDiagnostics(cmd, res)
		if res.Bag.HasErrors() {
			failed++
			continue
		}
		dest := outputPathFor(res.Path, output)
		if err := driver.WriteOutput(dest, res.Output); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d topology file(s) failed", failed, len(results))
	}
	return nil
}

// outputPathFor maps a topology path to its generated-file destination:
// pads.mux.toml -> <outDir>/pads.h (next to the input when outDir is empty).
func outputPathFor(path, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), driver.TopologySuffix) + ".h"
	if outDir == "" {
		return filepath.Join(filepath.Dir(path), base)
	}
	return filepath.Join(outDir, base)
}

func maxDiagnostics(cmd *cobra.Command) int {
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return maxDiag
}

func reportDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if res == nil || res.Bag == nil || res.Bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !res.Bag.HasErrors() {
		return
	}
	res.Bag.Sort()
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	fmt.Fprintf(os.Stderr, "%s:\n", res.Path)
	diagfmt.Pretty(os.Stderr, res.Bag, opts)
	diagfmt.Summary(os.Stderr, res.Bag, opts)
}
