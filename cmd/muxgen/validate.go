package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"muxgen/internal/alias"
	"muxgen/internal/diag"
	"muxgen/internal/driver"
	"muxgen/internal/namer"
	"muxgen/internal/topology"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] topology.mux.toml",
	Short: "Validate a topology file without emitting output",
	Long: `Validate runs topology construction, symbol naming, and alias
resolution and reports every finding. Exit status is non-zero when any
error-severity diagnostic is produced, so CI can gate on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	res := validateFile(path, maxDiagnostics(cmd))
	reportDiagnostics(cmd, res)
	if res.Bag.HasErrors() {
		return fmt.Errorf("validation failed: %s", path)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d domain(s))\n", path, res.Model.Len())
	}
	return nil
}

// validateFile runs every checking phase and collects all findings, unlike
// generation which stops at the first failing phase. A validate run should
// show naming and alias problems even when the structure is also broken.
func validateFile(path string, maxDiag int) *driver.Result {
	res := &driver.Result{Path: path, Bag: diag.NewBag(maxDiag)}

	model, _, err := topology.Load(path)
	if err != nil {
		res.Bag.Add(diag.NewError(diag.IODecodeError, "",
			"failed to load topology: "+err.Error()))
		return res
	}
	res.Model = model

	_ = topology.Validate(model, res.Bag)
	_ = namer.Check(model, res.Bag)
	_, _ = alias.Resolve(model, res.Bag)
	return res
}
