package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"muxgen/internal/driver"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [flags] topology.mux.toml",
	Short: "Write a validated topology model as a msgpack snapshot",
	Long: `Snapshot validates a topology file and serializes the model for
downstream tools that want the structured form rather than the emitted text.
Invalid topologies are rejected; a snapshot always holds a valid model.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringP("output", "o", "", "snapshot path (default: input with .snap extension)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	path := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if output == "" {
		output = strings.TrimSuffix(path, driver.TopologySuffix) + ".snap"
	}

	res := validateFile(path, maxDiagnostics(cmd))
	reportDiagnostics(cmd, res)
	if res.Bag.HasErrors() {
		return fmt.Errorf("snapshot refused, topology is invalid: %s", path)
	}

	if err := driver.WriteSnapshot(output, res.Model); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	}
	return nil
}
