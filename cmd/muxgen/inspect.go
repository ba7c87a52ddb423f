package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"muxgen/internal/topology"
	"muxgen/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] topology.mux.toml",
	Short: "Show a styled summary of a topology file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("domain", "", "show members of one domain instead of the summary")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	domainName, err := cmd.Flags().GetString("domain")
	if err != nil {
		return fmt.Errorf("failed to get domain flag: %w", err)
	}

	model, _, err := topology.Load(path)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	if domainName != "" {
		for i := range model.Domains() {
			d := &model.Domains()[i]
			if d.Name == domainName {
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderMembers(d))
				return nil
			}
		}
		return fmt.Errorf("no domain %q in %s", domainName, path)
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(model))
	return nil
}
