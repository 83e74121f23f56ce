// Package cmd implements the command-line interface for dynstack.
package cmd

import (
	"github.com/dynstack-cli/dynstack/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("snapshot", "s", "", "Restore the named snapshot into the workbench on startup")
	lo.Must0(miniCmd.RegisterFlagCompletionFunc("snapshot", completionSnapshotNames))
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Initialize a streamlined, minimalist prompt UI for operating the workbench stack.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Snapshot: snapshotFlag(cmd),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
