// Package cmd implements the command-line interface for dynstack.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/inline"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("ops", "o", "", "The semicolon-separated op-script to execute")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("load", "l", "", "Seed the workbench from the named snapshot before the first op")
	inlineCmd.Flags().StringP("output", "O", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("ops"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("load", completionSnapshotNames))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution using inline mode.

The op-script is a semicolon-separated sequence of stack operations:
  push [payload] - add the payload on top of the workbench
  pop - remove and print the top payload
  peek - print the top payload without removing it
  size - print the element count
  empty - print whether the workbench has no elements
  render - print the whole workbench, top first
  render-top - print the top payload rendering
  clear - remove every element
  save [name] - persist the workbench as a named snapshot
  load [name] - replace the workbench with a named snapshot

Operations producing a value print it on its own line; with the json flag the
whole run is emitted as a single JSON document instead.`,
	Example: `  dynstack inline -o "push a; push b; render"
  dynstack inline -o "pop; size" -l my-snapshot -j`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err    error
			writer io.Writer
		)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		options := &inline.Options{
			Out:    writer,
			Script: lo.Must(cmd.Flags().GetString("ops")),
			Json:   lo.Must(cmd.Flags().GetBool("json")),
		}

		if name := lo.Must(cmd.Flags().GetString("load")); name != "" {
			options.Load = mo.Some(name)
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
