// Package cmd implements the command-line interface for dynstack.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dynstack-cli/dynstack/color"
	"github.com/dynstack-cli/dynstack/constant"
	"github.com/dynstack-cli/dynstack/icon"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/log"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/dynstack-cli/dynstack/tui"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/dynstack-cli/dynstack/version"
	"github.com/dynstack-cli/dynstack/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("suggestions", "R", true, "Suggest previously pushed payloads while typing")
	lo.Must0(viper.BindPFlag(key.RecallSuggestions, rootCmd.PersistentFlags().Lookup("suggestions")))

	rootCmd.Flags().StringP("snapshot", "s", "", "Restore the named snapshot into the workbench on startup")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("snapshot", completionSnapshotNames))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completionSnapshotNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, err := snapshot.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// snapshotFlag converts the "snapshot" flag of a command into an optional name.
func snapshotFlag(cmd *cobra.Command) mo.Option[string] {
	name := lo.Must(cmd.Flags().GetString("snapshot"))
	if name == "" {
		return mo.None[string]()
	}
	return mo.Some(name)
}

// rootCmd defines the entry point for the dynstack application.
var rootCmd = &cobra.Command{
	Use:   constant.Dynstack,
	Short: "A dynamic stack workbench for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A dynamic stack workbench for the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Snapshot: snapshotFlag(cmd),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
