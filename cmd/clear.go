// Package cmd implements the command-line interface for dynstack.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dynstack-cli/dynstack/icon"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/dynstack-cli/dynstack/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines an application artifact eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"saved snapshots", "snapshots", mo.Some("s"), snapshot.Clear},
	{"recall memory", "recall", mo.Some("r"), func() error { return util.Delete(where.Recall()) }},
	{"logs directory", "logs", mo.Some("l"), func() error { return util.Delete(where.Logs()) }},
	{"cache directory", "cache", mo.Some("c"), func() error { return util.Delete(where.Cache()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("force", "f", false, "clear without asking for confirmation")
}

// clearCmd manages the cleanup of persisted and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear persisted and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		force := doClear("force")

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true

			if !force {
				var confirmed bool
				handleErr(survey.AskOne(&survey.Confirm{
					Message: fmt.Sprintf("Clear %s?", target.name),
					Default: false,
				}, &confirmed))

				if !confirmed {
					continue
				}
			}

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
