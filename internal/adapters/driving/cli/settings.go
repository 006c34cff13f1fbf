package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage engine settings",
	Long: `View and change the engine settings stored in ~/.ireum/config.toml.

Keys:
  engine.stroke_mode       original or dictionary
  search.include_neutral   also admit plain-luck pillar numbers in searches
  search.limit             default number of suggestions (1-500)
  batch.parallelism        concurrent evaluations in a batch
  data.dictionary          character dictionary file used instead of the database
  data.meanings            stroke-meaning file used instead of the database`,
	Annotations: map[string]string{wiringKey: wireSettings},
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current settings",
	Annotations: map[string]string{wiringKey: wireSettings},
	RunE:        runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Change one setting",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{wiringKey: wireSettings},
	RunE:        runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Engine]")
	cmd.Printf("  Stroke mode: %s\n", settings.StrokeMode.Description())
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Include neutral numbers: %t\n", settings.IncludeNeutral)
	cmd.Printf("  Limit: %d\n", settings.SearchLimit)
	cmd.Println()

	cmd.Println("[Batch]")
	cmd.Printf("  Parallelism: %d\n", settings.BatchParallelism)
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Dictionary: %s\n", orDefault(settings.DictionaryPath, "(database)"))
	cmd.Printf("  Meanings: %s\n", orDefault(settings.MeaningsPath, "(database)"))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
