package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

var (
	suggestSurnameLength int
	suggestChart         string
	suggestLimit         int
	suggestMinScore      int
	suggestSoundHarmony  bool
	suggestJSON          bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <surname> <given-pattern...>",
	Short: "Suggest given names from the dictionary",
	Long: `Search the character dictionary for given names whose pillars are all
auspicious, then rank them by total score.

Use _ for an unknown pronunciation or hanja in the given-name pattern.

Examples:
  ireum suggest 김/金 민/_ _/_
  ireum suggest 김/金 _/_ _/_ --chart "甲子 丙寅 戊辰" --limit 10
  ireum suggest 김/金 _/珉 _ --sound-harmony --min-score 80`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestSurnameLength, "surname-length", "s", 1, "number of surname characters (1 or 2)")
	suggestCmd.Flags().StringVarP(&suggestChart, "chart", "c", "", "birth chart as six or eight stem and branch characters")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum number of suggestions (default from settings)")
	suggestCmd.Flags().IntVar(&suggestMinScore, "min-score", 0, "drop names scoring below this total")
	suggestCmd.Flags().BoolVar(&suggestSoundHarmony, "sound-harmony", false, "keep only names whose pronunciation elements harmonise")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if candidateService == nil {
		return errNotConfigured("candidate")
	}
	if suggestSurnameLength < domain.MinSurnameLength || suggestSurnameLength >= len(args) {
		return domain.NewInvalidInputError(suggestSurnameLength, len(args)-suggestSurnameLength,
			"surname length must leave at least one given-name character")
	}

	chart, err := parseChartFlag(suggestChart)
	if err != nil {
		return err
	}

	blocks := make([]domain.NameBlock, len(args))
	for i, a := range args {
		blocks[i] = domain.ParseNameBlock(a)
	}

	suggestions, err := candidateService.Suggest(cmd.Context(), domain.SuggestRequest{
		Surname:             blocks[:suggestSurnameLength],
		Given:               blocks[suggestSurnameLength:],
		Chart:               chart,
		Limit:               suggestLimit,
		MinScore:            suggestMinScore,
		RequireSoundHarmony: suggestSoundHarmony,
	})
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return printJSON(cmd, suggestions)
	}

	if len(suggestions) == 0 {
		cmd.Println("No names found.")
		return nil
	}

	for i, sg := range suggestions {
		cmd.Printf("  [%d] %s  %3d  %s\n", i+1, ui.Title.Render(sg.Name.String()),
			sg.Evaluation.Total, pillarSummary(sg.Evaluation))
	}
	return nil
}
