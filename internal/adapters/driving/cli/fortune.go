package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
)

var fortuneJSON bool

var fortuneCmd = &cobra.Command{
	Use:   "fortune [number...]",
	Short: "Describe pillar numbers of the 81-number table",
	Long: `Describe the fortune, element and yin-yang of pillar numbers.

Without arguments the whole table from 1 to 81 is printed.`,
	RunE: runFortune,
}

func init() {
	fortuneCmd.Flags().BoolVar(&fortuneJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(fortuneCmd)
}

func runFortune(cmd *cobra.Command, args []string) error {
	if evaluationService == nil {
		return errNotConfigured("evaluation")
	}

	numbers := make([]int, 0, domain.MaxStrokeNumber)
	if len(args) == 0 {
		for n := 1; n <= domain.MaxStrokeNumber; n++ {
			numbers = append(numbers, n)
		}
	}
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, a)
		}
		numbers = append(numbers, n)
	}

	details := make([]*driving.FortuneDetails, 0, len(numbers))
	for _, n := range numbers {
		f, err := evaluationService.Fortune(cmd.Context(), n)
		if err != nil {
			return err
		}
		details = append(details, f)
	}

	if fortuneJSON {
		return printJSON(cmd, details)
	}

	for _, f := range details {
		line := fmt.Sprintf("  %2d  %s  %s  %s", f.Number, ui.Fortune(f.PillarFortune),
			ui.Element(f.Element), f.YinYang.Label())
		if f.Title != "" {
			line += "  " + f.Title
		}
		cmd.Println(line)
		if f.Summary != "" && len(details) == 1 {
			cmd.Println("      " + ui.Muted.Render(f.Summary))
		}
	}
	return nil
}
