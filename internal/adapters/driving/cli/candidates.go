package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

var candidatesJSON bool

var candidatesCmd = &cobra.Command{
	Use:   "candidates <surname-strokes | pronunciation/hanja...>",
	Short: "List auspicious given-name stroke pairs for a surname",
	Long: `List the given-name stroke counts that make all four pillars auspicious.

The surname is given either as its total stroke count or as dictionary
characters. A second stroke of 0 means a single-character given name.

Examples:
  ireum candidates 8
  ireum candidates 김/金`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCandidates,
}

func init() {
	candidatesCmd.Flags().BoolVar(&candidatesJSON, "json", false, "output pairs as JSON")
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	if candidateService == nil {
		return errNotConfigured("candidate")
	}

	total, err := surnameStrokes(cmd, args)
	if err != nil {
		return err
	}

	pairs, err := candidateService.StrokePairs(cmd.Context(), total)
	if err != nil {
		return fmt.Errorf("stroke pairs failed: %w", err)
	}

	if candidatesJSON {
		return printJSON(cmd, pairs)
	}

	if len(pairs) == 0 {
		cmd.Println("No auspicious stroke pairs found.")
		return nil
	}

	cmd.Println(ui.Title.Render(fmt.Sprintf("Surname strokes %d: %d pairs", total, len(pairs))))
	var single []string
	byFirst := make(map[int][]string)
	var firsts []int
	for _, p := range pairs {
		if p.Second == 0 {
			single = append(single, strconv.Itoa(p.First))
			continue
		}
		if _, ok := byFirst[p.First]; !ok {
			firsts = append(firsts, p.First)
		}
		byFirst[p.First] = append(byFirst[p.First], strconv.Itoa(p.Second))
	}
	for _, f := range firsts {
		cmd.Printf("  %2d + %s\n", f, strings.Join(byFirst[f], ", "))
	}
	if len(single) > 0 {
		cmd.Printf("  single: %s\n", strings.Join(single, ", "))
	}
	return nil
}

// surnameStrokes reads a stroke total, or sums the strokes of dictionary
// characters in the configured stroke mode.
func surnameStrokes(cmd *cobra.Command, args []string) (int, error) {
	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			return n, nil
		}
	}
	if characterStore == nil {
		return 0, domain.ErrDictionaryUnavailable
	}

	mode := domain.StrokeModeOriginal
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			mode = settings.StrokeMode
		}
	}

	total := 0
	for _, a := range args {
		b := domain.ParseNameBlock(a)
		if b.IsWildcard() {
			return 0, fmt.Errorf("%w: surname %q must be pronunciation/hanja", domain.ErrInvalidInput, a)
		}
		rec, err := characterStore.Get(cmd.Context(), b.Key())
		if err != nil {
			return 0, fmt.Errorf("surname %s: %w", b.Key(), err)
		}
		total += rec.Strokes(mode)
	}
	return total, nil
}
