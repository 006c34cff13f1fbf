package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/core/domain"
)

var (
	evalSurnameLength int
	evalChart         string
	evalJSON          bool
	evalDetail        bool
	evalBatchFile     string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [pronunciation/hanja...]",
	Short: "Evaluate a name",
	Long: `Evaluate a name by its four pillars, five elements and yin-yang balance.

Characters missing from the dictionary are scored with neutral defaults and
listed in the output.

Examples:
  ireum evaluate 김/金 민/敏 준/俊
  ireum evaluate 김/金 민/敏 준/俊 --chart "甲子 丙寅 戊辰 庚午"
  ireum evaluate --surname-length 2 남/南 궁/宮 민/敏
  ireum evaluate --batch names.txt

A batch file holds one name per line; an optional chart follows a semicolon:
  김/金 민/敏 준/俊 ; 甲子丙寅戊辰`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().IntVarP(&evalSurnameLength, "surname-length", "s", 1, "number of surname characters (1 or 2)")
	evaluateCmd.Flags().StringVarP(&evalChart, "chart", "c", "", "birth chart as six or eight stem and branch characters")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "output the evaluation as JSON")
	evaluateCmd.Flags().BoolVarP(&evalDetail, "detail", "d", false, "show every sub-score")
	evaluateCmd.Flags().StringVar(&evalBatchFile, "batch", "", "evaluate every name in a file (- for stdin)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if evaluationService == nil {
		return errNotConfigured("evaluation")
	}
	if evalBatchFile != "" {
		return runEvaluateBatch(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	name, err := domain.ParseName(args, evalSurnameLength)
	if err != nil {
		return err
	}
	chart, err := parseChartFlag(evalChart)
	if err != nil {
		return err
	}

	ev, err := evaluationService.Evaluate(cmd.Context(), name, chart)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalJSON {
		return printJSON(cmd, ev)
	}
	printEvaluation(cmd, ev, evalDetail)
	return nil
}

func runEvaluateBatch(cmd *cobra.Command) error {
	var r io.Reader
	if evalBatchFile == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(evalBatchFile)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	requests, err := readBatch(r, evalSurnameLength)
	if err != nil {
		return err
	}

	results, err := evaluationService.EvaluateBatch(cmd.Context(), requests)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	if evalJSON {
		type item struct {
			Evaluation *domain.NameEvaluation `json:"evaluation,omitempty"`
			Error      string                 `json:"error,omitempty"`
		}
		items := make([]item, len(results))
		for i, res := range results {
			items[i].Evaluation = res.Evaluation
			if res.Err != nil {
				items[i].Error = res.Err.Error()
			}
		}
		return printJSON(cmd, items)
	}

	for i, res := range results {
		if res.Err != nil {
			cmd.Printf("  [%d] %s  %s\n", i+1, requests[i].Name, ui.Bad.Render(res.Err.Error()))
			continue
		}
		cmd.Printf("  [%d] %s  %3d  %s\n", i+1, res.Evaluation.Name, res.Evaluation.Total,
			pillarSummary(res.Evaluation))
	}
	return nil
}

// readBatch parses one name per line. Blank lines and lines starting with
// # are skipped.
func readBatch(r io.Reader, surnameLength int) ([]domain.EvaluationRequest, error) {
	var requests []domain.EvaluationRequest
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		nameText, chartText, _ := strings.Cut(text, ";")
		name, err := domain.ParseName(strings.Fields(nameText), surnameLength)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		chart, err := parseChartFlag(chartText)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		requests = append(requests, domain.EvaluationRequest{Name: name, Chart: chart})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return requests, nil
}

func parseChartFlag(s string) (domain.BirthChart, error) {
	if strings.TrimSpace(s) == "" {
		return domain.BirthChart{}, nil
	}
	return domain.ParseBirthChart(s)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printEvaluation(cmd *cobra.Command, ev *domain.NameEvaluation, detail bool) {
	cmd.Println(ui.Title.Render(ev.Name.String()) + fmt.Sprintf("  total %d/100", ev.Total))
	cmd.Println()

	cmd.Println(ui.Label.Render("Pillars"))
	for i, f := range ev.PillarFortunes.All() {
		line := fmt.Sprintf("  %-7s %2d  %s", domain.PillarNames[i], f.Number, ui.Fortune(f))
		if f.Title != "" {
			line += "  " + ui.Muted.Render(f.Title)
		}
		cmd.Println(line)
	}
	cmd.Println()

	cmd.Println(ui.Label.Render("Elements"))
	if !ev.Chart.IsZero() {
		cmd.Printf("  chart          %s\n", ui.Elements(ev.BirthChartElements.Arrangement))
	}
	cmd.Printf("  strokes        %s\n", ui.Elements(ev.StrokeElements.Arrangement))
	cmd.Printf("  pronunciation  %s\n", ui.Elements(ev.PronunciationElements.Arrangement))
	cmd.Printf("  pillars        %s\n", ui.Elements(ev.PillarElements.Arrangement))
	cmd.Println()

	c := ev.Scores.Contributions
	cmd.Println(ui.Label.Render("Score"))
	cmd.Printf("  base %d + pillars %d + element balance %d + yin-yang %d = %d\n",
		c.Base, c.Pillar, c.ElementBalance, c.YinYang, ev.Total)

	if detail {
		cmd.Println()
		for _, d := range ev.Scores.Details() {
			cmd.Printf("  %s %-24s %s %3d/%-3d %s\n", ui.Check(d.Detail.Passed), d.Name,
				ui.Bar(d.Detail.Score, d.Detail.MaxScore, 10), d.Detail.Score, d.Detail.MaxScore,
				ui.Muted.Render(d.Detail.Reason))
		}
	}

	if missing := ev.MissingCharacters(); len(missing) > 0 {
		cmd.Println()
		cmd.Println(ui.Bad.Render("Not in dictionary: " + strings.Join(missing, ", ")))
	}
}

func pillarSummary(ev *domain.NameEvaluation) string {
	parts := make([]string, 0, len(domain.PillarNames))
	for i, f := range ev.PillarFortunes.All() {
		parts = append(parts, fmt.Sprintf("%s %d", domain.PillarNames[i], f.Number))
	}
	return strings.Join(parts, ", ")
}
