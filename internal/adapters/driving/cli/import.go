package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/dictionary"
	"github.com/custodia-labs/ireum-cli/internal/logger"
)

var (
	importCharacters string
	importMeanings   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import dictionary files into the database",
	Long: `Import a character dictionary and/or a stroke-meaning table into the
dictionary database. Existing entries with the same key are replaced.

Files are JSON or YAML, chosen by extension.

Examples:
  ireum import --characters hanja.json
  ireum import --meanings meanings.yaml --data-dir ./data`,
	Annotations: map[string]string{wiringKey: wireNone},
	RunE:        runImport,
}

func init() {
	importCmd.Flags().StringVar(&importCharacters, "characters", "", "character dictionary file")
	importCmd.Flags().StringVar(&importMeanings, "meanings", "", "stroke-meaning file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importCharacters == "" && importMeanings == "" {
		return errors.New("nothing to import: pass --characters and/or --meanings")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	ctx := cmd.Context()

	if importCharacters != "" {
		done := logger.Timed("Import characters")
		records, err := dictionary.LoadCharacters(importCharacters)
		if err != nil {
			return err
		}
		if err := s.CharacterStore().Save(ctx, records...); err != nil {
			return fmt.Errorf("save characters: %w", err)
		}
		done()
		cmd.Printf("Imported %d characters\n", len(records))
	}

	if importMeanings != "" {
		meanings, err := dictionary.LoadMeanings(importMeanings)
		if err != nil {
			return err
		}
		if err := s.StrokeMeaningStore().Save(ctx, meanings...); err != nil {
			return fmt.Errorf("save meanings: %w", err)
		}
		cmd.Printf("Imported %d stroke meanings\n", len(meanings))
	}

	total, err := s.CharacterStore().Count(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Dictionary %s now holds %d characters\n", s.Path(), total)
	return nil
}
