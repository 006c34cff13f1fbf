// Package cli implements the ireum command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/dictionary"
	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ireum-cli/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ireum-cli/internal/core/services"
	"github.com/custodia-labs/ireum-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose        bool
	configDir      string
	dataDir        string
	dictionaryPath string
	meaningsPath   string
)

// Services used by the commands. They are wired in the root pre-run unless
// SetServices installed them first.
var (
	evaluationService driving.EvaluationService
	candidateService  driving.CandidateService
	settingsService   driving.SettingsService
	characterStore    driven.CharacterStore

	preconfigured bool
	store         *sqlite.Store
	sources       []string
	ui            = styles.DefaultStyles()
)

// wiringKey annotates commands that need less than the full engine.
const wiringKey = "ireum/wiring"

const (
	wireNone     = "none"
	wireSettings = "settings"
)

var rootCmd = &cobra.Command{
	Use:   "ireum",
	Short: "Korean name numerology",
	Long: `ireum evaluates Korean names by their hanja stroke counts.

A name is scored on its four pillars (won, hyeong, i, jeong) against the
81-number fortune table, on the five-element arrangement of its strokes,
pronunciation and resource elements, and on its yin-yang balance. With a
character dictionary it also searches for high-scoring given names.

Name characters are written as pronunciation/hanja, surname first:
  ireum evaluate 김/金 민/敏 준/俊`,
	SilenceUsage:      true,
	PersistentPreRunE: wire,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print pipeline steps to stderr")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ireum)")
	flags.StringVar(&dataDir, "data-dir", "", "dictionary database directory (default ~/.ireum/data)")
	flags.StringVar(&dictionaryPath, "dictionary", "", "character dictionary file (JSON or YAML) used instead of the database")
	flags.StringVar(&meaningsPath, "meanings", "", "stroke-meaning file (JSON or YAML) used instead of the database")
}

// Services holds pre-built services, bypassing the wiring in the root pre-run.
type Services struct {
	Evaluation driving.EvaluationService
	Candidate  driving.CandidateService
	Settings   driving.SettingsService
	Characters driven.CharacterStore
}

// SetServices installs pre-built services. Passing nil restores wiring.
func SetServices(s *Services) {
	if s == nil {
		evaluationService, candidateService, settingsService, characterStore = nil, nil, nil, nil
		sources = nil
		preconfigured = false
		return
	}
	evaluationService = s.Evaluation
	candidateService = s.Candidate
	settingsService = s.Settings
	characterStore = s.Characters
	preconfigured = true
}

// Execute runs the root command and releases any opened store.
func Execute(ctx context.Context) error {
	defer closeStore()
	return rootCmd.ExecuteContext(ctx)
}

func wire(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if preconfigured {
		return nil
	}

	level := cmd.Annotations[wiringKey]
	if level == wireNone {
		return nil
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)
	if level == wireSettings {
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return wireEngine(cmd.Context(), *settings)
}

func wireEngine(ctx context.Context, settings domain.EngineSettings) error {
	built, paths, err := buildServices(ctx, settings)
	if err != nil {
		return err
	}
	evaluationService = built.Evaluation
	candidateService = built.Candidate
	characterStore = built.Characters
	sources = paths
	return nil
}

// buildServices opens the dictionary sources named by settings and the path
// flags and builds the engine services over them. It also returns the files
// the services were loaded from.
func buildServices(ctx context.Context, settings domain.EngineSettings) (*Services, []string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if dictionaryPath != "" {
		settings.DictionaryPath = dictionaryPath
	}
	if meaningsPath != "" {
		settings.MeaningsPath = meaningsPath
	}

	logger.Section("Dictionary")
	characters, charactersPath, err := openCharacters(ctx, settings.DictionaryPath)
	if err != nil {
		return nil, nil, err
	}
	meanings, meaningsSource, err := openMeanings(settings.MeaningsPath)
	if err != nil {
		return nil, nil, err
	}

	engine, optimizer, err := services.NewEngine(ctx, meanings, settings)
	if err != nil {
		return nil, nil, err
	}

	paths := []string{charactersPath}
	if meaningsSource != charactersPath {
		paths = append(paths, meaningsSource)
	}
	return &Services{
		Evaluation: services.NewEvaluationService(engine, characters, settings.BatchParallelism),
		Candidate:  services.NewCandidateService(engine, optimizer, characters, settings.SearchLimit),
		Characters: characters,
	}, paths, nil
}

func openCharacters(ctx context.Context, path string) (driven.CharacterStore, string, error) {
	if path != "" {
		defer logger.Timed("Load dictionary " + path)()
		records, err := dictionary.LoadCharacters(path)
		if err != nil {
			return nil, "", err
		}
		logger.Debug("Loaded %d characters", len(records))
		return memory.NewCharacterStore(records...), path, nil
	}

	s, err := openStore()
	if err != nil {
		return nil, "", err
	}
	n, err := s.CharacterStore().Count(ctx)
	if err != nil {
		return nil, "", err
	}
	if n == 0 {
		logger.Warn("Dictionary %s is empty; run 'ireum import --characters FILE'", s.Path())
	}
	logger.Debug("Dictionary %s: %d characters", s.Path(), n)
	return s.CharacterStore(), s.Path(), nil
}

func openMeanings(path string) (driven.StrokeMeaningStore, string, error) {
	if path != "" {
		meanings, err := dictionary.LoadMeanings(path)
		if err != nil {
			return nil, "", err
		}
		return memory.NewStrokeMeaningStore(meanings...), path, nil
	}
	s, err := openStore()
	if err != nil {
		return nil, "", err
	}
	return s.StrokeMeaningStore(), s.Path(), nil
}

func openStore() (*sqlite.Store, error) {
	if store != nil {
		return store, nil
	}
	s, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open dictionary database: %w", err)
	}
	store = s
	return s, nil
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("Closing dictionary database: %v", err)
	}
	store = nil
}

// errNotConfigured reports a service the wiring did not provide.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
