package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/ireum-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/ireum-cli/internal/core/domain"
	"github.com/custodia-labs/ireum-cli/internal/core/ports/driven"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "dictionary.db"

// Store is a SQLite-based storage that provides access to the dictionary
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ireum/data/dictionary.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ireum", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// WAL lets batch evaluation read while an import writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CharacterStore returns a CharacterStore interface backed by this store.
func (s *Store) CharacterStore() driven.CharacterStore {
	return &characterStore{store: s}
}

// StrokeMeaningStore returns a StrokeMeaningStore interface backed by this store.
func (s *Store) StrokeMeaningStore() driven.StrokeMeaningStore {
	return &strokeMeaningStore{store: s}
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("getting current version: %w", err)
	}
	return version, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	currentVersion, err := s.SchemaVersion(context.Background())
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Character Store ====================

// characterStore implements driven.CharacterStore.
type characterStore struct {
	store *Store
}

var _ driven.CharacterStore = (*characterStore)(nil)

const characterColumns = `pronunciation, hanja, original_strokes, dictionary_strokes,
	sound_element, sound_yin_yang, stroke_yin_yang, resource_element`

// Get retrieves a record by "pronunciation/hanja" key.
func (s *characterStore) Get(ctx context.Context, key string) (*domain.CharacterRecord, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE key = ?`, key)

	rec, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning character: %w", err)
	}
	return rec, nil
}

// ListByPronunciation returns every record with the reading, ordered by hanja.
func (s *characterStore) ListByPronunciation(
	ctx context.Context, pronunciation string,
) ([]domain.CharacterRecord, error) {
	return s.query(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE pronunciation = ? ORDER BY hanja`,
		pronunciation)
}

// List returns every record ordered by key.
func (s *characterStore) List(ctx context.Context) ([]domain.CharacterRecord, error) {
	return s.query(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY key`)
}

func (s *characterStore) query(ctx context.Context, query string, args ...any) ([]domain.CharacterRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	var records []domain.CharacterRecord
	for rows.Next() {
		rec, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Save stores or replaces records in one transaction. Invalid records
// abort the whole batch.
func (s *characterStore) Save(ctx context.Context, records ...domain.CharacterRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO characters (key, `+characterColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			original_strokes = excluded.original_strokes,
			dictionary_strokes = excluded.dictionary_strokes,
			sound_element = excluded.sound_element,
			sound_yin_yang = excluded.sound_yin_yang,
			stroke_yin_yang = excluded.stroke_yin_yang,
			resource_element = excluded.resource_element,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		_, err := stmt.ExecContext(ctx, rec.Key(), rec.Pronunciation, rec.Hanja,
			rec.OriginalStrokes, rec.DictionaryStrokes,
			string(rec.SoundElement), string(rec.SoundYinYang),
			string(rec.StrokeYinYang), string(rec.ResourceElement))
		if err != nil {
			return fmt.Errorf("saving character %s: %w", rec.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *characterStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM characters").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting characters: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (*domain.CharacterRecord, error) {
	var (
		rec                                domain.CharacterRecord
		sound, soundYY, strokeYY, resource string
	)
	if err := row.Scan(&rec.Pronunciation, &rec.Hanja, &rec.OriginalStrokes, &rec.DictionaryStrokes,
		&sound, &soundYY, &strokeYY, &resource); err != nil {
		return nil, err
	}
	rec.SoundElement = domain.Element(sound)
	rec.SoundYinYang = domain.YinYang(soundYY)
	rec.StrokeYinYang = domain.YinYang(strokeYY)
	rec.ResourceElement = domain.Element(resource)
	return &rec, nil
}

// ==================== Stroke Meaning Store ====================

// strokeMeaningStore implements driven.StrokeMeaningStore.
type strokeMeaningStore struct {
	store *Store
}

var _ driven.StrokeMeaningStore = (*strokeMeaningStore)(nil)

// Get retrieves the meaning of n.
func (s *strokeMeaningStore) Get(ctx context.Context, n int) (*domain.StrokeMeaning, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT number, lucky_level, title, summary FROM stroke_meanings WHERE number = ?`, n)

	m, err := scanMeaning(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning stroke meaning: %w", err)
	}
	return m, nil
}

// List returns every meaning ordered by number.
func (s *strokeMeaningStore) List(ctx context.Context) ([]domain.StrokeMeaning, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT number, lucky_level, title, summary FROM stroke_meanings ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying stroke meanings: %w", err)
	}
	defer rows.Close()

	var meanings []domain.StrokeMeaning
	for rows.Next() {
		m, err := scanMeaning(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stroke meaning: %w", err)
		}
		meanings = append(meanings, *m)
	}
	return meanings, rows.Err()
}

// Save stores or replaces meanings in one transaction.
func (s *strokeMeaningStore) Save(ctx context.Context, meanings ...domain.StrokeMeaning) error {
	if len(meanings) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, m := range meanings {
		if err := m.Validate(); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stroke_meanings (number, lucky_level, title, summary)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(number) DO UPDATE SET
				lucky_level = excluded.lucky_level,
				title = excluded.title,
				summary = excluded.summary
		`, m.Number, string(m.LuckyLevel), m.Title, m.Summary)
		if err != nil {
			return fmt.Errorf("saving stroke meaning %d: %w", m.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func scanMeaning(row scanner) (*domain.StrokeMeaning, error) {
	var (
		m     domain.StrokeMeaning
		level string
	)
	if err := row.Scan(&m.Number, &level, &m.Title, &m.Summary); err != nil {
		return nil, err
	}
	m.LuckyLevel = domain.LuckyLevel(level)
	return &m, nil
}
