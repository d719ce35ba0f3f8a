package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Tag kinds stored in investor_tags.
const (
	tagFocus     = "focus"
	tagIndustry  = "industry"
	tagStage     = "stage"
	tagPortfolio = "portfolio"
)

// Verify interface compliance.
var _ driven.InvestorCatalog = (*Store)(nil)

// Store is an SQLite-backed investor catalog.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns ~/.pitchmatch/investors.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pitchmatch", "investors.db"), nil
}

// NewStore opens (and migrates) the investor database at dbPath.
// If dbPath is empty, DefaultPath is used.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_investors.up.sql" -> 1
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
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		logger.Debug("sqlite: applied migration %s", name)
	}

	return nil
}

// List returns every investor in catalog order.
func (s *Store) List(ctx context.Context) ([]domain.Investor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, firm, role, location, avatar, check_min, check_max, check_label
		FROM investors
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying investors: %w", err)
	}
	defer rows.Close()

	var investors []domain.Investor
	index := make(map[string]int)
	for rows.Next() {
		inv, err := scanInvestor(rows)
		if err != nil {
			return nil, err
		}
		index[inv.ID] = len(investors)
		investors = append(investors, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating investors: %w", err)
	}

	tags, err := s.db.QueryContext(ctx, `
		SELECT investor_id, kind, value FROM investor_tags ORDER BY investor_id, kind, position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer tags.Close()

	for tags.Next() {
		var id, kind, value string
		if err := tags.Scan(&id, &kind, &value); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		if i, ok := index[id]; ok {
			addTag(&investors[i], kind, value)
		}
	}
	if err := tags.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return investors, nil
}

// Get retrieves an investor by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Investor, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, firm, role, location, avatar, check_min, check_max, check_label
		FROM investors
		WHERE id = ?
	`, id)
	inv, err := scanInvestor(row)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, value FROM investor_tags WHERE investor_id = ? ORDER BY kind, position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, value string
		if err := rows.Scan(&kind, &value); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		addTag(&inv, kind, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return &inv, nil
}

// Import replaces the stored catalog with investors.
func (s *Store) Import(ctx context.Context, investors []domain.Investor) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM investor_tags"); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM investors"); err != nil {
		return fmt.Errorf("clearing investors: %w", err)
	}

	for pos, inv := range investors {
		if inv.ID == "" {
			return fmt.Errorf("%w: investor %d has no id", domain.ErrInvalidInput, pos+1)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO investors (id, name, firm, role, location, avatar, check_min, check_max, check_label, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, inv.ID, inv.Name, inv.Firm, inv.Role, inv.Location, inv.Avatar,
			inv.CheckSize.Min, inv.CheckSize.Max, inv.CheckSize.Label, pos)
		if err != nil {
			return fmt.Errorf("inserting investor %s: %w", inv.ID, err)
		}

		for kind, values := range map[string][]string{
			tagFocus:     inv.FocusAreas,
			tagIndustry:  inv.Industries,
			tagStage:     inv.Stages,
			tagPortfolio: inv.Portfolio,
		} {
			for i, v := range values {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO investor_tags (investor_id, kind, value, position) VALUES (?, ?, ?, ?)
				`, inv.ID, kind, v, i)
				if err != nil {
					return fmt.Errorf("inserting %s tag for %s: %w", kind, inv.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	logger.Debug("sqlite: imported %d investors into %s", len(investors), s.path)
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvestor(row rowScanner) (domain.Investor, error) {
	var inv domain.Investor
	err := row.Scan(&inv.ID, &inv.Name, &inv.Firm, &inv.Role, &inv.Location, &inv.Avatar,
		&inv.CheckSize.Min, &inv.CheckSize.Max, &inv.CheckSize.Label)
	if err == sql.ErrNoRows {
		return domain.Investor{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Investor{}, fmt.Errorf("scanning investor: %w", err)
	}
	inv.FocusAreas = []string{}
	inv.Industries = []string{}
	inv.Stages = []string{}
	inv.Portfolio = []string{}
	return inv, nil
}

func addTag(inv *domain.Investor, kind, value string) {
	switch kind {
	case tagFocus:
		inv.FocusAreas = append(inv.FocusAreas, value)
	case tagIndustry:
		inv.Industries = append(inv.Industries, value)
	case tagStage:
		inv.Stages = append(inv.Stages, value)
	case tagPortfolio:
		inv.Portfolio = append(inv.Portfolio, value)
	}
}
