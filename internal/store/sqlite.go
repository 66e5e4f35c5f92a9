package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/mealplanner/internal/model"
)

// SQLiteStore implements RecipeStore using a SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ RecipeStore = (*SQLiteStore)(nil)

// recipeRow mirrors a row of the recipes table.
type recipeRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Thumbnail string `db:"thumbnail"`
	Image     string `db:"image"`
	Category  string `db:"category"`
	SortOrder int    `db:"sort_order"`
}

// stepRow mirrors a row of recipe_ingredients or recipe_directions.
type stepRow struct {
	RecipeID string `db:"recipe_id"`
	Position int    `db:"position"`
	Text     string `db:"text"`
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, runs any
// pending schema migrations and seeds the built-in recipes when the
// catalog is empty. ":memory:" gives a catalog holding only the
// built-in recipes.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Every new connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	if err := s.seed(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding recipes: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// seed inserts the built-in recipes into an empty catalog.
func (s *SQLiteStore) seed(ctx context.Context) error {
	n, err := s.CountRecipes(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.UpsertRecipes(ctx, BuiltinRecipes())
}

// CountRecipes returns the number of stored recipes.
func (s *SQLiteStore) CountRecipes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM recipes"); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	return n, nil
}

// UpsertRecipes inserts or replaces a batch of recipes. Ingredients and
// directions of an existing recipe are rewritten in full.
func (s *SQLiteStore) UpsertRecipes(ctx context.Context, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var base int
	if err := tx.GetContext(ctx, &base, "SELECT COALESCE(MAX(sort_order), -1) + 1 FROM recipes"); err != nil {
		return fmt.Errorf("reading sort order: %w", err)
	}

	for i, r := range recipes {
		if !r.Category.Valid() {
			return fmt.Errorf("recipe %s: unknown category %q", r.ID, r.Category)
		}

		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO recipes (id, title, thumbnail, image, category, sort_order)
			VALUES (:id, :title, :thumbnail, :image, :category, :sort_order)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				thumbnail = excluded.thumbnail,
				image = excluded.image,
				category = excluded.category`,
			recipeRow{
				ID:        r.ID,
				Title:     r.Title,
				Thumbnail: r.Thumbnail,
				Image:     r.Image,
				Category:  string(r.Category),
				SortOrder: base + i,
			},
		)
		if err != nil {
			return fmt.Errorf("upserting recipe %s: %w", r.ID, err)
		}

		if err := replaceSteps(ctx, tx, "recipe_ingredients", r.ID, r.Ingredients); err != nil {
			return err
		}
		if err := replaceSteps(ctx, tx, "recipe_directions", r.ID, r.Directions); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recipes: %w", err)
	}
	return nil
}

// replaceSteps rewrites the ordered text rows of one recipe in table.
func replaceSteps(ctx context.Context, tx *sqlx.Tx, table, recipeID string, steps []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("clearing %s for %s: %w", table, recipeID, err)
	}

	stmt, err := tx.PreparexContext(ctx,
		"INSERT INTO "+table+" (recipe_id, position, text) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i, text := range steps {
		if _, err := stmt.ExecContext(ctx, recipeID, i, text); err != nil {
			return fmt.Errorf("inserting %s row for %s: %w", table, recipeID, err)
		}
	}
	return nil
}

// LoadRecipes returns every recipe in catalog order with its ingredients
// and directions attached.
func (s *SQLiteStore) LoadRecipes(ctx context.Context) ([]model.Recipe, error) {
	var rows []recipeRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, title, thumbnail, image, category, sort_order FROM recipes ORDER BY sort_order, id")
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}

	ingredients, err := s.loadSteps(ctx, "recipe_ingredients")
	if err != nil {
		return nil, err
	}
	directions, err := s.loadSteps(ctx, "recipe_directions")
	if err != nil {
		return nil, err
	}

	recipes := make([]model.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, model.Recipe{
			ID:          row.ID,
			Title:       row.Title,
			Thumbnail:   row.Thumbnail,
			Image:       row.Image,
			Category:    model.Category(row.Category),
			Ingredients: ingredients[row.ID],
			Directions:  directions[row.ID],
		})
	}
	return recipes, nil
}

// loadSteps reads an ordered text table grouped by recipe id.
func (s *SQLiteStore) loadSteps(ctx context.Context, table string) (map[string][]string, error) {
	var rows []stepRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT recipe_id, position, text FROM "+table+" ORDER BY recipe_id, position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}

	steps := make(map[string][]string)
	for _, row := range rows {
		steps[row.RecipeID] = append(steps[row.RecipeID], row.Text)
	}
	return steps, nil
}
