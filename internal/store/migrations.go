package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recipes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	thumbnail  TEXT NOT NULL DEFAULT '',
	image      TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL CHECK(category IN ('breakfast', 'lunch', 'dinner')),
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
	recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	text      TEXT NOT NULL,
	PRIMARY KEY (recipe_id, position)
);

CREATE TABLE IF NOT EXISTS recipe_directions (
	recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	text      TEXT NOT NULL,
	PRIMARY KEY (recipe_id, position)
);

CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category);
CREATE INDEX IF NOT EXISTS idx_recipes_sort_order ON recipes(sort_order);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
