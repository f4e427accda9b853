package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/save-survey/config"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := Open(config.Config{DBUrl: path})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insert(t *testing.T, db *sql.DB, answer string) (id int64) {
	t.Helper()

	err := db.QueryRowContext(context.Background(), `
		INSERT INTO survey_responses (timestamp, interested, players, duration, puzzle_percentage, price)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		answer, answer, answer, answer, answer, answer,
	).Scan(&id)
	require.NoError(t, err)
	return
}

func TestOpen_CreatesTable(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "survey.db"))

	before := time.Now().UTC().Add(-2 * time.Second)
	id := insert(t, db, "yes")
	assert.Equal(t, int64(1), id)

	var createdAt time.Time
	require.NoError(t, db.QueryRow(`SELECT created_at FROM survey_responses WHERE id = ?`, id).Scan(&createdAt))
	assert.True(t, createdAt.After(before), "created_at %v set by the store", createdAt)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")

	db := openTestDB(t, path)
	insert(t, db, "first")
	require.NoError(t, db.Close())

	db = openTestDB(t, path)
	id := insert(t, db, "second")
	assert.Equal(t, int64(2), id, "rows survive a reopen")
}

func TestOpen_AdoptsExistingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")

	raw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = raw.Exec(`
		CREATE TABLE survey_responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			interested TEXT NOT NULL,
			players TEXT NOT NULL,
			duration TEXT NOT NULL,
			puzzle_percentage TEXT NOT NULL,
			price TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO survey_responses (timestamp, interested, players, duration, puzzle_percentage, price)
		VALUES ('t', 'yes', '2', '30', '50', '20');`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db := openTestDB(t, path)
	assert.Equal(t, int64(2), insert(t, db, "next"))
}

func TestOpen_IdsAreNeverReused(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "survey.db"))

	insert(t, db, "a")
	last := insert(t, db, "b")
	_, err := db.Exec(`DELETE FROM survey_responses WHERE id = ?`, last)
	require.NoError(t, err)

	assert.Greater(t, insert(t, db, "c"), last)
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(config.Config{DBUrl: filepath.Join(t.TempDir(), "missing", "survey.db")})
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file:survey.db?"+dsnOptions, dsn("survey.db"))
	assert.Equal(t, "file:survey.db?cache=shared&"+dsnOptions, dsn("file:survey.db?cache=shared"))
}
