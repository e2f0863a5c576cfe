package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		external_id VARCHAR(255) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT 'Anonymous',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS credit_accounts (
		user_id INTEGER PRIMARY KEY,
		is_daily INTEGER NOT NULL DEFAULT 0,
		daily_credits_assigned INTEGER NOT NULL DEFAULT 0,
		today_used INTEGER NOT NULL DEFAULT 0,
		usage_date VARCHAR(10) NOT NULL DEFAULT '',
		monthly_credits_assigned INTEGER NOT NULL DEFAULT 0,
		used_credit INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		provider_sub_id VARCHAR(255) NOT NULL,
		plan VARCHAR(100) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		duration VARCHAR(50) NOT NULL DEFAULT 'monthly',
		price REAL NOT NULL DEFAULT 0,
		current_period_end INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS billing_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		invoice_id VARCHAR(255) NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		currency VARCHAR(10) NOT NULL DEFAULT 'usd',
		plan_name VARCHAR(100) NOT NULL,
		billing_cycle VARCHAR(50) NOT NULL,
		status VARCHAR(50) NOT NULL,
		paid_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
