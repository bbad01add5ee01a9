package sqlite

// storeKey is the single key under which the vendor list is stored.
const storeKey = "vendors"

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "vendors.db"

// Schema DDL. The store is a plain key-value table; the vendor list is one
// JSON-encoded value with no version or schema field.
const createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

const (
	selectValue = `SELECT value FROM kv WHERE key = ?`
	upsertValue = `INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
)
