package database

// Items table DDL per dialect. Executed on every start; IF NOT EXISTS makes it
// a no-op once the table exists. There is no migration mechanism.
const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

	postgresSchema = `CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

	mysqlSchema = `CREATE TABLE IF NOT EXISTS items (
	id          BIGINT AUTO_INCREMENT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
)

// SchemaFor returns the CREATE TABLE statement for the driver
func SchemaFor(driver Driver) string {
	switch driver {
	case DriverPostgres:
		return postgresSchema
	case DriverMySQL:
		return mysqlSchema
	default:
		return sqliteSchema
	}
}
