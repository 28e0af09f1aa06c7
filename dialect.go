package quickquery

import "fmt"

// SQLDialect represents a SQL database dialect.
type SQLDialect string

// Supported database dialects.
const (
	SQLDialectPostgres  SQLDialect = "postgres"
	SQLDialectMySQL     SQLDialect = "mysql"
	SQLDialectMariaDB   SQLDialect = "mariadb"
	SQLDialectSQLite    SQLDialect = "sqlite"
	SQLDialectOracle    SQLDialect = "oracle"
	SQLDialectSQLServer SQLDialect = "sqlserver"
)

// placeholder returns the positional placeholder for the given 1-based index.
func (d SQLDialect) placeholder(index int) string {
	switch d {
	case SQLDialectPostgres:
		return fmt.Sprintf("$%d", index)

	case SQLDialectOracle:
		return fmt.Sprintf(":%d", index)

	case SQLDialectSQLServer:
		return fmt.Sprintf("@p%d", index)

	default:
		return "?"
	}
}

// backslashEscapes reports whether a backslash escapes the next character
// inside quoted literals.
func (d SQLDialect) backslashEscapes() bool {
	return d == SQLDialectMySQL || d == SQLDialectMariaDB
}

// backtickIdentifiers reports whether identifiers may be quoted with backticks.
func (d SQLDialect) backtickIdentifiers() bool {
	return d == SQLDialectMySQL || d == SQLDialectMariaDB
}

// hashComments reports whether '#' starts a line comment.
func (d SQLDialect) hashComments() bool {
	return d == SQLDialectMySQL || d == SQLDialectMariaDB
}

// dollarQuoting reports whether $tag$ ... $tag$ string constants are supported.
func (d SQLDialect) dollarQuoting() bool {
	return d == SQLDialectPostgres
}
