// Package quickquery runs SQL statements that return no rows and optionally
// asserts how many rows they affected.
//
// Statements are written with named placeholders (@name) and run with a
// Parameters map. The placeholders are rewritten for the configured SQLDialect
// before the statement reaches the driver.
//
// Two kinds of execution are provided:
//
//  1. Unguarded: [QuickQuery.WithoutReturn] runs the statement on a dedicated
//     connection with no extra transaction.
//
//  2. Guarded: [QuickQuery.WithoutReturnAffecting] and its presets run the
//     statement inside a transaction that is committed only if the number of
//     affected rows satisfies a [RowCountPolicy]. On a violation the transaction
//     is rolled back and an [UnexpectedRowCountError] is returned, so no partial
//     effect is ever left behind.
//
// Connections and transactions are always released before a call returns,
// on success, on policy violation, on driver failure and on panic.
package quickquery
