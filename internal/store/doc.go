// Package store defines the boundary to the relational row source. The
// loader only depends on the small Querier contract, so it works against a
// *sql.DB, a *sql.Tx, or any test double that can run parameterized queries.
package store
