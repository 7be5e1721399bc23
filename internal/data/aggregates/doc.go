// Package aggregates implements the domain aggregate contracts on top of the table repos
// in internal/data/repos. Each write method owns its transaction.
package aggregates
