// Package aggregates defines the restaurant aggregate contract.
//
// The contract avoids persistence and transport details. Each write method is one atomic
// unit: it commits fully or leaves the store untouched.
package aggregates
