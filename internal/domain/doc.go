// Package domain contains the core model for setop: line collections
// (sets and multisets of lines), the operations over them, and the error model.
//
// The domain is I/O-agnostic: it does not depend on files, stdin, YAML parsing,
// or the terminal. Infra/adapters map into/from these types.
package domain
