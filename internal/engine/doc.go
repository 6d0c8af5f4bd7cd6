// Package engine combines line collections: a left fold for the binary
// operations and a lazy Cartesian product.
package engine
