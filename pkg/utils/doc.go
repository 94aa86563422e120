// Package utils provides small shared helpers: vector math for the
// embedding index and generic top-K selection used by the rankers.
package utils
