// Package textutil provides small text helpers shared across the engine:
// single-line previews for history rendering and filename sanitization for
// backup copies.
package textutil
