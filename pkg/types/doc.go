// Package types defines the registry value model shared by every other
// package in regkit: the closed set of representable .reg value types, the
// default-vs-named value identity rule, the in-memory registry document, and
// the typed error categories callers branch on.
package types
