// Package settings defines the schema of every known logical Wine setting:
// where it lives in the registry, how it is encoded on disk, and how input
// is validated. The schema is stateless; pkg/editor combines it with a
// registry store.
//
// Boolean settings deliberately use three distinct on-disk encodings
// (DWORD 0/1, uppercase "Y"/"N", lowercase "y"/"n") that must be reproduced
// per field; see the codec tables in boolcodec.go.
package settings
