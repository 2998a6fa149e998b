// Package registry provides the shared, lock-guarded registry store for one
// Wine prefix: loading the on-disk .reg files (system.reg, user.reg,
// userdef.reg), raw key/value access, and saving back to disk.
//
// A WineRegistry is a cloneable handle; every clone observes the same
// underlying mutable registry. Readers take a shared lock, writers an
// exclusive one. File I/O and parsing never run while the lock is held.
package registry
