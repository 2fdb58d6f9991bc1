// Package filesystem provides the filesystem used by ccsync.
//
// Every component reads and writes through an afero.Fs so the same code
// runs against the OS filesystem in production and an in-memory
// filesystem in tests.
package filesystem
