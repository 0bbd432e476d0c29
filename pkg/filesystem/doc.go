// Package filesystem provides the filesystem abstraction used by the linker.
//
// The FS interface covers exactly the calls a link run makes. NewOS backs
// it with the real filesystem; tests substitute their own implementation
// to inject failures.
package filesystem
