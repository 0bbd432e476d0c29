// Package linker links shared resources into sketch directories.
//
// A sketch directory is any immediate subdirectory of the root that holds
// a marker file (by default *.pde). For every sketch, each shared resource
// name (by default "code" and "Pantograph.java") is checked inside the
// sketch; when nothing is there a symlink to root/<name> is created.
// Existing entries are never replaced, which makes a run idempotent.
//
// A run is a single sequential pass. The first filesystem error aborts it:
// links created before the failure stay in place and later sketches are
// not visited.
//
// Dangling symlinks at a resource path are kept by default and reported as
// broken. With BrokenLinksReplace they are removed and relinked.
package linker
