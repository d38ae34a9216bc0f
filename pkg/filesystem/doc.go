// Package filesystem provides the read-only filesystem view the scanner walks.
//
// The scanner never writes to the trees it inspects, so FS only exposes
// read operations. NewOS backs it with the real filesystem; NewAferoFS wraps
// any afero.Fs, which the tests use with an in-memory filesystem.
package filesystem
