// Package types holds the interfaces shared across nominal's packages:
// the filesystem abstraction and the collaborators plugged into a plan
// (confirmation and path styling).
package types
