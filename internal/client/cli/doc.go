// Package cli implements the interactive command loop of the directory
// client: login, listing and searching the user collection, and editing
// or deleting individual records.
package cli
