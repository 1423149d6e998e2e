// Package scanner discovers VLAN registration call sites in a module's
// source tree. The Matcher isolates the textual extraction rule (call sites
// of the registration macro, never its #define) from the file-system walk,
// so each half is testable on its own.
package scanner
