// Package registry resolves the loaded configuration model into the ordered
// list of enabled module descriptors the pipeline operates on.
//
// Resolution validates the global settings and every enabled module in one
// pass, aggregating all problems into a single ValidationError so a broken
// configuration can be fixed in one round trip. Any validation failure is
// fatal and happens before a single source file is scanned.
package registry
