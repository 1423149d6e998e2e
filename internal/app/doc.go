// Package app contains the core application logic: the App struct, its
// configuration, and the generation pipeline, decoupled from the CLI
// entrypoint. A run is strictly sequential: registry resolution, then
// scanning, then allocation, then emission, with no overlapping phases.
package app
