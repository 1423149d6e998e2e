// Package config defines the format-agnostic configuration model for the
// generator, along with the Loader interface for reading it from a concrete
// serialization. The `config.Model` is the single source of truth for the
// `registry` package; concrete loaders, such as for HCL, live in separate
// packages.
package config
