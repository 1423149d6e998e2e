package config

// Model is the unified, format-agnostic representation of the entire
// generator configuration: one global settings block plus every declared
// module, in declaration order.
type Model struct {
	// BaseDir is the directory containing the configuration document.
	// Relative project roots resolve against it.
	BaseDir string

	Global *Global

	// Modules preserves declaration order. Global ID assignment order
	// follows this order, so it must never be rebuilt from an unordered
	// map.
	Modules []*Module
}

// Global is the format-agnostic representation of the `global` block.
// Pointer fields distinguish an absent attribute from a zero value; the
// registry is responsible for rejecting absent required fields.
type Global struct {
	ProjectDir  string
	VLANIDStart *int
}

// Module is the format-agnostic representation of one `module` block.
type Module struct {
	Name     string
	Path     string
	Status   string
	Output   string
	Template string

	// DeclRange is a human-readable source location of the block, carried
	// for error messages only.
	DeclRange string
}
