// Package alloc assigns globally unique, sequential VLAN IDs to the symbols
// discovered per module.
//
// The allocator owns a single counter seeded from the configured start
// offset and shared across every module: IDs are globally sequential, never
// restarted per module. Assignment order is module order, then symbol
// discovery order within each module, so a fixed file system and
// configuration always produce an identical table. Any naming conflict is
// fatal; no partial table is ever returned.
package alloc
