// Package domain defines the core business entities for the Aion data
// extractor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A resolved game entity (item, NPC, quest, generic)
//   - StringTable: The code-to-localized-text mapping with provenance
//   - Taxonomy: The fixed two-level item classification tree
//   - ResultSet: Everything one extraction run produced
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
