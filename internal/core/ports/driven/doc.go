// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - Extractor: Converts entity nodes of one kind into resolved records
//   - ExtractorRegistry: Routes an unclassified document to an extractor
//   - ReportSink: Persists a completed ResultSet (text report, SQLite)
//
// # Import Rules
//
//   - Can Import: domain and the stdlib-only xmldoc leaf package
//   - Cannot Import: Any adapter or extractor implementation package
package driven
