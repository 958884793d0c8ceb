// Package services implements the driving port interfaces.
// Services contain the core business logic: the extraction pipeline
// state machine and the query engine over its results. They orchestrate
// calls to driven ports (extractors, report sinks).
//
// Services are pure Go with no CGO.
package services
