// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string form, a human-oriented Message, the primary source.Span, and
// optional Notes with secondary context.
//
// Phases emit through a diag.Reporter so production is decoupled from
// storage; BagReporter aggregates into a Bag, which supports sorting,
// deduplication and merging for deterministic output. Fatal codes (LEX/SYN
// ranges at SevError) abort only the file that produced them; DOC-range
// warnings never change control flow.
//
// Rendering lives in internal/diagfmt; orchestration in internal/driver.
package diag
