// Package diag defines the diagnostic model shared by all generator phases.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     topology validation, symbol naming, and alias resolution.
//   - Offer a light-weight container (Bag) that lets producers accumulate
//     diagnostics without coupling to formatting or CLI layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Subject – the topology element at fault ("domain" or "domain.member").
//   - Notes – optional secondary subjects/messages for additional context.
//
// Codes are banded by phase: TOP (topology structure), NAM (symbol naming),
// ALS (alias resolution), IO. The banded string form is stable and is what
// golden tests assert against.
package diag
