// Package args scans a raw argument vector against compiled schema slots.
//
// Scanning happens in two steps that can be exercised separately:
//
//   - Tokenize classifies every token after the program name as a flag or a
//     value and pairs them into Occurrences. A flag is exactly "-" followed
//     by one ASCII letter. A flag followed by a value is a valued occurrence;
//     a flag at the end or followed by another flag is a boolean occurrence.
//   - Apply coerces one Occurrence into its slot: scalars are replaced, lists
//     are appended to, booleans are switched on.
//
// Process runs both steps. Malformed input is never fatal; it is reported to
// a diag.Reporter and skipped. The only errors returned are internal contract
// breaches (ErrMalformedFlag, ErrCorruptSlot).
package args
