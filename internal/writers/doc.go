// Package writers owns output serialization so the selection core stays
// domain-only. The representative list is the one persisted artifact; it is
// written whole at the end of a run, never incrementally, so a failed run
// leaves no output file behind.
package writers
