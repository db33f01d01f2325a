// Package fluent provides a minimal fluent Chain for building a chained
// switch inline.
//
// The chain keeps the first registration error and skips every later call,
// so the cases can be written without checking each one:
// - On: start a chain for a dispatch value
// - Case/Is/Default: register cases
// - Get: exit the block and return the result or the first error
// - OrElse/Finally: reduce to a concrete value
package fluent
