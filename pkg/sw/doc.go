// Package sw implements a multi-way branch as a value: a dispatcher holding a
// dispatch value, a set of registered cases and the action to run for the
// selected case.
//
// Highlights:
// - Is/When/OneOf/AnyOf/Range/Between/In: build literal, predicate, collection and range keys
// - New/Switch: chained-actions dispatcher; matched actions (and the cases they
//   fall through to) are queued and run at Close
// - NewImmediate/Immediate: runs the matching action as soon as Case is called
// - Do/DoImmediate: scoped block around either dispatcher
// - ClosedRange: integer sequence inclusive of both ends
//
// Literal keys may be registered once per dispatcher. Keys expanded from
// collections and ranges count as literals too.
package sw
