// Package table evaluates declarative decision tables through a chained
// switch. A table is a list of cases loaded from YAML or JSON; each case
// matches literal values, a closed integer range or a glob pattern and yields
// a string result. Cases may fall through to the next one.
//
//	name: http-class
//	default: unknown
//	cases:
//	  - name: ok
//	    values: ["200", "204"]
//	    result: success
//	  - name: redirect
//	    range: {start: 300, stop: 399}
//	    result: redirect
//	  - name: client
//	    glob: "4??"
//	    result: client-error
//
// Duplicate literals across cases, including literals produced by ranges,
// are rejected with sw.ErrDuplicateCase.
package table
