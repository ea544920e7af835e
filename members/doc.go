/*
Package members keeps the member register: the records people submit through
the registration form, stored in an SQLite database.

The register is the source of the name lists hunsort orders. Names returns the
display name of every member, and the register can be exported as CSV, either
by an administrator over HTTP (see Handler) or as a file backup.

Column names follow the Hungarian field names of the registration form
(nev_vezetek for the surname, nev_kereszt for the given name, and so on), so
exports stay compatible with the spreadsheets already in use.
*/
package members

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hunsort'
func tracer() tracing.Trace {
	return tracing.Select("hunsort")
}
