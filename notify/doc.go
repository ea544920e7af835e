/*
Package notify renders an ordered name list as an HTML e-mail and delivers it
through the Resend HTTP API (https://resend.com/docs/api-reference/emails/send-email).

Every message carries a ULID which is sent as the request's Idempotency-Key,
so retrying a failed delivery of the same Message never sends it twice.
*/
package notify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hunsort'
func tracer() tracing.Trace {
	return tracing.Select("hunsort")
}
