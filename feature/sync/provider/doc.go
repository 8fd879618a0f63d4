// Package provider normalizes external product-listing APIs into a uniform
// record shape.
//
// A Provider produces a lazy, finite, restartable sequence of pages. Each page
// carries normalized records in provider order plus the cursor of the next
// page, absent on the last one. Unknown or malformed records are dropped with
// a per-record warning rather than failing the page; transport and decode
// failures surface as *Error values carrying the cursor, leaving the
// retry-vs-abort decision to the caller.
//
// Implementations are selected by configuration at startup through New.
// Outbound requests are rate-limited and bounded by per-request timeouts so a
// slow provider cannot stall unrelated traffic.
package provider
