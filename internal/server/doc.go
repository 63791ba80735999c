// Package server implements the menu ingest server.
//
// The server accepts multipart CSV menu uploads on POST /upload and
// answers with a chunked plain-text body: one progress line per unit of
// work, flushed as soon as it is produced. Ingestion can take a while,
// and the operator watching the client's log panel needs to see rows and
// items go by rather than wait for a single end-of-job result - that is
// the whole point of the streamed response.
//
// Requests that cannot be ingested at all (missing file, wrong extension,
// missing fields) are rejected with a plain HTTP error status before any
// streaming starts; the client surfaces the reason phrase as a single log
// line. Once streaming has begun the status is already committed, so any
// later problem is reported as a ❌ line inside the stream itself.
//
// The secondary form action "login" is acknowledged with a single status
// line; the actual provider login flow lives entirely with the provider.
package server
