// Package upload implements the streaming menu upload client.
//
// The ingest server does not answer an upload with a single JSON document.
// Ingestion can run for a long time, so the response is a chunked plain-text
// body that the server appends progress lines to as it works through the
// CSV. The client here consumes that body incrementally: each chunk is
// decoded as UTF-8 and handed to a Sink the moment it arrives, never
// buffering the full response.
//
// Decoding is stateful across chunk boundaries. A multi-byte character that
// the network splits across two reads is held back until its remaining
// bytes arrive, so the delivered text is byte-for-byte what the server
// emitted regardless of how the transport sliced it.
//
// # Failure model
//
//   - The request itself fails (transport error or non-2xx status): the Sink
//     receives a single terminal error line and the body is never read.
//   - The connection drops mid-stream: everything received so far has
//     already been delivered; a "Connection lost" line is appended so the
//     log does not look like it is still streaming.
//
// There is no retry and no way to abort an in-flight upload; this is a
// single-operator tool.
package upload
