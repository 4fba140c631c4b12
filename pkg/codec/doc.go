// Package codec frames documents for storage with integrity checking and
// revision metadata.
//
// # Envelope Format
//
// Stored documents are wrapped in a binary envelope:
//
//	[CRC32(4)][Revision(8)][Timestamp(8)][BodySize(4)][Body]
//
// Fields:
//   - CRC32: 32-bit CRC checksum for integrity validation (little-endian)
//   - Revision: 64-bit revision counter, incremented on every write (little-endian)
//   - Timestamp: 64-bit Unix timestamp in nanoseconds (little-endian)
//   - BodySize: 32-bit unsigned length of the body in bytes (little-endian)
//   - Body: the document content (JSON text produced by pkg/value)
//
// The total envelope size is: 24 bytes (header) + len(body).
//
// An envelope with an empty body is a tombstone marking a deleted document;
// the revision and timestamp record when the deletion happened.
//
// # CRC32 Calculation
//
// The CRC32 checksum covers all fields except the CRC32 field itself:
// Revision, Timestamp, BodySize and the body data. Any corruption in the
// header or body is detected during validation.
//
// The envelope carries no information about the body's own encoding; it is
// storage plumbing, not a value format.
package codec
