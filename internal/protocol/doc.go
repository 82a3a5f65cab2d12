// Package protocol decodes PM5 GATT notifications into typed records.
//
// Ownership boundary:
// - ident: service and characteristic identifiers
// - wire: little-endian scalar reads
// - enum: discriminant tables
// - rowing: record shapes and their field order
//
// This package owns dispatch from identifier to decoder and the error
// taxonomy callers match against.
package protocol
