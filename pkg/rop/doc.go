// Package rop defines the result algebra shared by every other package:
// a two-variant Result[T] and the closed AppFailure taxonomy.
//
// Highlights:
// - Success/Fail: construct Result[T]
// - Match/MatchFailure: exhaustive dispatch over results and failure kinds
// - Network/Server/Validation/NotFound/Unauthorized/Unexpected/Cancelled: failure constructors
// - AppFailure.UserMessage: display-safe text (raw text only for validation)
// - FromError/FromStatus: classify transport errors into failure kinds
package rop
