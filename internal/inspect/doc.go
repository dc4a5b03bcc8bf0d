// Package inspect serves the CP56Time2a codec over HTTP for operators who
// need to check captured timestamps by hand.
//
// Ownership boundary:
// - request/response shapes for decode, encode, parse and diff
// - gin router assembly and middleware order
// - listener lifecycle
package inspect
