// Package cp56 implements the seven byte CP56Time2a timestamp used by
// telecontrol links.
//
// Ownership boundary:
// - bit layout of the seven wire bytes
// - decode/encode against caller supplied buffers
// - calendar arithmetic relative to 2000-01-01
// - rendering and the %-directive text parser
//
// Values are plain data. Nothing in this package allocates shared state or
// blocks, so a Time can be copied and used from any goroutine.
package cp56
