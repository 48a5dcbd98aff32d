// Package logtail reads the tail of tally's JSON log file.
//
// # Reading Log Files
//
// ReadMatching uses a ring buffer of size maxLines, so the last maxLines
// matching lines are available after a single sequential pass regardless
// of file size:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line that passes the filter:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines kept
//	3. Return the buffer starting from the oldest kept line
//
// Memory use is O(maxLines), not O(file size).
//
// # Confirmed Values
//
// Confirmed decodes the "confirmed" records the app writes when a user
// accepts a value, which is what `tally history` prints. Lines that are not
// valid JSON are skipped rather than failing the whole read.
//
// # Error Handling
//
// A missing file reads as empty (nil, nil). Other I/O errors are wrapped.
package logtail
