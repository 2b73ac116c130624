// Package tape implements the byte memory that programs manipulate.
//
// A Tape owns a fixed number of cells and a cursor. All access goes through
// the cursor:
//
//	t, _ := tape.New(128)
//	t.Increment()
//	t.MoveLeft() // wraps to cell 127
//
// Both the cursor and the cell values wrap, so every operation is total.
package tape
