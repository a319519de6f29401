// Package editor models the host side of the qescript interpreter: the
// window/buffer pair scripts act on, the variable broker, the command
// registry with its argument-spec strings, and the status/error surfaces.
//
// The in-memory implementation here is deliberately small; a real editor
// embeds the same contracts around its own buffer and display machinery.
package editor

import (
	"fmt"
	"io"

	"github.com/qeforge/qescript/internal/qerr"
)

// Editor is the global host state shared by all windows.
type Editor struct {
	ActiveWindow    *Window
	DefaultTabWidth int

	// ThisCmdFunc/LastCmdFunc record the action of the command being
	// dispatched and the previously dispatched one.
	ThisCmdFunc any
	LastCmdFunc any

	EC qerr.Context

	StatusW io.Writer
	ErrorW  io.Writer

	Broker VariableBroker

	// Refresh runs after a region or buffer evaluation.
	Refresh func()

	cmds map[string]*CmdDef
}

// Window pairs a buffer with a point and per-window settings.
type Window struct {
	Ed     *Editor
	Buf    *Buffer
	Offset int // point

	IndentTabsMode bool
	IndentWidth    int
}

// Buffer is a named byte buffer with a mark.
type Buffer struct {
	Name     string
	Mark     int
	ReadOnly bool
	TabWidth int

	data []byte
}

// New creates an editor with a single scratch window, the default variable
// broker, and the default command set registered.
func New(statusW, errorW io.Writer) *Editor {
	if statusW == nil {
		statusW = io.Discard
	}
	if errorW == nil {
		errorW = io.Discard
	}
	e := &Editor{
		DefaultTabWidth: 8,
		StatusW:         statusW,
		ErrorW:          errorW,
		cmds:            make(map[string]*CmdDef),
	}
	e.Broker = NewVars()
	b := &Buffer{Name: "*scratch*", TabWidth: 8}
	e.ActiveWindow = &Window{Ed: e, Buf: b, IndentWidth: 4}
	registerDefaults(e)
	return e
}

// PutStatus writes a status message for the user.
func (e *Editor) PutStatus(w *Window, format string, args ...any) {
	fmt.Fprintf(e.StatusW, format, args...)
	fmt.Fprintln(e.StatusW)
}

// PutError reports an error with the current error context prepended.
func (e *Editor) PutError(w *Window, format string, args ...any) {
	fmt.Fprintf(e.ErrorW, "%s%s\n", e.EC.Prefix(), fmt.Sprintf(format, args...))
}

// CheckReadOnly reports an error and returns true when the window's buffer
// cannot be modified.
func (w *Window) CheckReadOnly() bool {
	if w.Buf.ReadOnly {
		w.Ed.PutError(w, "buffer is read-only")
		return true
	}
	return false
}

// SetContents replaces the buffer bytes, clamping the mark to the new
// length. Window points are not adjusted.
func (b *Buffer) SetContents(data []byte) {
	b.data = append(b.data[:0], data...)
	if b.Mark > len(b.data) {
		b.Mark = len(b.data)
	}
}

// TotalSize returns the buffer length in bytes.
func (b *Buffer) TotalSize() int { return len(b.data) }

// Contents exposes the raw buffer bytes.
func (b *Buffer) Contents() []byte { return b.data }

// Read copies up to len(dst) bytes starting at offset start and returns
// the number of bytes read.
func (b *Buffer) Read(start int, dst []byte) int {
	if start < 0 || start >= len(b.data) {
		return 0
	}
	return copy(dst, b.data[start:])
}

// InsertUTF8 splices text into the buffer at offset and returns the number
// of bytes inserted. The offset is clamped to the buffer bounds.
func (b *Buffer) InsertUTF8(offset int, text []byte) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}
	b.data = append(b.data[:offset], append(append([]byte(nil), text...), b.data[offset:]...)...)
	if b.Mark > offset {
		b.Mark += len(text)
	}
	return len(text)
}

// Delete removes the byte range [start, end) from the buffer, clamped to
// its bounds, and returns the number of bytes removed.
func (b *Buffer) Delete(start, end int) int {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if start >= end {
		return 0
	}
	n := end - start
	b.data = append(b.data[:start], b.data[end:]...)
	if b.Mark > end {
		b.Mark -= n
	} else if b.Mark > start {
		b.Mark = start
	}
	return n
}
