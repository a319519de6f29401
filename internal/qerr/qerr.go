// Package qerr provides the error context threaded through script
// evaluation: source filename, the command being executed, and the line
// number of the offending token.
package qerr

import (
	"fmt"
	"strings"
)

// Context records where an error happened. The interpreter keeps one per
// editor state, setting the line number when an error is reported and the
// function name while a command runs.
type Context struct {
	Filename string
	Function string
	Lineno   int
}

// Prefix renders the context header of an error message, e.g.
// "config.qs:12: shell-command: ".
func (c *Context) Prefix() string {
	var sb strings.Builder
	if c.Filename != "" {
		sb.WriteString(c.Filename)
		if c.Lineno > 0 {
			fmt.Fprintf(&sb, ":%d", c.Lineno)
		}
		sb.WriteString(": ")
	}
	if c.Function != "" {
		sb.WriteString(c.Function)
		sb.WriteString(": ")
	}
	return sb.String()
}

// Error is a script error bearing its context.
type Error struct {
	Ctx Context
	Msg string
}

func (e *Error) Error() string {
	return e.Ctx.Prefix() + e.Msg
}

// New captures the context and message into an Error.
func New(ctx Context, format string, args ...any) *Error {
	return &Error{Ctx: ctx, Msg: fmt.Sprintf(format, args...)}
}
