// Package interp evaluates qescript source against a host editor: a
// precedence-climbing expression evaluator over a fixed value stack, a
// statement driver with automatic semicolon insertion, and a command
// dispatcher that binds identifier-headed calls to host commands.
//
// Errors never unwind past a statement: the evaluator reports them through
// the host error surface, rewinds to the statement boundary, and the
// driver resumes with the next statement.
package interp

import (
	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/lexer"
	"github.com/qeforge/qescript/internal/qerr"
	"github.com/qeforge/qescript/internal/value"
)

const (
	// maxScriptLen bounds region and config-file scripts.
	maxScriptLen = 128*1024 - 1

	// stackSize bounds expression nesting; exceeding it is a "stack
	// overflow" error.
	stackSize = 16

	// stackScratch slots past the overflow bound are touched transiently
	// by postfix increment and compound assignment.
	stackScratch = 2
)

// Context is the state of one top-level evaluation.
type Context struct {
	win   *editor.Window
	lx    *lexer.Lexer
	stack [stackSize + stackScratch]value.Value
	spMax int // high-water mark of allocated slots
}

func newContext(w *editor.Window, name, src string) *Context {
	ctx := &Context{win: w}
	ctx.lx = lexer.New(name, src, func(format string, args ...any) {
		ctx.errorf(format, args...)
	})
	return ctx
}

func (ctx *Context) slot(sp int) *value.Value { return &ctx.stack[sp] }

func (ctx *Context) tok() lexer.Token { return ctx.lx.Tok() }

func (ctx *Context) next() { ctx.lx.Next() }

// has consumes the current token when it matches.
func (ctx *Context) has(t lexer.Token) bool {
	if ctx.lx.Tok() == t {
		ctx.lx.Next()
		return true
	}
	return false
}

func (ctx *Context) expect(t lexer.Token) bool {
	if ctx.has(t) {
		return true
	}
	ctx.errorf("'%s' expected", t)
	return false
}

// errorf reports an error at the line of the current token.
func (ctx *Context) errorf(format string, args ...any) {
	ed := ctx.win.Ed
	ed.EC.Lineno = ctx.lx.TokenLine()
	ed.PutError(ctx.win, format, args...)
}

// release clears every stack slot so no statement leaves a value behind
// after teardown.
func (ctx *Context) release() {
	for i := range ctx.stack {
		ctx.stack[i].SetVoid()
	}
}

// parse runs the statement driver over the whole source and returns the
// kind of the value left in slot 0. The host error context is scoped to
// this script for the duration.
func (ctx *Context) parse() value.Kind {
	ed := ctx.win.Ed
	saved := ed.EC
	ed.EC = qerr.Context{Filename: ctx.lx.Name(), Lineno: 1}

	ctx.stack[0].SetVoid()
	ctx.next()
	for ctx.tok() != lexer.EOF && ctx.tok() != lexer.Err {
		if ctx.statement(0, false) {
			ctx.stack[0].SetVoid()
		}
	}

	ed.EC = saved
	return ctx.stack[0].Kind
}

func boolNum(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
