package interp

import "github.com/qeforge/qescript/internal/lexer"

// statement parses one statement: a { } block, an if/else, an expression
// statement, or an empty statement. With skip set, everything is parsed
// but nothing is evaluated.
//
// A statement terminates at ';', end of input, '}', 'else', or a newline
// before the next token (automatic semicolon insertion); anything else is
// a "missing ';'" error.
func (ctx *Context) statement(sp int, skip bool) bool {
	res := false

	if ctx.has('{') {
		for !ctx.has('}') {
			if ctx.tok() == lexer.EOF {
				ctx.errorf("missing '}'")
				return true
			}
			res = ctx.statement(sp, skip) || res
		}
		return res
	}

	if ctx.has(lexer.If) {
		truth := false
		if ctx.expr(sp, lexer.PrecExpression, skip) || ctx.getvalue(sp) {
			res, skip = true, true
		} else {
			truth = ctx.slot(sp).Truthy()
		}
		res = ctx.statement(sp, skip || !truth) || res
		if ctx.has(lexer.Else) {
			res = ctx.statement(sp, skip || truth) || res
		}
		return res
	}

	if ctx.tok() != ';' { // not an empty statement; accept comma expressions
		if ctx.expr(sp, lexer.PrecExpression, skip) || ctx.getvalue(sp) {
			res = true
		}
	}
	if !ctx.has(';') && ctx.tok() != lexer.EOF && ctx.tok() != '}' && ctx.tok() != lexer.Else && !ctx.lx.NewlineSeen() {
		ctx.errorf("missing ';'")
	}
	return res
}
