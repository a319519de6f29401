package interp

import (
	"github.com/qeforge/qescript/internal/lexer"
	"github.com/qeforge/qescript/internal/value"
)

// expr parses and evaluates an expression into the slot at sp, consuming
// operators with precedence at or above prec0. With skip set, tokens are
// consumed without evaluation.
//
// On failure the scan rewinds to the start of the expression and the
// skip-expression routine consumes up to a statement boundary, so the
// statement driver can resume; the return value is true in that case.
func (ctx *Context) expr(sp int, prec0 lexer.Prec, skip bool) bool {
	mark := ctx.lx.Mark()
	tok := ctx.tok()

	if skip {
		return ctx.skipExpr()
	}
	if sp >= ctx.spMax {
		if sp >= stackSize {
			ctx.errorf("stack overflow")
			return ctx.skipExpr()
		}
		ctx.spMax = sp + 1
	}

again:
	// prefix forms, ignoring precedence
	switch tok {
	case '(': // parenthesized expression
		ctx.next()
		if ctx.expr(sp, lexer.PrecExpression, false) || !ctx.expect(')') {
			goto fail
		}
	case '-':
		ctx.next()
		if ctx.expr(sp, lexer.PrecPostfix, false) || ctx.tonum(sp) {
			goto fail
		}
		ctx.slot(sp).Num = -ctx.slot(sp).Num
	case '+':
		ctx.next()
		if ctx.expr(sp, lexer.PrecPostfix, false) || ctx.tonum(sp) {
			goto fail
		}
	case '~':
		ctx.next()
		if ctx.expr(sp, lexer.PrecPostfix, false) || ctx.tonum(sp) {
			goto fail
		}
		ctx.slot(sp).Num = ^ctx.slot(sp).Num
	case '!':
		ctx.next()
		if ctx.expr(sp, lexer.PrecPostfix, false) || ctx.getvalue(sp) {
			goto fail
		}
		if v := ctx.slot(sp); v.Kind == value.KindString {
			v.SetNum(0)
		} else {
			v.SetNum(boolNum(v.Num == 0))
		}
	case lexer.Inc, lexer.Dec: // convert to x += 1 / x -= 1
		ctx.next()
		if ctx.expr(sp, lexer.PrecPostfix, false) {
			goto fail
		}
		if ctx.checkLvalue(sp) {
			goto fail
		}
		ctx.slot(sp + 1).SetNum(1)
		if ctx.assign(sp, tok) {
			goto fail
		}
		if ctx.getvalue(sp) {
			goto fail
		}
	case lexer.Number:
		ctx.slot(sp).SetNum(lexer.ParseInt(ctx.lx.Text()))
		ctx.next()
	case lexer.String:
		ctx.slot(sp).SetStr(ctx.lx.Text())
		ctx.next()
	case lexer.Ident:
		ctx.slot(sp).SetIdent(ctx.lx.Text())
		ctx.next()
	case lexer.Char:
		ctx.slot(sp).SetChar(decodeFirstRune(ctx.lx.Text()))
		ctx.next()
	default:
		ctx.slot(sp).SetVoid()
		ctx.errorf("invalid expression")
		goto fail
	}

	for {
		op := ctx.tok()
		prec := ctx.lx.Prec()

		if prec < prec0 {
			return false
		}
		ctx.next()
		if op == ',' { // comma expression: keep the rightmost value
			tok = ctx.tok()
			goto again
		}
		if op == '?' {
			if ctx.ternary(sp) {
				tok = ctx.tok()
				goto again
			}
			continue
		}
		if prec == lexer.PrecPostfix {
			switch op {
			case '(': // function call
				if ctx.slot(sp).Kind == value.KindIdent {
					name := ctx.slot(sp).Str
					d := ctx.win.Ed.FindCmd(name)
					if d == nil {
						switch name {
						case "char":
							if ctx.getArgs(sp, 1, 1) < 0 {
								goto fail
							}
							ctx.tochar(sp)
							continue
						case "int":
							if ctx.getArgs(sp, 1, 1) < 0 {
								goto fail
							}
							ctx.tonum(sp)
							continue
						case "string":
							if ctx.getArgs(sp, 1, 1) < 0 {
								goto fail
							}
							ctx.tostr(sp)
							continue
						}
						ctx.errorf("unknown command '%s'", name)
						goto fail
					}
					if ctx.call(sp, d) {
						goto fail
					}
					continue
				}
				ctx.errorf("invalid function call")
				goto fail
			case lexer.Inc, lexer.Dec: // post inc/dec: yield the pre-value
				if ctx.checkLvalue(sp) {
					goto fail
				}
				*ctx.slot(sp + 1) = *ctx.slot(sp)
				if ctx.getvalue(sp) {
					goto fail
				}
				ctx.slot(sp + 2).SetNum(1)
				if ctx.assign(sp+1, op) {
					goto fail
				}
				continue
			case '[': // subscripting
				if ctx.expr(sp+1, lexer.PrecExpression, false) || !ctx.expect(']') {
					goto fail
				}
				if ctx.getvalue(sp) || ctx.binop(sp, op) {
					goto fail
				}
				continue
			case '.': // property accessor
				if ctx.tok() != lexer.Ident {
					ctx.errorf("expected property name")
					goto fail
				}
				if ctx.getvalue(sp) {
					goto fail
				}
				if v := ctx.slot(sp); v.Kind == value.KindString && ctx.lx.Text() == "length" {
					v.SetNum(int64(len(v.Str)))
					ctx.next()
					continue
				}
				ctx.errorf("no such property '%s'", ctx.lx.Text())
				goto fail
			default:
				ctx.errorf("unsupported operator '%s'", op)
				goto fail
			}
		}
		if prec == lexer.PrecAssignment {
			// assignments are right associative
			if ctx.expr(sp+1, lexer.PrecAssignment, false) {
				goto fail
			}
			if ctx.assign(sp, op) {
				goto fail
			}
			continue
		}
		if op == lexer.LAnd || op == lexer.LOr {
			// shortcut evaluation: the untaken side is skipped unevaluated
			if ctx.tonum(sp) {
				goto fail
			}
			lhs := ctx.slot(sp).Num != 0
			if (op == lexer.LAnd && !lhs) || (op == lexer.LOr && lhs) {
				ctx.expr(sp+1, prec+1, true)
				ctx.slot(sp).SetNum(boolNum(lhs))
			} else {
				if ctx.expr(sp+1, prec+1, false) || ctx.tonum(sp+1) {
					goto fail
				}
				ctx.slot(sp).SetNum(boolNum(ctx.slot(sp+1).Num != 0))
			}
			continue
		}
		if op == '%' {
			if ctx.getvalue(sp) {
				goto fail
			}
			if ctx.slot(sp).Kind == value.KindString {
				if ctx.modFormat(sp, prec) {
					goto fail
				}
				continue
			}
			// numeric modulo falls through to the generic path
		}
		// other operators are left associative
		if ctx.expr(sp+1, prec+1, false) {
			goto fail
		}
		if ctx.getvalue(sp) {
			goto fail
		}
		if ctx.binop(sp, op) {
			goto fail
		}
	}

fail:
	ctx.lx.Rewind(mark)
	ctx.next()
	return ctx.skipExpr()
}

// ternary evaluates cond ? a : b. Exactly one branch is evaluated; the
// other is consumed in skip mode. A true return asks the caller to resume
// parsing at the current token.
func (ctx *Context) ternary(sp int) bool {
	if ctx.getvalue(sp) {
		return true
	}
	truth := ctx.slot(sp).Truthy()
	if ctx.expr(sp, lexer.PrecExpression, !truth) != !truth {
		return true
	}
	if !ctx.has(':') {
		return true
	}
	return ctx.expr(sp, lexer.PrecConditional, truth) != truth
}

func (ctx *Context) checkLvalue(sp int) bool {
	if ctx.slot(sp).Kind != value.KindIdent {
		ctx.errorf("not a variable")
		return true
	}
	return false
}

// skipExpr consumes tokens until bracket depth returns to zero at a ';',
// a closing bracket, a ':', an 'else', or end of input. Brackets are
// counted but not matched by kind.
func (ctx *Context) skipExpr() bool {
	level := 0
	for {
		switch ctx.tok() {
		case lexer.EOF:
			return true
		case '?', '{', '[', '(':
			level++
		case ':', '}', ']', ')':
			if level == 0 {
				return true
			}
			level--
		case ';', lexer.Else:
			if level == 0 {
				return true
			}
		}
		ctx.next()
	}
}

// getArgs parses a parenthesized argument list into successive slots
// starting at sp and enforces the arity bounds. Returns the argument
// count, or -1 after reporting an error.
func (ctx *Context) getArgs(sp, min, max int) int {
	nargs := 0
	sep := false
	for !ctx.has(')') {
		if sep && !ctx.expect(',') {
			return -1
		}
		sep = true
		if ctx.expr(sp+nargs, lexer.PrecAssignment, false) {
			ctx.errorf("invalid argument")
			return -1
		}
		nargs++
	}
	if nargs < min {
		ctx.errorf("missing arguments")
		return -1
	}
	if nargs > max {
		ctx.errorf("extra arguments")
		return -1
	}
	return nargs
}
