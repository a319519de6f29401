package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/qeforge/qescript/internal/lexer"
	"github.com/qeforge/qescript/internal/value"
)

// binop applies a binary operator to the slots at sp and sp+1, leaving the
// result in sp. Dispatch is on the left-hand type: strings support
// concatenation, subscripting, formatting and ordering; everything else is
// coerced to integers.
func (ctx *Context) binop(sp int, op lexer.Token) bool {
	v, rhs := ctx.slot(sp), ctx.slot(sp+1)
	if v.Kind == value.KindString {
		switch op {
		case '<', '>', lexer.Le, lexer.Ge, lexer.Eq, lexer.Ne:
			if ctx.tostr(sp + 1) {
				return true
			}
			v.SetNum(int64(strings.Compare(v.Str, rhs.Str)))
			rhs.SetNum(0)
			return ctx.numOp(sp, op)
		case '+', lexer.AddAssign:
			if ctx.tostr(sp + 1) {
				return true
			}
			v.SetStr(v.Str + rhs.Str)
			return false
		case '[':
			if ctx.tonum(sp + 1) {
				return true
			}
			if rhs.Num >= 0 && rhs.Num < int64(len(v.Str)) {
				v.SetChar(int64(v.Str[rhs.Num]))
			} else {
				v.SetVoid()
			}
			return false
		case '%':
			return ctx.format(sp)
		default:
			ctx.errorf("invalid string operator '%s'", op)
			return true
		}
	}
	if ctx.tonum(sp) || ctx.tonum(sp+1) {
		return true
	}
	return ctx.numOp(sp, op)
}

// numOp applies an integer operator to the numbers already in sp and sp+1.
// Arithmetic wraps around at 64 bits as in C; comparisons and logical
// operators yield 0 or 1.
func (ctx *Context) numOp(sp int, op lexer.Token) bool {
	v, rhs := ctx.slot(sp), ctx.slot(sp+1)
	a, b := v.Num, rhs.Num
	switch op {
	case '*', lexer.MulAssign:
		a *= b
	case '/', '%', lexer.DivAssign, lexer.ModAssign:
		if b == 0 || (a == math.MinInt64 && b == -1) {
			ctx.errorf("'%s': division overflow", op)
			return true
		}
		if op == '/' || op == lexer.DivAssign {
			a /= b
		} else {
			a %= b
		}
	case '+', lexer.AddAssign, lexer.Inc:
		a += b
	case '-', lexer.SubAssign, lexer.Dec:
		a -= b
	case lexer.Shl, lexer.ShlAssign:
		a <<= uint64(b) & 63
	case lexer.Shr, lexer.ShrAssign:
		a >>= uint64(b) & 63
	case '<':
		a = boolNum(a < b)
	case '>':
		a = boolNum(a > b)
	case lexer.Le:
		a = boolNum(a <= b)
	case lexer.Ge:
		a = boolNum(a >= b)
	case lexer.Eq:
		a = boolNum(a == b)
	case lexer.Ne:
		a = boolNum(a != b)
	case '&', lexer.AndAssign:
		a &= b
	case '^', lexer.XorAssign:
		a ^= b
	case '|', lexer.OrAssign:
		a |= b
	case lexer.LAnd:
		a = boolNum(a != 0 && b != 0)
	case lexer.LOr:
		a = boolNum(a != 0 || b != 0)
	default:
		ctx.errorf("invalid numeric operator '%s'", op)
		return true
	}
	v.SetNum(a)
	return false
}

// assign stores the value at sp+1 into the variable named by the
// identifier at sp, combining with the current value first for compound
// operators. The identifier is left in sp so a later getvalue re-reads
// the variable.
func (ctx *Context) assign(sp int, op lexer.Token) bool {
	if ctx.checkLvalue(sp) {
		return true
	}
	if ctx.getvalue(sp + 1) {
		return true
	}
	v, rhs := ctx.slot(sp), ctx.slot(sp+1)
	if op != '=' {
		ident := *v
		if ctx.getvalue(sp) || ctx.binop(sp, op) {
			return true
		}
		*rhs = *v
		*v = ident
	}
	w := ctx.win
	if rhs.Kind == value.KindString {
		w.Ed.Broker.SetString(w, v.Str, rhs.Str)
	} else {
		w.Ed.Broker.SetNumber(w, v.Str, rhs.Num)
	}
	return false
}

// modFormat parses the right-hand side of a string % expression and
// applies the conversions. A parenthesized list feeds successive argument
// slots; any other right-hand side supplies a single argument.
func (ctx *Context) modFormat(sp int, prec lexer.Prec) bool {
	if ctx.has('(') {
		nargs := 0
		for !ctx.has(')') {
			if nargs > 0 && !ctx.expect(',') {
				return true
			}
			if ctx.expr(sp+1+nargs, lexer.PrecAssignment, false) {
				return true
			}
			nargs++
		}
	} else if ctx.expr(sp+1, prec+1, false) {
		return true
	}
	return ctx.format(sp)
}

// formatMax bounds the formatted result; overflow truncates silently.
const formatMax = 256

func appendBounded(dst []byte, s string) []byte {
	room := formatMax - 1 - len(dst)
	if room <= 0 {
		return dst
	}
	if len(s) > room {
		s = s[:room]
	}
	return append(dst, s...)
}

// format applies printf-style conversions to the string at sp, consuming
// successive stack slots as arguments: d i o u x X take a number, c a
// char, s a string. Unknown directives are copied verbatim.
func (ctx *Context) format(sp int) bool {
	if ctx.tostr(sp) {
		return true
	}
	src := ctx.slot(sp).Str
	arg := sp + 1
	var out []byte

	i := 0
	for i < len(src) {
		j := strings.IndexByte(src[i:], '%')
		if j < 0 {
			out = appendBounded(out, src[i:])
			break
		}
		out = appendBounded(out, src[i:i+j])
		i += j
		start := i
		i++
		if i < len(src) && src[i] == '%' {
			out = appendBounded(out, "%")
			i++
			continue
		}
		k := i
		for k < len(src) && strings.IndexByte("0123456789+- #.", src[k]) >= 0 {
			k++
		}
		if k >= len(src) {
			out = appendBounded(out, src[start:])
			break
		}
		flags := src[i:k]
		verb := src[k]
		i = k + 1

		if arg >= len(ctx.stack) {
			arg = len(ctx.stack) - 1
		}
		switch {
		case strings.IndexByte("diouxX", verb) >= 0:
			if ctx.tonum(arg) {
				return true
			}
			n := ctx.slot(arg).Num
			arg++
			var repl string
			switch verb {
			case 'd', 'i':
				repl = fmt.Sprintf("%"+flags+"d", n)
			case 'o':
				repl = fmt.Sprintf("%"+flags+"o", uint64(n))
			case 'u':
				repl = fmt.Sprintf("%"+flags+"d", uint64(n))
			case 'x':
				repl = fmt.Sprintf("%"+flags+"x", uint64(n))
			case 'X':
				repl = fmt.Sprintf("%"+flags+"X", uint64(n))
			}
			out = appendBounded(out, repl)
		case verb == 'c' || verb == 's':
			if verb == 'c' && ctx.tochar(arg) {
				return true
			}
			if ctx.tostr(arg) {
				return true
			}
			out = appendBounded(out, fmt.Sprintf("%"+flags+"s", ctx.slot(arg).Str))
			arg++
		default:
			out = appendBounded(out, src[start:i])
		}
	}
	ctx.slot(sp).SetStr(string(out))
	return false
}
