package interp

import (
	"strconv"
	"unicode/utf8"

	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/lexer"
	"github.com/qeforge/qescript/internal/value"
)

// getvalue resolves an identifier slot through the variable broker; other
// kinds pass through. Unknown variables report "no variable" and clear the
// slot.
func (ctx *Context) getvalue(sp int) bool {
	v := ctx.slot(sp)
	if v.Kind != value.KindIdent {
		return false
	}
	kind, s, n := ctx.win.Ed.Broker.Get(ctx.win, v.Str)
	switch kind {
	case editor.VarChars, editor.VarString:
		v.SetStr(s)
	case editor.VarNumber:
		v.SetNum(n)
	default:
		ctx.errorf("no variable %s", v.Str)
		v.SetVoid()
		return true
	}
	return false
}

// tonum coerces the slot to an integer: strings reparse with C-style
// conversion, chars retag, anything else becomes zero.
func (ctx *Context) tonum(sp int) bool {
	if ctx.getvalue(sp) {
		return true
	}
	v := ctx.slot(sp)
	switch v.Kind {
	case value.KindNumber:
	case value.KindString:
		v.SetNum(lexer.ParseInt(v.Str))
	case value.KindChar:
		v.Kind = value.KindNumber
	default:
		v.SetNum(0)
	}
	return false
}

// tostr coerces the slot to a string: numbers format as decimal, chars
// UTF-8 encode, anything else becomes empty.
func (ctx *Context) tostr(sp int) bool {
	if ctx.getvalue(sp) {
		return true
	}
	v := ctx.slot(sp)
	switch v.Kind {
	case value.KindString:
	case value.KindNumber:
		v.SetStr(strconv.FormatInt(v.Num, 10))
	case value.KindChar:
		v.SetStr(encodeRune(v.Num))
	default:
		v.SetStr("")
	}
	return false
}

// tochar coerces the slot toward a character: a string yields its first
// codepoint as a number, numeric kinds retag to char, anything else
// becomes zero.
func (ctx *Context) tochar(sp int) bool {
	if ctx.getvalue(sp) {
		return true
	}
	v := ctx.slot(sp)
	switch v.Kind {
	case value.KindString:
		v.SetNum(decodeFirstRune(v.Str))
	case value.KindNumber, value.KindChar:
		v.Kind = value.KindChar
	default:
		v.SetNum(0)
	}
	return false
}

func encodeRune(c int64) string {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(c))
	return string(buf[:n])
}

func decodeFirstRune(s string) int64 {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return int64(r)
}
