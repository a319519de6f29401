package interp

import (
	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/lexer"
)

const (
	maxCmdArgs = 8

	// argStringMax is the staging area shared by a call's string
	// arguments; overflowing strings are silently truncated.
	argStringMax = 1024
)

func defaultIntArg(w *editor.Window, flag editor.ArgFlag) (int64, bool) {
	switch flag {
	case editor.FlagRawArgval:
		return editor.NoArg, true
	case editor.FlagNumArgval:
		return 1, true
	case editor.FlagNegArgval:
		return -1, true
	case editor.FlagUseMark:
		return int64(w.Buf.Mark), true
	case editor.FlagUsePoint:
		return int64(w.Offset), true
	case editor.FlagUseZero:
		return 0, true
	case editor.FlagUseBSize:
		return int64(w.Buf.TotalSize()), true
	}
	return 0, false
}

// call dispatches an identifier-headed call to the host command d. The
// command's arg-spec is walked to fill typed argument slots from defaults
// or evaluated expressions, then the action runs through the signature
// trampoline. The call's result is void.
func (ctx *Context) call(sp int, d *editor.CmdDef) bool {
	w := ctx.win
	ed := w.Ed

	r := editor.NewSpecReader(d.Spec)
	if r.Mutates && w.CheckReadOnly() {
		return true
	}

	var args [maxCmdArgs]editor.CmdArg
	var specs [maxCmdArgs]*editor.ArgSpec

	// the first argument is always the window
	specs[0] = &editor.ArgSpec{Type: editor.ArgWindow}
	nbArgs := 1
	for {
		as, err := r.Next()
		if as == nil && err == nil {
			break
		}
		if err != nil || nbArgs >= maxCmdArgs {
			ctx.errorf("invalid command definition '%s'", d.Name)
			return true
		}
		specs[nbArgs] = as
		nbArgs++
	}

	var staging [argStringMax]byte
	off := 0
	sep := false

	for i := 0; i < nbArgs; i++ {
		as := specs[i]
		switch as.Type {
		case editor.ArgWindow:
			args[i].Win = w
			continue
		case editor.ArgIntVal:
			args[i].Num = d.Val
			continue
		case editor.ArgStringVal:
			args[i].Str = as.Prompt
			continue
		}
		if ctx.tok() == ')' {
			// no more arguments: use the prescribed default, or leave the
			// expression parser to complain about the missing argument
			if as.Type == editor.ArgInt {
				if n, ok := defaultIntArg(w, as.Flag); ok {
					args[i].Num = n
					continue
				}
			}
		} else {
			if sep && !ctx.expect(',') {
				return true
			}
			sep = true
		}

		if ctx.expr(sp, lexer.PrecAssignment, false) {
			ctx.errorf("missing arguments for %s", d.Name)
			return true
		}

		switch as.Type {
		case editor.ArgInt:
			ctx.tonum(sp)
			args[i].Num = ctx.slot(sp).Num
			if as.Flag == editor.FlagNegArgval {
				args[i].Num = -args[i].Num
			}
		case editor.ArgString:
			ctx.tostr(sp)
			s := ctx.slot(sp).Str
			room := argStringMax - off - 1
			if room < 0 {
				room = 0
			}
			if len(s) > room {
				s = s[:room]
			}
			n := copy(staging[off:], s)
			args[i].Str = string(staging[off : off+n])
			if off+n < argStringMax-1 {
				off += n + 1
			}
		}
	}
	if !ctx.has(')') {
		ctx.errorf("too many arguments for %s", d.Name)
		return true
	}

	ed.ThisCmdFunc = d.Action
	ed.EC.Function = d.Name
	err := editor.CallFunc(d.Sig, d.Action, args[:nbArgs])
	ed.EC.Function = ""
	ed.LastCmdFunc = ed.ThisCmdFunc
	if err != nil {
		ctx.errorf("invalid command definition '%s'", d.Name)
		return true
	}
	if ed.ActiveWindow != nil {
		w = ed.ActiveWindow
	}
	ctx.win = w
	ctx.slot(sp).SetVoid()
	return false
}
