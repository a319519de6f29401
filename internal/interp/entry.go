package interp

import (
	"fmt"
	"os"
	"strconv"

	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/value"
)

// EvalExpression evaluates a source string as a script. With argval equal
// to editor.NoArg the result is displayed in the status area; any other
// argval inserts the result's textual form at point.
func EvalExpression(w *editor.Window, expression string, argval int64) {
	ctx := newContext(w, "<string>", expression)
	defer ctx.release()
	ctx.parse()

	w = ctx.win
	ed := w.Ed
	if argval != editor.NoArg && w.CheckReadOnly() {
		return
	}
	if ctx.getvalue(0) {
		return
	}
	sp := ctx.slot(0)
	switch sp.Kind {
	case value.KindVoid:
	case value.KindNumber:
		text := strconv.FormatInt(sp.Num, 10)
		if argval == editor.NoArg {
			ed.PutStatus(w, "-> %s", text)
		} else {
			w.Offset += w.Buf.InsertUTF8(w.Offset, []byte(text))
		}
	case value.KindString:
		if argval == editor.NoArg {
			ed.PutStatus(w, "-> \"%s\"", sp.Str)
		} else {
			w.Offset += w.Buf.InsertUTF8(w.Offset, []byte(sp.Str))
		}
	case value.KindChar:
		text := encodeRune(sp.Num)
		if argval == editor.NoArg {
			ed.PutStatus(w, "-> '%s'", text)
		} else {
			w.Offset += w.Buf.InsertUTF8(w.Offset, []byte(text))
		}
	default:
		ed.PutError(w, "unexpected value type: %s", sp.Kind)
	}
}

// evalBufferRegion evaluates the byte range [start, stop) of the window's
// buffer as a script. Endpoints are normalized and clamped; regions past
// the size cap report "buffer too large".
func evalBufferRegion(w *editor.Window, start, stop int) value.Kind {
	if stop < start {
		start, stop = stop, start
	}
	if start < 0 {
		start = 0
	}
	if stop > w.Buf.TotalSize() {
		stop = w.Buf.TotalSize()
	}
	length := stop - start
	if length > maxScriptLen {
		w.Ed.PutError(w, "buffer too large")
		return value.KindVoid
	}
	buf := make([]byte, length)
	n := w.Buf.Read(start, buf)

	ctx := newContext(w, w.Buf.Name, string(buf[:n]))
	defer ctx.release()
	res := ctx.parse()
	if w.Ed.Refresh != nil {
		w.Ed.Refresh()
	}
	return res
}

// EvalRegion evaluates the region between mark and point as a script.
func EvalRegion(w *editor.Window) {
	evalBufferRegion(w, w.Buf.Mark, w.Offset)
}

// EvalBuffer evaluates the whole buffer as a script.
func EvalBuffer(w *editor.Window) {
	evalBufferRegion(w, 0, w.Buf.TotalSize())
}

// LoadConfigFile reads and evaluates a configuration file. Files past the
// size cap report "file too large".
func LoadConfigFile(w *editor.Window, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if len(data) > maxScriptLen {
		w.Ed.PutError(w, "file too large")
		return fmt.Errorf("%s: file too large", filename)
	}
	ctx := newContext(w, filename, string(data))
	defer ctx.release()
	ctx.parse()
	return nil
}

// RegisterCommands installs the interpreter's commands into the host
// registry.
func RegisterCommands(ed *editor.Editor) {
	ed.RegisterCommands(
		&editor.CmdDef{
			Name: "eval-expression", Desc: "Evaluate a qescript expression",
			Spec: "s{Eval: }[.symbol]|expression|P",
			Sig:  editor.CmdESsi,
			Action: func(w *editor.Window, expr string, argval int64) {
				EvalExpression(w, expr, argval)
			},
		},
		&editor.CmdDef{
			Name: "eval-region", Desc: "Evaluate qescript expressions in the region",
			Sig:  editor.CmdES,
			Action: func(w *editor.Window) {
				EvalRegion(w)
			},
		},
		&editor.CmdDef{
			Name: "eval-buffer", Desc: "Evaluate qescript expressions in the buffer",
			Sig:  editor.CmdES,
			Action: func(w *editor.Window) {
				EvalBuffer(w)
			},
		},
	)
}
