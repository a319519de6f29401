package editor

import "fmt"

// CmdSig selects the concrete calling shape of a command action. The
// leading window argument is implicit in every shape.
type CmdSig int

const (
	CmdES   CmdSig = iota // func(*Window)
	CmdESi                // func(*Window, int64)
	CmdESii               // func(*Window, int64, int64)
	CmdESiii              // func(*Window, int64, int64, int64)
	CmdESs                // func(*Window, string)
	CmdESsi               // func(*Window, string, int64)
	CmdESss               // func(*Window, string, string)
	CmdESssi              // func(*Window, string, string, int64)
)

// CmdDef is a host-registered command: a name, an argument-spec string, a
// signature code, an action matching that signature, and an integer
// constant for INTVAL pseudo arguments.
type CmdDef struct {
	Name   string
	Desc   string
	Spec   string
	Sig    CmdSig
	Val    int64
	Action any
}

// CmdArg is one collected argument slot.
type CmdArg struct {
	Win *Window
	Num int64
	Str string
}

// RegisterCommands adds command definitions to the registry, replacing any
// previous binding of the same name.
func (e *Editor) RegisterCommands(defs ...*CmdDef) {
	for _, d := range defs {
		e.cmds[d.Name] = d
	}
}

// FindCmd resolves a command by its dash-normalized name.
func (e *Editor) FindCmd(name string) *CmdDef {
	return e.cmds[name]
}

// Commands returns the registered command names, for completion surfaces.
func (e *Editor) Commands() []string {
	names := make([]string, 0, len(e.cmds))
	for name := range e.cmds {
		names = append(names, name)
	}
	return names
}

// CallFunc invokes action through the trampoline selected by sig.
// args[0] must carry the window.
func CallFunc(sig CmdSig, action any, args []CmdArg) error {
	w := args[0].Win
	switch sig {
	case CmdES:
		if fn, ok := action.(func(*Window)); ok {
			fn(w)
			return nil
		}
	case CmdESi:
		if fn, ok := action.(func(*Window, int64)); ok {
			fn(w, args[1].Num)
			return nil
		}
	case CmdESii:
		if fn, ok := action.(func(*Window, int64, int64)); ok {
			fn(w, args[1].Num, args[2].Num)
			return nil
		}
	case CmdESiii:
		if fn, ok := action.(func(*Window, int64, int64, int64)); ok {
			fn(w, args[1].Num, args[2].Num, args[3].Num)
			return nil
		}
	case CmdESs:
		if fn, ok := action.(func(*Window, string)); ok {
			fn(w, args[1].Str)
			return nil
		}
	case CmdESsi:
		if fn, ok := action.(func(*Window, string, int64)); ok {
			fn(w, args[1].Str, args[2].Num)
			return nil
		}
	case CmdESss:
		if fn, ok := action.(func(*Window, string, string)); ok {
			fn(w, args[1].Str, args[2].Str)
			return nil
		}
	case CmdESssi:
		if fn, ok := action.(func(*Window, string, string, int64)); ok {
			fn(w, args[1].Str, args[2].Str, args[3].Num)
			return nil
		}
	}
	return fmt.Errorf("action does not match signature %d", sig)
}

func clampOffset(b *Buffer, n int64) int {
	if n < 0 {
		return 0
	}
	if n > int64(b.TotalSize()) {
		return b.TotalSize()
	}
	return int(n)
}

// registerDefaults installs the basic editing command set every host
// provides, exercising the argument-spec machinery.
func registerDefaults(e *Editor) {
	e.RegisterCommands(
		&CmdDef{
			Name: "insert-string", Desc: "Insert a string at point",
			Spec: "*s{String: }|string|", Sig: CmdESs,
			Action: func(w *Window, s string) {
				w.Offset += w.Buf.InsertUTF8(w.Offset, []byte(s))
			},
		},
		&CmdDef{
			Name: "goto-char", Desc: "Move point to a buffer position",
			Spec: "i{Goto char: }", Sig: CmdESi,
			Action: func(w *Window, n int64) {
				w.Offset = clampOffset(w.Buf, n)
			},
		},
		&CmdDef{
			Name: "beginning-of-buffer", Desc: "Move point to the buffer start",
			Spec: "z", Sig: CmdESi,
			Action: func(w *Window, n int64) {
				w.Offset = clampOffset(w.Buf, n)
			},
		},
		&CmdDef{
			Name: "end-of-buffer", Desc: "Move point to the buffer end",
			Spec: "e", Sig: CmdESi,
			Action: func(w *Window, n int64) {
				w.Offset = clampOffset(w.Buf, n)
			},
		},
		&CmdDef{
			Name: "set-mark", Desc: "Set the buffer mark",
			Spec: "d", Sig: CmdESi,
			Action: func(w *Window, n int64) {
				w.Buf.Mark = clampOffset(w.Buf, n)
			},
		},
		&CmdDef{
			Name: "delete-region", Desc: "Delete the bytes between mark and point",
			Spec: "*md", Sig: CmdESii,
			Action: func(w *Window, start, end int64) {
				lo := clampOffset(w.Buf, start)
				hi := clampOffset(w.Buf, end)
				w.Buf.Delete(lo, hi)
				if lo > hi {
					lo = hi
				}
				if w.Offset > lo {
					w.Offset = lo
				}
			},
		},
		&CmdDef{
			Name: "set-tab-width", Desc: "Set the buffer tab width",
			Spec: "p", Sig: CmdESi,
			Action: func(w *Window, n int64) {
				if n > 0 {
					w.Buf.TabWidth = int(n)
				}
			},
		},
	)
}
