package editor

import (
	"fmt"
	"math"
	"strings"
)

// NoArg is the raw prefix-argument value meaning "no prefix argument was
// given".
const NoArg = int64(math.MinInt32)

// ArgType is the base type of one command argument.
type ArgType int

const (
	ArgWindow    ArgType = iota // implicit window, never from the call site
	ArgIntVal                   // pseudo argument: CmdDef.Val
	ArgStringVal                // pseudo argument: the descriptor's prompt
	ArgInt
	ArgString
)

// ArgFlag selects the default supplied for an int argument the caller
// omitted, and any post-processing of a provided one.
type ArgFlag int

const (
	FlagNone      ArgFlag = iota
	FlagRawArgval         // default NoArg
	FlagNumArgval         // default 1
	FlagNegArgval         // default -1; provided values are negated
	FlagUseMark           // default: buffer mark
	FlagUsePoint          // default: window point
	FlagUseZero           // default 0
	FlagUseBSize          // default: buffer size
)

// ArgSpec describes one argument parsed from a command's spec string.
type ArgSpec struct {
	Type       ArgType
	Flag       ArgFlag
	Prompt     string
	Completion string
	History    string
}

// SpecReader iterates the descriptors of an argument-spec string.
//
// A spec is an optional leading '*' (the command mutates the buffer)
// followed by descriptors: a type letter, then optional '{prompt}',
// '[completion]' and '|history|' annotations. Type letters:
//
//	s  string         i  int            p  int, default 1
//	P  int, raw prefix (default NoArg)  q  int, negated (default -1)
//	m  int, default mark                d  int, default point
//	z  int, default 0                   e  int, default buffer size
//	v  INTVAL pseudo argument           S  STRINGVAL pseudo argument
type SpecReader struct {
	spec string
	pos  int

	// Mutates is true when the spec begins with '*'.
	Mutates bool
}

// NewSpecReader prepares iteration over spec.
func NewSpecReader(spec string) *SpecReader {
	r := &SpecReader{spec: spec}
	if strings.HasPrefix(spec, "*") {
		r.Mutates = true
		r.pos = 1
	}
	return r
}

var argLetters = map[byte]ArgSpec{
	's': {Type: ArgString},
	'i': {Type: ArgInt, Flag: FlagNone},
	'p': {Type: ArgInt, Flag: FlagNumArgval},
	'P': {Type: ArgInt, Flag: FlagRawArgval},
	'q': {Type: ArgInt, Flag: FlagNegArgval},
	'm': {Type: ArgInt, Flag: FlagUseMark},
	'd': {Type: ArgInt, Flag: FlagUsePoint},
	'z': {Type: ArgInt, Flag: FlagUseZero},
	'e': {Type: ArgInt, Flag: FlagUseBSize},
	'v': {Type: ArgIntVal},
	'S': {Type: ArgStringVal},
}

// Next returns the next argument descriptor, or nil at the end of the
// spec.
func (r *SpecReader) Next() (*ArgSpec, error) {
	if r.pos >= len(r.spec) {
		return nil, nil
	}
	c := r.spec[r.pos]
	as, ok := argLetters[c]
	if !ok {
		return nil, fmt.Errorf("bad argument descriptor %q", c)
	}
	r.pos++
	for r.pos < len(r.spec) {
		var close byte
		var dst *string
		switch r.spec[r.pos] {
		case '{':
			close, dst = '}', &as.Prompt
		case '[':
			close, dst = ']', &as.Completion
		case '|':
			close, dst = '|', &as.History
		default:
			return &as, nil
		}
		end := strings.IndexByte(r.spec[r.pos+1:], close)
		if end < 0 {
			return nil, fmt.Errorf("unterminated %q annotation", r.spec[r.pos])
		}
		*dst = r.spec[r.pos+1 : r.pos+1+end]
		r.pos += end + 2
	}
	return &as, nil
}
