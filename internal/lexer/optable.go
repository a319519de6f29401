package lexer

import "sort"

type opDef struct {
	str  string
	tok  Token
	prec Prec
}

// opTable must stay sorted in lexicographical order; lookupOp binary
// searches it for the longest matching spelling.
var opTable = []opDef{
	{"!", '!', PrecNone},
	{"!=", Ne, PrecEquality},
	{"%", '%', PrecMultiplicative},
	{"%=", ModAssign, PrecAssignment},
	{"&", '&', PrecBitAnd},
	{"&&", LAnd, PrecLogicalAnd},
	{"&=", AndAssign, PrecAssignment},
	{"(", '(', PrecPostfix},
	{")", ')', PrecNone},
	{"*", '*', PrecMultiplicative},
	{"*=", MulAssign, PrecAssignment},
	{"+", '+', PrecAdditive},
	{"++", Inc, PrecPostfix},
	{"+=", AddAssign, PrecAssignment},
	{",", ',', PrecExpression},
	{"-", '-', PrecAdditive},
	{"--", Dec, PrecPostfix},
	{"-=", SubAssign, PrecAssignment},
	{".", '.', PrecPostfix},
	{"/", '/', PrecMultiplicative},
	{"/=", DivAssign, PrecAssignment},
	{":", ':', PrecNone},
	{";", ';', PrecNone},
	{"<", '<', PrecShift},
	{"<<", Shl, PrecShift},
	{"<<=", ShlAssign, PrecAssignment},
	{"<=", Le, PrecRelational},
	{"=", '=', PrecAssignment},
	{"==", Eq, PrecEquality},
	{">", '>', PrecShift},
	{">=", Ge, PrecRelational},
	{">>", Shr, PrecShift},
	{">>=", ShrAssign, PrecAssignment},
	{"?", '?', PrecConditional},
	{"[", '[', PrecPostfix},
	{"]", ']', PrecNone},
	{"^", '^', PrecBitXor},
	{"^=", XorAssign, PrecAssignment},
	{"{", '{', PrecNone},
	{"|", '|', PrecBitOr},
	{"|=", OrAssign, PrecAssignment},
	{"||", LOr, PrecLogicalOr},
	{"}", '}', PrecNone},
	{"~", '~', PrecNone},
}

const maxOpLen = 3

// lookupOp finds the longest operator spelling that prefixes src, or a
// zero definition and length 0 when none matches.
func lookupOp(src string) (opDef, int) {
	for n := maxOpLen; n > 0; n-- {
		if n > len(src) {
			continue
		}
		cand := src[:n]
		i := sort.Search(len(opTable), func(i int) bool {
			return opTable[i].str >= cand
		})
		if i < len(opTable) && opTable[i].str == cand {
			return opTable[i], n
		}
	}
	return opDef{}, 0
}
