package interp

import (
	"github.com/dchest/siphash"

	"github.com/sksp-lang/sscript/runtime/value"
)

// The dispatch tables hash operator names with SipHash-2-4 under
// process-constant keys; collisions chain inside the bucket. Sizes are
// powers of two so the index is hash & (size-1).
const (
	opHashKey0 = 0x734ad7e3439432a3
	opHashKey1 = 0x54dc762ab02dc4de

	opTableSize   = 128
	bropTableSize = 32
	numTableSize  = 16
)

type (
	opFunc   func(ip *Interp, st *State) error
	bropFunc func(ip *Interp, st *State, arg string) error
	numFunc  func(ip *Interp, st *State, n int) error
)

type entry[F any] struct {
	name string
	fn   F
}

type table[F any] struct {
	buckets [][]entry[F]
}

func newTable[F any](size int, ops map[string]F) table[F] {
	t := table[F]{buckets: make([][]entry[F], size)}
	for name, fn := range ops {
		idx := siphash.Hash(opHashKey0, opHashKey1, []byte(name)) & uint64(size-1)
		t.buckets[idx] = append(t.buckets[idx], entry[F]{name: name, fn: fn})
	}
	return t
}

func (t table[F]) lookup(name string) (F, bool) {
	idx := siphash.Hash(opHashKey0, opHashKey1, []byte(name)) & uint64(len(t.buckets)-1)
	for _, e := range t.buckets[idx] {
		if e.name == name {
			return e.fn, true
		}
	}
	var zero F
	return zero, false
}

var builtins struct {
	ops    table[opFunc]
	brops  table[bropFunc]
	numops table[numFunc]
}

func init() {
	builtins.ops = newTable(opTableSize, map[string]opFunc{
		// arithmetic
		"+":     opSum,
		"-":     opSub,
		"*":     opMul,
		"/":     opDiv,
		"%":     opMod,
		"pow":   opPow,
		"sqrt":  opSqrt,
		"int":   opInt,
		"--":    opNeg,
		"!":     opFact,
		"gamma": opGamma,
		"exp":   opExp,
		"log":   opLog,
		"log2":  opLog2,
		"log10": opLog10,

		// trigonometric and hyperbolic
		"sin":     opSin,
		"cos":     opCos,
		"tan":     opTan,
		"arcsin":  opArcsin,
		"arccos":  opArccos,
		"arctan":  opArctan,
		"sinh":    opSinh,
		"cosh":    opCosh,
		"tanh":    opTanh,
		"arcsinh": opArcsinh,
		"arccosh": opArccosh,
		"arctanh": opArctanh,

		// boolean
		"true":  opTrue,
		"false": opFalse,
		"not":   opNot,
		"and":   opAnd,
		"or":    opOr,
		"xor":   opXor,

		// comparison
		"==": opEqual,
		"!=": opNotEqual,
		"<":  opLower,
		"<=": opLowerEq,
		">":  opGreater,
		">=": opGreaterEq,

		// stack
		"dup":      opDup,
		"swap":     opSwap,
		"drop":     opDrop,
		"size":     opSize,
		"empty":    opEmpty,
		"clear":    opClear,
		"roll":     opRoll,
		"top":      opTop,
		"dip":      opDip,
		"apply":    opApply,
		"quote":    opQuote,
		"compose":  opCompose,
		"split":    opSplit,
		"push":     opPush,
		"pop":      opPop,
		"inject":   opInject,
		"compress": opCompress,

		// control
		"if":       opIf,
		"loop":     opLoop,
		"try":      opTry,
		"times":    opTimes,
		"exit":     opExit,
		"nop":      opNop,
		"print":    opPrint,
		"printall": opPrintall,

		// types
		"none":  opNone,
		"stack": opStack,
		"type":  opType,
		"INSTR": typeWord(value.Instruction),
		"INT":   typeWord(value.Integer),
		"FLOAT": typeWord(value.Floating),
		"BOOL":  typeWord(value.Boolean),
		"STR":   typeWord(value.String),
		"TYPE":  typeWord(value.Type),
		"NONE":  typeWord(value.None),
		"STACK": typeWord(value.InnerStack),
	})
	builtins.brops = newTable(bropTableSize, map[string]bropFunc{
		"load":    bropLoad,
		"save":    bropSave,
		"if":      bropIf,
		"loop":    bropLoop,
		"times":   bropTimes,
		"compose": bropCompose,
		"split":   bropSplit,
		"dup":     bropDup,
		"swap":    bropSwap,
		"dig":     bropDig,
		"define":  bropDefine,
		"delete":  bropDelete,
		"isdef":   bropIsdef,
		"inject":  bropInject,
		"pinject": bropPinject,
	})
	builtins.numops = newTable(numTableSize, map[string]numFunc{
		"dup":     numopDup,
		"swap":    numopSwap,
		"dig":     numopDig,
		"inject":  numopInject,
		"pinject": numopPinject,
	})
}
