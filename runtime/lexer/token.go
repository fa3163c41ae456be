package lexer

import "fmt"

// TokenType classifies a token of the script stream.
type TokenType int

const (
	EOF TokenType = iota

	INSTRUCTION // [ ... ] quoted instruction
	STRING      // " ... " literal
	INNERSTACK  // { ... } nested stack source
	INTEGER     // 64-bit signed literal
	FLOATING    // IEEE-754 double literal
	BRACKETED   // name(arg) operator call
	WORD        // generic operator or user word
)

var tokenNames = [...]string{
	EOF:         "EOF",
	INSTRUCTION: "INSTRUCTION",
	STRING:      "STRING",
	INNERSTACK:  "INNERSTACK",
	INTEGER:     "INTEGER",
	FLOATING:    "FLOATING",
	BRACKETED:   "BRACKETED",
	WORD:        "WORD",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && t >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexed fragment. Text is the raw slice of the input;
// the remaining fields carry kind-specific auxiliary data.
type Token struct {
	Type TokenType
	Text string

	// Body is the literal content between the delimiters of an
	// INSTRUCTION, STRING or INNERSTACK token.
	Body string

	// Int and Float hold the pre-parsed numeric value.
	Int   int64
	Float float64

	// Head and Arg are the name/argument split of a BRACKETED token.
	Head string
	Arg  string

	// NumHead, NumArg describe the (name-prefix, decimal-tail) split
	// of a WORD token such as dup3. HasNum reports whether the split
	// exists; resolution order is up to the dispatcher, since words
	// like log2 are plain builtins.
	NumHead string
	NumArg  int
	HasNum  bool
}
