package lexer

import "fmt"

type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// keywords
	TokenScheme     // def
	TokenAbandon    // return
	TokenFortify    // class
	TokenMyself     // self
	TokenInitialize // __init__
	TokenAahaan     // if
	TokenCascade    // elif
	TokenThatsIt    // else
	TokenIterate    // for
	TokenWithin     // in
	TokenRepeat     // while
	TokenCollapse   // break
	TokenSkip       // continue
	TokenAttempt    // try
	TokenGrieve     // except
	TokenValidate   // finally
	TokenEscalate   // raise
	TokenTruth      // True
	TokenFalsehood  // False
	TokenNothing    // None
	TokenSameAs     // ==
	TokenDiffersFrom
	TokenGreaterThan
	TokenLesserThan
	TokenAtLeast
	TokenAtMost
	TokenKinship   // and
	TokenAlternate // or
	TokenNegate    // not
	TokenAnnounce  // print
	TokenListen    // input
	TokenCongregation
	TokenFrom
	TokenAs
	TokenDesire    // lambda
	TokenProduce   // yield
	TokenRecognize // global
	TokenContext   // with

	// operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenDoubleSlash
	TokenPercent
	TokenDoubleStar
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenEq
	TokenNe
	TokenLt
	TokenGt
	TokenLe
	TokenGe

	// delimiters
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenColon
	TokenDot
	TokenArrow
	TokenAt

	// literals
	TokenInteger
	TokenFloat
	TokenString
	TokenFString

	TokenIdentifier

	// structure
	TokenNewline
	TokenIndent
	TokenDedent
	TokenComment
	TokenEOF

	tokenKindCount
)

var tokenKindNames = [...]string{
	TokenInvalid:      "INVALID",
	TokenScheme:       "SCHEME",
	TokenAbandon:      "ABANDON",
	TokenFortify:      "FORTIFY",
	TokenMyself:       "MYSELF",
	TokenInitialize:   "INITIALIZE",
	TokenAahaan:       "AAHAAN",
	TokenCascade:      "CASCADE",
	TokenThatsIt:      "THATS_IT",
	TokenIterate:      "ITERATE",
	TokenWithin:       "WITHIN",
	TokenRepeat:       "REPEAT",
	TokenCollapse:     "COLLAPSE",
	TokenSkip:         "SKIP",
	TokenAttempt:      "ATTEMPT",
	TokenGrieve:       "GRIEVE",
	TokenValidate:     "VALIDATE",
	TokenEscalate:     "ESCALATE",
	TokenTruth:        "TRUTH",
	TokenFalsehood:    "FALSEHOOD",
	TokenNothing:      "NOTHING",
	TokenSameAs:       "SAME_AS",
	TokenDiffersFrom:  "DIFFERS_FROM",
	TokenGreaterThan:  "GREATER_THAN",
	TokenLesserThan:   "LESSER_THAN",
	TokenAtLeast:      "AT_LEAST",
	TokenAtMost:       "AT_MOST",
	TokenKinship:      "KINSHIP",
	TokenAlternate:    "ALTERNATE",
	TokenNegate:       "NEGATE",
	TokenAnnounce:     "ANNOUNCE",
	TokenListen:       "LISTEN",
	TokenCongregation: "CONGREGATION",
	TokenFrom:         "FROM",
	TokenAs:           "AS",
	TokenDesire:       "DESIRE",
	TokenProduce:      "PRODUCE",
	TokenRecognize:    "RECOGNIZE",
	TokenContext:      "CONTEXT",

	TokenPlus:          "PLUS",
	TokenMinus:         "MINUS",
	TokenStar:          "STAR",
	TokenSlash:         "SLASH",
	TokenDoubleSlash:   "DOUBLE_SLASH",
	TokenPercent:       "PERCENT",
	TokenDoubleStar:    "DOUBLE_STAR",
	TokenAssign:        "ASSIGN",
	TokenPlusAssign:    "PLUS_ASSIGN",
	TokenMinusAssign:   "MINUS_ASSIGN",
	TokenStarAssign:    "STAR_ASSIGN",
	TokenSlashAssign:   "SLASH_ASSIGN",
	TokenPercentAssign: "PERCENT_ASSIGN",
	TokenEq:            "EQ",
	TokenNe:            "NE",
	TokenLt:            "LT",
	TokenGt:            "GT",
	TokenLe:            "LE",
	TokenGe:            "GE",

	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLBracket: "LBRACKET",
	TokenRBracket: "RBRACKET",
	TokenLBrace:   "LBRACE",
	TokenRBrace:   "RBRACE",
	TokenComma:    "COMMA",
	TokenColon:    "COLON",
	TokenDot:      "DOT",
	TokenArrow:    "ARROW",
	TokenAt:       "AT",

	TokenInteger: "INTEGER",
	TokenFloat:   "FLOAT",
	TokenString:  "STRING",
	TokenFString: "FSTRING",

	TokenIdentifier: "IDENTIFIER",

	TokenNewline: "NEWLINE",
	TokenIndent:  "INDENT",
	TokenDedent:  "DEDENT",
	TokenComment: "COMMENT",
	TokenEOF:     "EOF",
}

func (k TokenKind) String() string {
	if k < tokenKindCount {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}
