package lexer

import (
	"iter"
	"maps"
)

// keywords is the fixed source vocabulary. Changing a spelling breaks every
// existing .herm file.
var keywords = map[string]TokenKind{
	"scheme":       TokenScheme,
	"abandon":      TokenAbandon,
	"fortify":      TokenFortify,
	"myself":       TokenMyself,
	"initialize":   TokenInitialize,
	"aahaan":       TokenAahaan,
	"cascade":      TokenCascade,
	"thats_it":     TokenThatsIt,
	"iterate":      TokenIterate,
	"within":       TokenWithin,
	"repeat":       TokenRepeat,
	"collapse":     TokenCollapse,
	"skip":         TokenSkip,
	"attempt":      TokenAttempt,
	"grieve":       TokenGrieve,
	"validate":     TokenValidate,
	"escalate":     TokenEscalate,
	"truth":        TokenTruth,
	"falsehood":    TokenFalsehood,
	"nothing":      TokenNothing,
	"same_as":      TokenSameAs,
	"differs_from": TokenDiffersFrom,
	"greater_than": TokenGreaterThan,
	"lesser_than":  TokenLesserThan,
	"at_least":     TokenAtLeast,
	"at_most":      TokenAtMost,
	"kinship":      TokenKinship,
	"alternate":    TokenAlternate,
	"negate":       TokenNegate,
	"announce":     TokenAnnounce,
	"listen":       TokenListen,
	"congregation": TokenCongregation,
	"from":         TokenFrom,
	"as":           TokenAs,
	"desire":       TokenDesire,
	"produce":      TokenProduce,
	"recognize":    TokenRecognize,
	"context":      TokenContext,
}

// LookupKeyword returns the keyword kind for word, or TokenIdentifier.
func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenIdentifier
}

func Keywords() iter.Seq2[string, TokenKind] {
	return maps.All(keywords)
}
