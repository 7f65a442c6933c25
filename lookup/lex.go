package lookup

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken int = iota
	pipeToken
	dotToken
	indexToken
	fieldToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var pipeMatcher = parsly.NewToken(pipeToken, "Pipe", matcher.NewByte('|'))
var dotMatcher = parsly.NewToken(dotToken, "Dot", matcher.NewByte('.'))
var indexMatcher = parsly.NewToken(indexToken, "Index", matcher.NewBlock('[', ']', '\\'))
var fieldMatcher = parsly.NewToken(fieldToken, "Field", newFieldMatcher())

type field struct {
}

//Match matches a field name, a name runs until a separator or whitespace
func (f *field) Match(cursor *parsly.Cursor) (matched int) {
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		switch cursor.Input[i] {
		case '.', '[', ']', '|', ' ', '\t', '\n', '\r', '\v', '\f':
			return matched
		}
		matched++
	}
	return matched
}

func newFieldMatcher() *field {
	return &field{}
}
