package lookup

import (
	"github.com/viant/fieldly/shared"
	"github.com/viant/parsly"
	"strconv"
)

//Parse creates a lookup key for the supplied expression; an expression lists
//one or more alias paths separated by '|', a path starts with a name followed
//by '.' separated names or '[i]' indexes, i.e "data.items[0].id | id"
func Parse(expression string, opts ...Option) (Key, error) {
	aOptions := &Options{}
	options(opts).Apply(aOptions)
	aliases, err := parseAliases(expression)
	if err != nil {
		return nil, err
	}
	if aOptions.Alias == "" && aOptions.Aliases == nil && len(aliases) == 1 && len(aliases[0]) == 1 {
		aOptions.Alias = aliases[0][0].(string)
		return newKey(aOptions)
	}
	if aOptions.Aliases == nil {
		aOptions.Aliases = make([][]interface{}, 0, len(aliases))
	}
	aOptions.Aliases = append(aOptions.Aliases, aliases...)
	return newKey(aOptions)
}

func parseAliases(expression string) ([][]interface{}, error) {
	cursor := parsly.NewCursor("", []byte(expression), 0)
	var result [][]interface{}
	for {
		aPath, err := expectPath(cursor, expression)
		if err != nil {
			return nil, err
		}
		if aPath == nil {
			if len(result) > 0 {
				return nil, NewConfigError("unable to parse lookup %q, expected path after '|'", expression)
			}
			return nil, NewConfigError("unable to parse lookup %q, expression is empty", expression)
		}
		result = append(result, aPath)
		matched := cursor.MatchAfterOptional(whitespaceMatcher, pipeMatcher)
		switch matched.Code {
		case parsly.EOF:
			return result, nil
		case pipeToken:
		default:
			return nil, NewConfigError("unable to parse lookup %q, unexpected token at position %v", expression, cursor.Pos)
		}
	}
}

//expectPath matches a single alias path, it returns nil on immediate end of input
func expectPath(cursor *parsly.Cursor, expression string) ([]interface{}, error) {
	matched := cursor.MatchAfterOptional(whitespaceMatcher, fieldMatcher)
	switch matched.Code {
	case parsly.EOF:
		return nil, nil
	case fieldToken:
	default:
		return nil, NewConfigError("unable to parse lookup %q, a path has to start with a name", expression)
	}
	result := []interface{}{matched.Text(cursor)}
	for {
		matched = cursor.MatchAfterOptional(whitespaceMatcher, dotMatcher, indexMatcher)
		switch matched.Code {
		case parsly.EOF, parsly.Invalid:
			return result, nil
		case dotToken:
			matched = cursor.MatchAfterOptional(whitespaceMatcher, fieldMatcher)
			if matched.Code != fieldToken {
				return nil, NewConfigError("unable to parse lookup %q, expected name after '.' at position %v", expression, cursor.Pos)
			}
			result = append(result, matched.Text(cursor))
		case indexToken:
			block := matched.Text(cursor)
			index, err := strconv.Atoi(shared.TrimPair(block, '[', ']'))
			if err != nil {
				return nil, NewConfigError("unable to parse lookup %q, invalid index %v", expression, block)
			}
			if index < 0 {
				return nil, NewConfigError("path index must be non negative, got %v", index)
			}
			result = append(result, index)
		}
	}
}
