package shared

import "strings"

//FirstNotEmpty returns first non empty value
func FirstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

//TrimPair removes surrounding begin/end bytes from trimmed text
func TrimPair(text string, begin, end byte) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if text[0] == begin {
		text = text[1:]
		if len(text) > 0 && text[len(text)-1] == end {
			text = text[:len(text)-1]
		}
	}
	return text
}
