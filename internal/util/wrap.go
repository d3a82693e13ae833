package util

import (
	"regexp"
	"strings"
)

var lineBreakRegex = regexp.MustCompile("[\r\n]+")

var listSeparator = regexp.MustCompile("\\s*,\\s*")

// Wrap will insert a line break every width characters. Zero or negative width leaves the text as-is.
func Wrap(buf []byte, width int) (res []byte) {
	if width <= 0 {
		return buf
	}
	for len(buf) > width {
		res = append(res, buf[0:width]...)
		res = append(res, '\n')
		buf = buf[width:]
	}
	res = append(res, buf...)
	return
}

// JoinLines will remove the line breaks from the given text
func JoinLines(buf []byte) []byte {
	return lineBreakRegex.ReplaceAll(buf, nil)
}

// SplitList will take comma-separated lists and return the values (without potential blanks in between)
func SplitList(values []string) (res []string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		res = append(res, listSeparator.Split(v, -1)...)
	}
	return
}
