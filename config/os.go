package config

import (
	"os"
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes file name out of arbitrary text, usually expanded
// render name template. Characters not allowed by the OS are removed,
// white space is replaced with underscores and leading dots are dropped.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		switch {
		case sym == 0 || strings.ContainsRune(forbiddenChars+string(os.PathSeparator)+string(os.PathListSeparator), sym):
			return -1
		case unicode.IsSpace(sym):
			return '_'
		}
		return sym
	}, in)
	out = strings.TrimLeft(out, ".")
	if len(out) == 0 {
		out = badFileName
	}
	return out
}

// colorDisabled reports whether user asked for plain output, see
// https://no-color.org.
func colorDisabled() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
