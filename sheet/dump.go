package sheet

import (
	"sct/utils/debug"
)

// Dump returns human readable listing of the style sheet.
func (s *StyleSheet) Dump(names ...string) string {
	tw := debug.NewTreeWriter()
	if len(names) == 0 {
		names = s.Names()
	}
	for _, name := range names {
		list, ok := s.Style(name)
		if !ok {
			tw.Line(0, "%s (not defined)", name)
			continue
		}
		d := tw.Open(0, name)
		for _, a := range list {
			tw.Field(d, a.Path.String(), a.Value)
		}
	}
	return tw.String()
}
