package util

import "strings"

// FileExtension returns the suffix of the final path element of name, dot included.
// Names without a dot, names ending in a dot, and dot-files such as ".env" have no
// extension. Both slash styles are treated as separators so the result never
// contains one.
func FileExtension(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return ""
	}
	if strings.Trim(name[:dot], ".") == "" {
		return ""
	}
	return name[dot:]
}
