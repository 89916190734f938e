package jsonshared

import "fmt"

// errf formats a decode error the same way loader.decodeErrorf does
// ("<context>: <detail>"), without importing the loader package (which
// itself imports jsonshared).
func errf(context, format string, args ...any) error {
	return fmt.Errorf("%s: %s", context, fmt.Sprintf(format, args...))
}
