package binshared

import "fmt"

func errf(context, format string, args ...any) error {
	return fmt.Errorf("%s: %s", context, fmt.Sprintf(format, args...))
}
