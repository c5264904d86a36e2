package errutil

import (
	"fmt"
)

// debug enables the Bug* assertions. Flip on when chasing a corruption.
const debug = false

func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}
