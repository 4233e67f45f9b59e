package notify

import (
	"fmt"
	"io"
)

type (
	//PanicError represents a recovered listener panic
	PanicError struct {
		Value      interface{}
		StackTrace string
	}

	//PanicHandler handles recovered listener panic
	PanicHandler func(err *PanicError)
)

func (e *PanicError) Error() string {
	return fmt.Sprintf("listener panic: %v", e.Value)
}

// LogPanics returns a handler writing recovered panics to w
func LogPanics(w io.Writer, verbose bool) PanicHandler {
	return func(err *PanicError) {
		if err == nil {
			return
		}
		fmt.Fprintf(w, "[watchable panic] %v\n", err.Value)
		if verbose && err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	}
}
