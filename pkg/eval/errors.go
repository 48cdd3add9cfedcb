package eval

import "fmt"

// UnknownFunctionError reports a call to a function the evaluator does
// not implement.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// BadArgumentError reports a function argument of the wrong shape.
type BadArgumentError struct {
	Func   string
	Reason string
}

func (e *BadArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Func, e.Reason)
}

// BadCastError reports an unsupported CAST.
type BadCastError struct {
	From string
	To   string
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("cannot cast %s to %s", e.From, e.To)
}
