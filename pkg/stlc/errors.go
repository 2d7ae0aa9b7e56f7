package stlc

import "fmt"

// TypeError is implemented by every error Typecheck returns.
type TypeError interface {
	error
	typeError()
}

// UnboundVariableError indicates a variable with no binding in the context.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

func NewUnboundVariableError(name string) *UnboundVariableError {
	return &UnboundVariableError{Name: name}
}

// BadGuardError indicates a conditional whose guard is not a boolean.
type BadGuardError struct {
	Cond Term
	Type Type
}

func (e *BadGuardError) Error() string {
	return fmt.Sprintf("guard of conditional is not a boolean: %s has type %s", e.Cond, e.Type)
}

func NewBadGuardError(cond Term, ty Type) *BadGuardError {
	return &BadGuardError{Cond: cond, Type: ty}
}

// BranchMismatchError indicates a conditional whose branches have different types.
type BranchMismatchError struct {
	Then     Term
	Else     Term
	ThenType Type
	ElseType Type
}

func (e *BranchMismatchError) Error() string {
	return fmt.Sprintf("arms of conditional have different types: %s has type %s, %s has type %s",
		e.Then, e.ThenType, e.Else, e.ElseType)
}

func NewBranchMismatchError(then, els Term, thenType, elseType Type) *BranchMismatchError {
	return &BranchMismatchError{Then: then, Else: els, ThenType: thenType, ElseType: elseType}
}

// NotApplicableError indicates an application whose left side is not a function.
type NotApplicableError struct {
	Fn   Term
	Type Type
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("arrow type expected: %s has type %s", e.Fn, e.Type)
}

func NewNotApplicableError(fn Term, ty Type) *NotApplicableError {
	return &NotApplicableError{Fn: fn, Type: ty}
}

// ArgMismatchError indicates a function applied to an argument of the wrong type.
type ArgMismatchError struct {
	Fn   Term
	Arg  Term
	Want Type
	Got  Type
}

func (e *ArgMismatchError) Error() string {
	return fmt.Sprintf("parameter type mismatch: %s expects %s, but %s has type %s", e.Fn, e.Want, e.Arg, e.Got)
}

func NewArgMismatchError(fn, arg Term, want, got Type) *ArgMismatchError {
	return &ArgMismatchError{Fn: fn, Arg: arg, Want: want, Got: got}
}

func (*UnboundVariableError) typeError() {}
func (*BadGuardError) typeError()        {}
func (*BranchMismatchError) typeError()  {}
func (*NotApplicableError) typeError()   {}
func (*ArgMismatchError) typeError()     {}
