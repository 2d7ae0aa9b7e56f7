package stlc

import (
	"fmt"
	"strings"
)

// IteName is the prefix function conditionals are printed as. A call reads
// unambiguously next to the block syntax of consumers that embed the output.
const IteName = "ite"

// Binding strength of the printer's expression forms, loosest first.
const (
	precLambda = iota
	precArrow
	precApply
	precAtom
)

// expr is the printer's intermediate tree: atoms, lambda binders, prefix
// application and right-associative infix operators.
type expr interface {
	prec() int
}

type atom string

type lambda struct {
	binder string
	body   expr
}

type apply struct {
	fn   expr
	args []expr
}

type infix struct {
	op          string
	left, right expr
}

func (atom) prec() int   { return precAtom }
func (lambda) prec() int { return precLambda }
func (apply) prec() int  { return precApply }
func (infix) prec() int  { return precArrow }

func render(b *strings.Builder, e expr, outer int) {
	if e.prec() < outer {
		b.WriteByte('(')
		render(b, e, precLambda)
		b.WriteByte(')')
		return
	}
	switch e := e.(type) {
	case atom:
		b.WriteString(string(e))
	case lambda:
		b.WriteByte('\\')
		b.WriteString(e.binder)
		b.WriteString(" -> ")
		render(b, e.body, precLambda)
	case apply:
		render(b, e.fn, precApply)
		for _, arg := range e.args {
			b.WriteByte(' ')
			render(b, arg, precAtom)
		}
	case infix:
		render(b, e.left, precArrow+1)
		b.WriteByte(' ')
		b.WriteString(e.op)
		b.WriteByte(' ')
		render(b, e.right, precArrow)
	}
}

func typeExpr(ty Type) expr {
	switch t := ty.(type) {
	case TyUnit:
		return atom("()")
	case TyBool:
		return atom("Bool")
	case TyFun:
		return infix{op: "->", left: typeExpr(t.Dom), right: typeExpr(t.Cod)}
	case nil:
		return atom("?")
	default:
		panic(fmt.Sprintf("stlc: unknown type %T", ty))
	}
}

func termExpr(term Term, annotate bool) expr {
	switch t := term.(type) {
	case Unit:
		return atom("()")
	case True:
		return atom("True")
	case False:
		return atom("False")
	case Var:
		return atom(t.Name)
	case Fun:
		binder := t.Param
		if annotate {
			binder = "(" + t.Param + " : " + PrintType(t.Type) + ")"
		}
		return lambda{binder: binder, body: termExpr(t.Body, annotate)}
	case If:
		return apply{fn: atom(IteName), args: []expr{
			termExpr(t.Cond, annotate),
			termExpr(t.Then, annotate),
			termExpr(t.Else, annotate),
		}}
	case App:
		return apply{fn: termExpr(t.Fn, annotate), args: []expr{termExpr(t.Arg, annotate)}}
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// Print renders term in functional notation:
//
//	\x -> x              function, unannotated
//	\(x : Bool) -> x     function, annotated
//	ite c t e            conditional
//	f a b                application, left associative
//	()  True  False      literals
func Print(term Term, annotate bool) string {
	var b strings.Builder
	render(&b, termExpr(term, annotate), precLambda)
	return b.String()
}

// PrintType renders ty; function arrows associate to the right.
func PrintType(ty Type) string {
	var b strings.Builder
	render(&b, typeExpr(ty), precLambda)
	return b.String()
}
