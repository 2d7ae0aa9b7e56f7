package compiler

import "errors"

// ErrStepLimit is returned by Reduce when the step budget runs out.
var ErrStepLimit = errors.New("compiler: combinator reduction step limit reached")

// DefaultStepLimit bounds Reduce when the caller passes a limit <= 0.
const DefaultStepLimit = 1 << 20

type reducer struct {
	steps int
	limit int
}

// Reduce rewrites c to normal form in normal order: the head redex first,
// then the arguments of a stuck head from left to right. It returns the
// normal form and the number of combinator steps taken.
func Reduce(c Comb, limit int) (Comb, int, error) {
	if limit <= 0 {
		limit = DefaultStepLimit
	}
	r := reducer{limit: limit}
	res, err := r.normalize(c)
	return res, r.steps, err
}

func unwind(c Comb) (Comb, []Comb) {
	var args []Comb
	for {
		app, ok := c.(CApp)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		c = app.Fun
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return c, args
}

func fire(p Prim, a []Comb) Comb {
	switch p {
	case I:
		return a[0]
	case K:
		return a[0]
	case S:
		return Apply(a[0], a[2], CApp{Fun: a[1], Arg: a[2]})
	case B:
		return CApp{Fun: a[0], Arg: CApp{Fun: a[1], Arg: a[2]}}
	case C:
		return Apply(a[0], a[2], a[1])
	}
	panic("compiler: unknown combinator " + string(p))
}

// whnf reduces head redexes until the head is a reference or a
// combinator short of arguments.
func (r *reducer) whnf(c Comb) (Comb, error) {
	for {
		head, args := unwind(c)
		p, ok := head.(Prim)
		if !ok || len(args) < p.Arity() {
			return c, nil
		}
		if r.steps >= r.limit {
			return c, ErrStepLimit
		}
		r.steps++
		n := p.Arity()
		c = Apply(fire(p, args[:n]), args[n:]...)
	}
}

func (r *reducer) normalize(c Comb) (Comb, error) {
	c, err := r.whnf(c)
	if err != nil {
		return c, err
	}
	head, args := unwind(c)
	for i, a := range args {
		if args[i], err = r.normalize(a); err != nil {
			return Apply(head, args...), err
		}
	}
	return Apply(head, args...), nil
}
