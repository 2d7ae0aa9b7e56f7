package stlc

// Rule names the reduction rule behind one evaluation step.
type Rule int

const (
	RuleIfTrue  Rule = iota // if True then t else e  ~> t
	RuleIfFalse             // if False then t else e ~> e
	RuleIfCond              // reduce the guard of a conditional
	RuleBeta                // (fun x. b) a           ~> b[x := a]
	RuleAppFn               // reduce the head of an application
)

func (r Rule) String() string {
	switch r {
	case RuleIfTrue:
		return "if-true"
	case RuleIfFalse:
		return "if-false"
	case RuleIfCond:
		return "if-cond"
	case RuleBeta:
		return "beta"
	case RuleAppFn:
		return "app-fn"
	}
	return "unknown"
}

// TraceFunc observes evaluation: it is called once per step with the step
// number (starting at 1), the rule that fired and the term it fired on.
type TraceFunc func(step int, rule Rule, redex Term)

// Evaluate reduces term to a value in call-by-name order and reports the
// number of steps taken. Terms that cannot make progress, such as a free
// variable or an application whose head never becomes a function, are
// returned as they are.
func Evaluate(term Term) (Term, int) {
	var m machine
	v := m.eval(term)
	return v, m.steps
}

// EvaluateTrace is Evaluate with fn called on every step.
func EvaluateTrace(term Term, fn TraceFunc) (Term, int) {
	m := machine{trace: fn}
	v := m.eval(term)
	return v, m.steps
}

func (m *machine) step(rule Rule, redex Term) {
	m.steps++
	if m.trace != nil {
		m.trace(m.steps, rule, redex)
	}
}

func (m *machine) eval(term Term) Term {
	for {
		switch t := term.(type) {
		case If:
			switch t.Cond.(type) {
			case True:
				m.step(RuleIfTrue, t)
				term = t.Then
				continue
			case False:
				m.step(RuleIfFalse, t)
				term = t.Else
				continue
			}
			// The guard's own steps are traced before the step that
			// rewrites the conditional, and only if the guard became a literal.
			cond := m.eval(t.Cond)
			switch cond.(type) {
			case True, False:
				m.step(RuleIfCond, t)
				term = If{Cond: cond, Then: t.Then, Else: t.Else}
			default:
				return If{Cond: cond, Then: t.Then, Else: t.Else}
			}
		case App:
			if fn, ok := t.Fn.(Fun); ok {
				m.step(RuleBeta, t)
				term = m.subst(fn.Param, t.Arg, FreeVars(t.Arg), fn.Body)
				continue
			}
			fn := m.eval(t.Fn)
			if _, ok := fn.(Fun); !ok {
				return App{Fn: fn, Arg: t.Arg}
			}
			m.step(RuleAppFn, t)
			term = App{Fn: fn, Arg: t.Arg}
		default:
			return term
		}
	}
}
