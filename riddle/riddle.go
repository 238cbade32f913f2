package riddle

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvlsearch/core"
)

var (
	// ErrBadRiddle indicates text that does not follow the riddle grammar,
	// or numbers outside the riddle's domain.
	ErrBadRiddle = errors.New("riddle: malformed riddle")

	// ErrBadOperation indicates an operation that can never change a value
	// (*0, *1, +0, -0) or an unknown operator.
	ErrBadOperation = errors.New("riddle: invalid operation")
)

// OpKind is the operator of an Operation.
type OpKind byte

// Operators.
const (
	Multiply OpKind = '*'
	Add      OpKind = '+'
	Subtract OpKind = '-'
)

// Operation is one move: apply Kind with Operand to the current value.
type Operation struct {
	Kind    OpKind
	Operand int
}

// Apply returns the value after applying o to x.
func (o Operation) Apply(x int) int {
	switch o.Kind {
	case Multiply:
		return x * o.Operand
	case Add:
		return x + o.Operand
	case Subtract:
		return x - o.Operand
	default:
		return x
	}
}

// String renders o the way it is written in a riddle, e.g. "*2".
func (o Operation) String() string {
	return string(rune(o.Kind)) + strconv.Itoa(o.Operand)
}

func (o Operation) validate() error {
	switch o.Kind {
	case Multiply:
		if o.Operand < 2 {
			return fmt.Errorf("%w: %s", ErrBadOperation, o)
		}
	case Add, Subtract:
		if o.Operand < 1 {
			return fmt.Errorf("%w: %s", ErrBadOperation, o)
		}
	default:
		return fmt.Errorf("%w: operator %q", ErrBadOperation, rune(o.Kind))
	}

	return nil
}

// Riddle is an immutable number puzzle implementing core.Graph[int].
type Riddle struct {
	from, to int
	ceiling  int
	ops      []Operation

	maxFactor int // largest multiplier, 0 if none
	maxAdd    int // largest increment, 0 if none
	maxSub    int // largest decrement, 0 if none
	id        core.Identity[int]
}

// DefaultCeiling is the domain ceiling used when none is given. It leaves
// room above both endpoints for one application of the strongest
// multiplication followed by the largest increment and decrement, and is
// never below 4·max(from, to) + 16.
func DefaultCeiling(from, to int, ops []Operation) int {
	factor, add, sub := 1, 0, 0
	for _, o := range ops {
		switch o.Kind {
		case Multiply:
			factor = max(factor, o.Operand)
		case Add:
			add = max(add, o.Operand)
		case Subtract:
			sub = max(sub, o.Operand)
		}
	}
	top := max(from, to)
	if top > (math.MaxInt/2-add-sub-16)/max(factor, 4) {
		return math.MaxInt
	}

	return max(4*top+16, top*factor+add+sub+16)
}

// New builds a Riddle. A ceiling of 0 selects DefaultCeiling.
func New(from, to int, ops []Operation, ceiling int) (*Riddle, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: no operations", ErrBadRiddle)
	}
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("%w: negative endpoint", ErrBadRiddle)
	}

	r := &Riddle{
		from: from,
		to:   to,
		ops:  slices.Clone(ops),
		id:   core.ComparableIdentity[int](),
	}
	for _, o := range ops {
		if err := o.validate(); err != nil {
			return nil, err
		}
		switch o.Kind {
		case Multiply:
			r.maxFactor = max(r.maxFactor, o.Operand)
		case Add:
			r.maxAdd = max(r.maxAdd, o.Operand)
		case Subtract:
			r.maxSub = max(r.maxSub, o.Operand)
		}
	}
	if ceiling == 0 {
		ceiling = DefaultCeiling(from, to, ops)
	}
	if ceiling < max(from, to) {
		return nil, fmt.Errorf("%w: ceiling %d below endpoints", ErrBadRiddle, ceiling)
	}
	// Every neighbor of a value in [0, ceiling] must be computable without overflow.
	if ceiling > (math.MaxInt-r.maxAdd)/max(r.maxFactor, 1) {
		return nil, fmt.Errorf("%w: ceiling %d too large", ErrBadRiddle, ceiling)
	}
	r.ceiling = ceiling

	return r, nil
}

// Parse reads a riddle such as "from 11 to 25 using *2, -3 within 100".
func Parse(text string) (*Riddle, error) {
	expr, err := parseRiddleExpr.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRiddle, err)
	}

	ops := make([]Operation, 0, len(expr.Ops))
	for _, o := range expr.Ops {
		kind := OpKind(o.Kind[0])
		if o.Kind == "x" {
			kind = Multiply
		}
		ops = append(ops, Operation{Kind: kind, Operand: o.Operand})
	}
	ceiling := 0
	if expr.Ceiling != nil {
		if expr.Ceiling.Value == 0 {
			return nil, fmt.Errorf("%w: ceiling must be positive", ErrBadRiddle)
		}
		ceiling = expr.Ceiling.Value
	}

	return New(expr.From, expr.To, ops, ceiling)
}

// Start returns the starting value.
func (r *Riddle) Start() int { return r.from }

// Ceiling returns the largest value in the domain.
func (r *Riddle) Ceiling() int { return r.ceiling }

// Ops returns a copy of the operations in declaration order.
func (r *Riddle) Ops() []Operation { return slices.Clone(r.ops) }

// Identity returns the node identity for riddle values.
func (r *Riddle) Identity() core.Identity[int] { return r.id }

// String renders r in riddle syntax.
func (r *Riddle) String() string {
	s := fmt.Sprintf("from %d to %d using ", r.from, r.to)
	for i, o := range r.ops {
		if i > 0 {
			s += ", "
		}
		s += o.String()
	}

	return s + fmt.Sprintf(" within %d", r.ceiling)
}

// Explain returns the operation used for every step of path.
// The first matching operation in declaration order is reported.
func (r *Riddle) Explain(path []int) ([]Operation, error) {
	if len(path) == 0 {
		return nil, core.ErrEmptyPath
	}
	out := make([]Operation, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		idx := slices.IndexFunc(r.ops, func(o Operation) bool { return o.Apply(path[i-1]) == path[i] })
		if idx < 0 {
			return nil, fmt.Errorf("%w: step %d→%d", core.ErrNotAnEdge, path[i-1], path[i])
		}
		out = append(out, r.ops[idx])
	}

	return out, nil
}

// End implements core.Graph.
func (r *Riddle) End() int { return r.to }

// MoveCost implements core.Graph; every operation costs one move.
func (r *Riddle) MoveCost(_, _ int) int { return 1 }

// Neighbors implements core.Graph: each operation's result in declaration
// order, skipping results outside [0, Ceiling] and results equal to a.
func (r *Riddle) Neighbors(a int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, o := range r.ops {
			v := o.Apply(a)
			if v < 0 || v > r.ceiling || v == a {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// HeuristicToEnd implements core.Graph. Off the target it is at least 1.
func (r *Riddle) HeuristicToEnd(a int) int {
	switch {
	case a == r.to:
		return 0
	case a > r.to:
		// only decrements lower a value
		if r.maxSub == 0 {
			return 1
		}

		return max(1, ceilDiv(a-r.to, r.maxSub))
	default:
		return max(1, r.climbSteps(a))
	}
}

// climbSteps counts applications of the fastest growth map
// x ↦ max(maxFactor·x, x+maxAdd) needed to reach the target from a.
// Additive stretches are skipped in one jump.
func (r *Riddle) climbSteps(a int) int {
	steps := 0
	for x := a; x < r.to; {
		switch {
		case r.maxFactor > 1 && (r.maxAdd == 0 || (r.maxFactor-1)*x > r.maxAdd):
			if x == 0 {
				return steps
			}
			x *= r.maxFactor
			steps++
		case r.maxAdd > 0:
			limit := r.to
			if r.maxFactor > 1 {
				limit = min(limit, r.maxAdd/(r.maxFactor-1)+1)
			}
			n := ceilDiv(limit-x, r.maxAdd)
			x += n * r.maxAdd
			steps += n
		default:
			return steps
		}
	}

	return steps
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
