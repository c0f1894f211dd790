package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vipcxj/clamps/bounded"
	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/number"
	"github.com/vipcxj/clamps/saturating"
	"github.com/vipcxj/clamps/wrapping"
)

// arithmetic is the method set shared by the wrapping and saturating containers.
type arithmetic[T number.Number] interface {
	Get() T
	Bounds() bounds.Bounds[T]
	Add(x T)
	Sub(x T)
	Mul(x T)
	Div(x T)
	Rem(x T)
	Rebind(min, max T) (bounds.Bounds[T], error)
}

type evaluator func(opts Options, log *logrus.Logger) (string, error)

var evaluators = map[string]map[Policy]evaluator{
	"int":     integer[int](),
	"int8":    integer[int8](),
	"int16":   integer[int16](),
	"int32":   integer[int32](),
	"int64":   integer[int64](),
	"uint":    integer[uint](),
	"uint8":   integer[uint8](),
	"uint16":  integer[uint16](),
	"uint32":  integer[uint32](),
	"uint64":  integer[uint64](),
	"float32": float[float32](),
	"float64": float[float64](),
}

func integer[T number.Integer]() map[Policy]evaluator {
	return map[Policy]evaluator{
		PolicyReject:   reject[T],
		PolicyWrap:     arith(newWrapping[T]),
		PolicySaturate: arith(newSaturating[T]),
	}
}

func float[T number.Float]() map[Policy]evaluator {
	return map[Policy]evaluator{
		PolicyReject:   reject[T],
		PolicySaturate: arith(newSaturating[T]),
	}
}

func newWrapping[T number.Integer](b bounds.Bounds[T], v T) arithmetic[T] {
	c := wrapping.From(b, v)
	return &c
}

func newSaturating[T number.Number](b bounds.Bounds[T], v T) arithmetic[T] {
	c := saturating.From(b, v)
	return &c
}

// Types returns the accepted --type names, sorted.
func Types() []string {
	types := make([]string, 0, len(evaluators))
	for t := range evaluators {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Run evaluates opts and returns the line to print: the final value, or its
// shell assignment when opts.Export is set.
func Run(opts Options, log *logrus.Logger) (string, error) {
	byPolicy, ok := evaluators[opts.Type]
	if !ok {
		return "", fmt.Errorf("unsupported type %q, want one of %s", opts.Type, strings.Join(Types(), ", "))
	}
	eval, ok := byPolicy[opts.Policy]
	if !ok {
		return "", fmt.Errorf("%s does not support %s: a continuous range has no width to wrap around", opts.Policy, opts.Type)
	}
	val, err := eval(opts, log)
	if err != nil {
		return "", err
	}
	if opts.Export == "" {
		return val, nil
	}
	return exportValue(opts.Shell, opts.Export, val)
}

type step[T number.Number] struct {
	op      Op
	operand T
}

func (s step[T]) apply(c arithmetic[T]) {
	switch s.op.Symbol {
	case '+':
		c.Add(s.operand)
	case '-':
		c.Sub(s.operand)
	case '*':
		c.Mul(s.operand)
	case '/':
		c.Div(s.operand)
	case '%':
		c.Rem(s.operand)
	}
}

type input[T number.Number] struct {
	bounds bounds.Bounds[T]
	value  T
	steps  []step[T]
	rebind *bounds.Bounds[T]
}

func parseInput[T number.Number](opts Options) (input[T], error) {
	var in input[T]
	var err error
	if in.bounds, err = bounds.Parse[T](opts.Range); err != nil {
		return in, fmt.Errorf("--range: %w", err)
	}
	if in.value, err = number.Parse[T](opts.Value); err != nil {
		return in, fmt.Errorf("value: %w", err)
	}
	ops, err := ParseOps(opts.Ops)
	if err != nil {
		return in, err
	}
	for _, op := range ops {
		operand, err := number.Parse[T](op.Operand)
		if err != nil {
			return in, fmt.Errorf("op %s: %w", op, err)
		}
		if !number.IsFloat[T]() && operand == 0 && (op.Symbol == '/' || op.Symbol == '%') {
			return in, fmt.Errorf("op %s: integer divide by zero", op)
		}
		in.steps = append(in.steps, step[T]{op: op, operand: operand})
	}
	if opts.Rebind != "" {
		r, err := bounds.Parse[T](opts.Rebind)
		if err != nil {
			return in, fmt.Errorf("--rebind: %w", err)
		}
		in.rebind = &r
	}
	return in, nil
}

func reject[T number.Number](opts Options, log *logrus.Logger) (string, error) {
	in, err := parseInput[T](opts)
	if err != nil {
		return "", err
	}
	if len(in.steps) > 0 {
		return "", fmt.Errorf("%s applies no arithmetic", opts.Policy)
	}
	c, err := bounded.From(in.bounds, in.value)
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"policy": opts.Policy.String(),
		"bounds": c.Bounds().String(),
		"value":  number.Format(c.Get()),
	}).Debug("construct")
	if in.rebind != nil {
		if _, err := c.Rebind(in.rebind.Min(), in.rebind.Max()); err != nil {
			return "", fmt.Errorf("--rebind: %w", err)
		}
		log.WithField("bounds", c.Bounds().String()).Debug("rebind")
	}
	return number.Format(c.Get()), nil
}

func arith[T number.Number](build func(bounds.Bounds[T], T) arithmetic[T]) evaluator {
	return func(opts Options, log *logrus.Logger) (string, error) {
		in, err := parseInput[T](opts)
		if err != nil {
			return "", err
		}
		c := build(in.bounds, in.value)
		log.WithFields(logrus.Fields{
			"policy": opts.Policy.String(),
			"bounds": c.Bounds().String(),
			"value":  number.Format(c.Get()),
		}).Debug("construct")
		for _, s := range in.steps {
			s.apply(c)
			log.WithFields(logrus.Fields{
				"op":      s.op.Name(),
				"operand": number.Format(s.operand),
				"value":   number.Format(c.Get()),
			}).Debug("step")
		}
		if in.rebind != nil {
			if _, err := c.Rebind(in.rebind.Min(), in.rebind.Max()); err != nil {
				return "", fmt.Errorf("--rebind: %w", err)
			}
			log.WithFields(logrus.Fields{
				"bounds": c.Bounds().String(),
				"value":  number.Format(c.Get()),
			}).Debug("rebind")
		}
		return number.Format(c.Get()), nil
	}
}
