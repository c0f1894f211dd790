package cli

import (
	"fmt"
	"strings"
)

// Op is one arithmetic step such as "+5" or "%3".
type Op struct {
	Symbol  byte
	Operand string
}

const opSymbols = "+-*/%"

func (o Op) String() string {
	return string(o.Symbol) + o.Operand
}

// Name returns the container method the op maps to.
func (o Op) Name() string {
	switch o.Symbol {
	case '+':
		return "add"
	case '-':
		return "sub"
	case '*':
		return "mul"
	case '/':
		return "div"
	default:
		return "rem"
	}
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // 自动丢弃空片段
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseOps parses the --op values in order. Each value may hold a comma
// separated list.
func ParseOps(raw []string) ([]Op, error) {
	var ops []Op
	for _, r := range raw {
		for _, tok := range splitAndTrim(r, ",") {
			if tok == "" {
				continue
			}
			if len(tok) < 2 || !strings.ContainsRune(opSymbols, rune(tok[0])) {
				return nil, fmt.Errorf("invalid op %q: want one of +N -N *N /N %%N", tok)
			}
			ops = append(ops, Op{Symbol: tok[0], Operand: strings.TrimSpace(tok[1:])})
		}
	}
	return ops, nil
}
