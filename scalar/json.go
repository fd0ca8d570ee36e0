package scalar

import (
	"fmt"
	"math/big"
)

// toJSON returns a tagged-union map representation of the expression, the
// same shape gosymbol.go's toJSON()/FromJSON() pair uses: a "type"
// discriminator plus per-kind fields, encodable with encoding/json and
// rebuildable by FromJSON without a separate schema.
func (n *Num) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": n.String()}
}

func (s *Symbol) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "sym", "name": s.name}
}

func (a *Add) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(a.terms))
	for i, t := range a.terms {
		ts[i] = toJSON(t)
	}
	return map[string]interface{}{"type": "add", "terms": ts}
}

func (m *Mul) toJSON() map[string]interface{} {
	fs := make([]map[string]interface{}, len(m.factors))
	for i, f := range m.factors {
		fs[i] = toJSON(f)
	}
	return map[string]interface{}{"type": "mul", "factors": fs}
}

// toJSON dispatches on concrete type since Expr itself carries no toJSON
// method — keeping the interface limited to the algebra operations spec.md
// names and the JSON shape a separate, additive concern.
func toJSON(e Expr) map[string]interface{} {
	switch v := e.(type) {
	case *Num:
		return v.toJSON()
	case *Symbol:
		return v.toJSON()
	case *Add:
		return v.toJSON()
	case *Mul:
		return v.toJSON()
	default:
		panic(fmt.Sprintf("scalar: toJSON: unhandled expression kind %T", e))
	}
}

// ToJSON returns the JSON-tagged-union map for expr, for embedding inside a
// larger document (matrixexpr.ToJSON embeds scalar subexpressions this way).
func ToJSON(expr Expr) map[string]interface{} { return toJSON(expr) }

// FromJSON rebuilds a scalar expression from the tagged-union map shape
// ToJSON produces.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("scalar: expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("scalar: missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("scalar: 'type' must be a non-empty string")
	}

	subObjArray := func(field string) ([]map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]map[string]interface{}, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			out[i] = m
		}
		return out, nil
	}

	switch typ {
	case "num":
		valAny, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("num: missing 'value'")
		}
		val, ok := valAny.(string)
		if !ok || val == "" {
			return nil, fmt.Errorf("num: 'value' must be a non-empty string")
		}
		r := new(big.Rat)
		if _, ok := r.SetString(val); !ok {
			return nil, fmt.Errorf("num: invalid value %q", val)
		}
		return &Num{val: r}, nil

	case "sym":
		nameAny, ok := data["name"]
		if !ok {
			return nil, fmt.Errorf("sym: missing 'name'")
		}
		name, ok := nameAny.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("sym: 'name' must be a non-empty string")
		}
		return NewSymbol(name), nil

	case "add":
		objs, err := subObjArray("terms")
		if err != nil {
			return nil, err
		}
		terms := make([]Expr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("add: terms[%d]: %w", i, err)
			}
			terms[i] = e
		}
		return AddOf(terms...), nil

	case "mul":
		objs, err := subObjArray("factors")
		if err != nil {
			return nil, err
		}
		factors := make([]Expr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("mul: factors[%d]: %w", i, err)
			}
			factors[i] = e
		}
		return MulOf(factors...), nil

	default:
		return nil, fmt.Errorf("unknown scalar expression type %q", typ)
	}
}
