package matrixexpr

import (
	"encoding/json"
	"fmt"

	"github.com/njchilds90/symmatrix/scalar"
)

// toJSONNode returns the tagged-union map representation for a node, following
// gosymbol.go's toJSON()/FromJSON() convention: a "type" discriminator
// plus per-kind fields. Scalar-valued fields (sizes, diagonal/dense cell
// entries) embed scalar.ToJSON's own tagged-union maps rather than a
// stringified expression, so the whole document nests uniformly.
func toJSONNode(e MatrixExpr) map[string]interface{} {
	switch v := e.(type) {
	case *MatrixSymbol:
		return map[string]interface{}{
			"type": "matrix_symbol",
			"name": v.name,
			"rows": scalar.ToJSON(v.rows),
			"cols": scalar.ToJSON(v.cols),
		}
	case *IdentityMatrix:
		return map[string]interface{}{
			"type": "identity_matrix",
			"size": scalar.ToJSON(v.size),
		}
	case *ZeroMatrix:
		return map[string]interface{}{
			"type": "zero_matrix",
			"rows": scalar.ToJSON(v.rows),
			"cols": scalar.ToJSON(v.cols),
		}
	case *DiagonalMatrix:
		diag := make([]map[string]interface{}, len(v.diag))
		for i, d := range v.diag {
			diag[i] = scalar.ToJSON(d)
		}
		return map[string]interface{}{"type": "diagonal_matrix", "diag": diag}
	case *ImmutableDenseMatrix:
		data := make([]map[string]interface{}, len(v.data))
		for i, d := range v.data {
			data[i] = scalar.ToJSON(d)
		}
		return map[string]interface{}{
			"type": "immutable_dense_matrix",
			"rows": v.rows,
			"cols": v.cols,
			"data": data,
		}
	case *MatrixAdd:
		terms := make([]map[string]interface{}, len(v.terms))
		for i, t := range v.terms {
			terms[i] = toJSONNode(t)
		}
		return map[string]interface{}{"type": "matrix_add", "terms": terms}
	case *MatrixMul:
		factors := make([]map[string]interface{}, len(v.factors))
		for i, f := range v.factors {
			factors[i] = toJSONNode(f)
		}
		return map[string]interface{}{
			"type":    "matrix_mul",
			"scalar":  scalar.ToJSON(v.scalar),
			"factors": factors,
		}
	case *MatrixDerivative:
		names := make([]string, len(v.vars))
		for i, s := range v.vars {
			names[i] = s.Name()
		}
		return map[string]interface{}{
			"type": "matrix_derivative",
			"arg":  toJSONNode(v.arg),
			"vars": names,
		}
	default:
		panic(fmt.Sprintf("matrixexpr: toJSON: unhandled node kind %T", e))
	}
}

// ToJSON serializes a matrix expression to its JSON-tagged-union string
// form, mirroring gosymbol.go's ToJSON(e Expr).
func ToJSON(e MatrixExpr) (string, error) {
	b, err := json.Marshal(toJSONNode(e))
	return string(b), err
}

func subObj(typ, field string, data map[string]interface{}) (map[string]interface{}, error) {
	v, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q", typ, field)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: %q must be an object", typ, field)
	}
	return m, nil
}

func subObjArray(typ, field string, data map[string]interface{}) ([]map[string]interface{}, error) {
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

func subString(typ, field string, data map[string]interface{}) (string, error) {
	v, ok := data[field]
	if !ok {
		return "", fmt.Errorf("%s: missing %q", typ, field)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
	}
	return s, nil
}

// FromJSON rebuilds a matrix expression from the tagged-union map shape
// ToJSON produces. Compound nodes are rebuilt through the canonicalizing
// constructors (MatrixAddOf, MatrixMulOf, MatrixDerivativeOf), so decoding
// a previously-serialized expression re-canonicalizes it rather than
// trusting the wire form blindly.
func FromJSON(data map[string]interface{}) (MatrixExpr, error) {
	if data == nil {
		return nil, fmt.Errorf("matrixexpr: expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("matrixexpr: missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("matrixexpr: 'type' must be a non-empty string")
	}

	switch typ {
	case "matrix_symbol":
		name, err := subString(typ, "name", data)
		if err != nil {
			return nil, err
		}
		rowsM, err := subObj(typ, "rows", data)
		if err != nil {
			return nil, err
		}
		colsM, err := subObj(typ, "cols", data)
		if err != nil {
			return nil, err
		}
		rows, err := scalar.FromJSON(rowsM)
		if err != nil {
			return nil, fmt.Errorf("matrix_symbol: rows: %w", err)
		}
		cols, err := scalar.FromJSON(colsM)
		if err != nil {
			return nil, fmt.Errorf("matrix_symbol: cols: %w", err)
		}
		return NewMatrixSymbol(name, rows, cols), nil

	case "identity_matrix":
		sizeM, err := subObj(typ, "size", data)
		if err != nil {
			return nil, err
		}
		size, err := scalar.FromJSON(sizeM)
		if err != nil {
			return nil, fmt.Errorf("identity_matrix: size: %w", err)
		}
		return NewIdentityMatrix(size), nil

	case "zero_matrix":
		rowsM, err := subObj(typ, "rows", data)
		if err != nil {
			return nil, err
		}
		colsM, err := subObj(typ, "cols", data)
		if err != nil {
			return nil, err
		}
		rows, err := scalar.FromJSON(rowsM)
		if err != nil {
			return nil, fmt.Errorf("zero_matrix: rows: %w", err)
		}
		cols, err := scalar.FromJSON(colsM)
		if err != nil {
			return nil, fmt.Errorf("zero_matrix: cols: %w", err)
		}
		return NewZeroMatrix(rows, cols), nil

	case "diagonal_matrix":
		objs, err := subObjArray(typ, "diag", data)
		if err != nil {
			return nil, err
		}
		diag := make([]scalar.Expr, len(objs))
		for i, o := range objs {
			e, err := scalar.FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("diagonal_matrix: diag[%d]: %w", i, err)
			}
			diag[i] = e
		}
		return NewDiagonalMatrix(diag...), nil

	case "immutable_dense_matrix":
		rowsAny, ok := data["rows"]
		if !ok {
			return nil, fmt.Errorf("immutable_dense_matrix: missing 'rows'")
		}
		colsAny, ok := data["cols"]
		if !ok {
			return nil, fmt.Errorf("immutable_dense_matrix: missing 'cols'")
		}
		rowsF, ok := rowsAny.(float64)
		if !ok {
			return nil, fmt.Errorf("immutable_dense_matrix: 'rows' must be a number")
		}
		colsF, ok := colsAny.(float64)
		if !ok {
			return nil, fmt.Errorf("immutable_dense_matrix: 'cols' must be a number")
		}
		objs, err := subObjArray(typ, "data", data)
		if err != nil {
			return nil, err
		}
		cells := make([]scalar.Expr, len(objs))
		for i, o := range objs {
			e, err := scalar.FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("immutable_dense_matrix: data[%d]: %w", i, err)
			}
			cells[i] = e
		}
		return NewImmutableDenseMatrix(int(rowsF), int(colsF), cells), nil

	case "matrix_add":
		objs, err := subObjArray(typ, "terms", data)
		if err != nil {
			return nil, err
		}
		terms := make([]MatrixExpr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("matrix_add: terms[%d]: %w", i, err)
			}
			terms[i] = e
		}
		return MatrixAddOf(terms...)

	case "matrix_mul":
		scalarM, err := subObj(typ, "scalar", data)
		if err != nil {
			return nil, err
		}
		coef, err := scalar.FromJSON(scalarM)
		if err != nil {
			return nil, fmt.Errorf("matrix_mul: scalar: %w", err)
		}
		objs, err := subObjArray(typ, "factors", data)
		if err != nil {
			return nil, err
		}
		factors := make([]MatrixExpr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("matrix_mul: factors[%d]: %w", i, err)
			}
			factors[i] = e
		}
		return MatrixMulOf(coef, factors...)

	case "matrix_derivative":
		argM, err := subObj(typ, "arg", data)
		if err != nil {
			return nil, err
		}
		arg, err := FromJSON(argM)
		if err != nil {
			return nil, fmt.Errorf("matrix_derivative: arg: %w", err)
		}
		varsAny, ok := data["vars"]
		if !ok {
			return nil, fmt.Errorf("matrix_derivative: missing 'vars'")
		}
		varsRaw, ok := varsAny.([]interface{})
		if !ok {
			return nil, fmt.Errorf("matrix_derivative: 'vars' must be an array")
		}
		vars := make([]scalar.Expr, len(varsRaw))
		for i, v := range varsRaw {
			name, ok := v.(string)
			if !ok || name == "" {
				return nil, fmt.Errorf("matrix_derivative: vars[%d] must be a non-empty string", i)
			}
			vars[i] = scalar.NewSymbol(name)
		}
		return MatrixDerivativeOf(arg, vars...)

	default:
		return nil, fmt.Errorf("matrixexpr: unknown expression type %q", typ)
	}
}
