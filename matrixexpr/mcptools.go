package matrixexpr

import (
	"encoding/json"
	"fmt"

	"github.com/njchilds90/symmatrix/scalar"
)

// ToolRequest and ToolResponse mirror gosymbol.go's own tool-call shape
// exactly, so cmd/mcp-server can reuse the same request/response envelope
// regardless of whether the underlying package is the scalar kernel or
// this matrix algebra.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a single tool invocation against the matrix
// algebra's canonicalizing constructors. Each case extracts its typed
// parameters from the request's loosely-typed params map and reports
// errors through ToolResponse.Error rather than a Go error return, the
// same convention gosymbol.go's HandleToolCall uses so the HTTP layer
// never needs to translate error types itself.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (MatrixExpr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getExprList := func(key string) ([]MatrixExpr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]MatrixExpr, len(raw))
		for i, r := range raw {
			m, ok := r.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be expression object", key, i)
			}
			e, err := FromJSON(m)
			if err != nil {
				return nil, err
			}
			result[i] = e
		}
		return result, nil
	}
	getScalar := func(key string) (scalar.Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return scalar.One, nil
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return scalar.FromJSON(val)
	}
	getStrings := func(key string) ([]string, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		result := make([]string, len(raw))
		for i, r := range raw {
			s, ok := r.(string)
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be string", key, i)
			}
			result[i] = s
		}
		return result, nil
	}
	respond := func(e MatrixExpr) ToolResponse {
		return ToolResponse{Result: toJSONNode(e), String: e.String()}
	}
	respondScalar := func(e scalar.Expr) ToolResponse {
		return ToolResponse{Result: scalar.ToJSON(e), String: e.String()}
	}

	switch req.Tool {
	case "matrix_add":
		terms, err := getExprList("terms")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		result, err := MatrixAddOf(terms...)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(result)

	case "matrix_mul":
		factors, err := getExprList("factors")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		coef, err := getScalar("scalar")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		result, err := MatrixMulOf(coef, factors...)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(result)

	case "trace":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respondScalar(TraceOf(e))

	case "matrix_derivative":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		names, err := getStrings("vars")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		vars := make([]scalar.Expr, len(names))
		for i, n := range names {
			vars[i] = scalar.NewSymbol(n)
		}
		result, err := MatrixDerivativeOf(e, vars...)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(result)

	case "size":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		rows, cols := Size(e)
		return ToolResponse{
			Result: map[string]interface{}{"rows": scalar.ToJSON(rows), "cols": scalar.ToJSON(cols)},
			String: fmt.Sprintf("%s x %s", rows.String(), cols.String()),
		}

	case "mcp_spec":
		return ToolResponse{Result: json.RawMessage(MCPToolSpec())}

	default:
		return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
	}
}

// MCPToolSpec returns a JSON tool schema document in the shape ts()
// produces in gosymbol.go, naming every canonicalizing constructor this
// package exposes.
func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("matrix_add", "Canonicalize a sum of matrix expressions", []string{"terms"}, map[string]string{"terms": "array"}),
		ts("matrix_mul", "Canonicalize a product of matrix expressions", []string{"factors"}, map[string]string{"factors": "array", "scalar": "object"}),
		ts("trace", "Canonicalize the trace of a matrix expression", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("matrix_derivative", "Differentiate a matrix expression with respect to one or more scalar symbols", []string{"expr", "vars"}, map[string]string{"expr": "object", "vars": "array"}),
		ts("size", "Report the row and column counts of a matrix expression", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
