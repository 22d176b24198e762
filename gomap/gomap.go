// Package gomap converts between plain Go values and document nodes.
package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/signadot/toml-query/ir"
)

// FromGo builds a document node from a plain Go value, as produced by the
// yaml and json decoders. There is no null in the document model, so nil
// values are an error.
func FromGo(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("cannot represent null in a document")
	case *ir.Node:
		return x, nil
	case map[string]any:
		res := ir.NewTable()
		for k, mv := range x {
			node, err := FromGo(mv)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.Table[k] = node
		}
		return res, nil
	case map[any]any:
		res := ir.NewTable()
		for k, mv := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v (%T)", k, k)
			}
			node, err := FromGo(mv)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", ks, err)
			}
			res.Table[ks] = node
		}
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, ev := range x {
			node, err := FromGo(ev)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows the document model", x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return ir.FromFloat(f), nil
	case time.Time:
		return ir.FromTime(x), nil
	default:
		return nil, fmt.Errorf("unsupported Go value of type %T", v)
	}
}

// ToGo is the inverse of FromGo: tables become map[string]any, arrays
// []any, leaves their scalar Go value.
func ToGo(y *ir.Node) any {
	switch y.Type {
	case ir.TableType:
		res := make(map[string]any, len(y.Table))
		for k, v := range y.Table {
			res[k] = ToGo(v)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToGo(v)
		}
		return res
	case ir.StringType:
		return y.String
	case ir.IntegerType:
		return y.Int
	case ir.FloatType:
		return y.Float
	case ir.BoolType:
		return y.Bool
	case ir.DatetimeType:
		return y.Time
	default:
		panic("type")
	}
}
