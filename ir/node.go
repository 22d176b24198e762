// Package ir defines the in-memory document model the resolvers operate
// on: a tagged union of TOML value kinds. A Node is a table, an array, or
// a scalar leaf; absence of a key or index is represented structurally,
// never with a null variant.
package ir

import (
	"maps"
	"slices"
	"time"
)

type Node struct {
	Type Type

	// TableType entries. Keys are unique, ordering is not significant.
	Table map[string]*Node

	// ArrayType elements, 0-indexed.
	Values []*Node

	String string
	Int    int64
	Float  float64
	Bool   bool
	Time   time.Time
}

func NewTable() *Node {
	return &Node{Type: TableType, Table: map[string]*Node{}}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromTime(v time.Time) *Node {
	return &Node{Type: DatetimeType, Time: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

func FromMap(m map[string]*Node) *Node {
	res := NewTable()
	for k, v := range m {
		res.Table[k] = v
	}
	return res
}

// Get returns the table entry for field, or nil if y is not a table or the
// field is absent.
func Get(y *Node, field string) *Node {
	if y.Type != TableType {
		return nil
	}
	return y.Table[field]
}

// Keys returns the table keys in sorted order.
func (y *Node) Keys() []string {
	return slices.Sorted(maps.Keys(y.Table))
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Int = y.Int
	dst.Float = y.Float
	dst.Bool = y.Bool
	dst.Time = y.Time
	dst.Table = nil
	dst.Values = nil
	if y.Table != nil {
		dst.Table = make(map[string]*Node, len(y.Table))
		for k, v := range y.Table {
			dst.Table[k] = v.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks y depth first. f is called once before descending
// (isPost=false) and once after (isPost=true); returning false from the
// pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		switch y.Type {
		case TableType:
			for _, k := range y.Keys() {
				if err := y.Table[k].Visit(f); err != nil {
					return err
				}
			}
		case ArrayType:
			for _, yy := range y.Values {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TableType:
		if len(a.Table) != len(b.Table) {
			return false
		}
		for k, av := range a.Table {
			bv, ok := b.Table[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case StringType:
		return a.String == b.String
	case IntegerType:
		return a.Int == b.Int
	case FloatType:
		return a.Float == b.Float
	case BoolType:
		return a.Bool == b.Bool
	case DatetimeType:
		return a.Time.Equal(b.Time)
	default:
		panic("type")
	}
}
