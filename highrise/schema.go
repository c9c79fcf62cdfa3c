package highrise

import (
	"strconv"
	"strings"
	"time"

	"github.com/s0up4200/highton/record"
)

// Remote type attributes Highrise puts on typed leaves.
const (
	typeInteger  = "integer"
	typeDatetime = "datetime"
	typeArray    = "array"
)

// LocalName converts a remote (hyphenated) tag into its local (underscored) name.
func LocalName(tag string) string {
	return strings.ReplaceAll(tag, "-", "_")
}

// RemoteName converts a local (underscored) name into its remote tag.
func RemoteName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// scalar describes one leaf field of entity T.
type scalar[T any] struct {
	tag      string
	typ      string
	required bool
	decode   func(*T, string) error
	encode   func(*T) string
}

// collection describes an optional nested node of entity T. decode only runs
// when the node at path is present.
type collection[T any] struct {
	path   []string
	decode func(*T, *record.Node) error
	encode func(*T) *record.Node
}

// schema is the field table for one entity type.
type schema[T any] struct {
	entity      string
	tag         string
	scalars     []scalar[T]
	collections []collection[T]
}

func (s *schema[T]) decode(n *record.Node) (*T, error) {
	v := new(T)

	for _, f := range s.scalars {
		raw, ok := n.Text(f.tag)
		if !ok && f.required {
			return nil, &FieldError{Entity: s.entity, Field: LocalName(f.tag), Err: ErrMissingField}
		}
		if err := f.decode(v, raw); err != nil {
			return nil, &FieldError{Entity: s.entity, Field: LocalName(f.tag), Value: raw, Err: err}
		}
	}

	for _, c := range s.collections {
		node := n.Find(c.path...)
		if node == nil {
			continue
		}
		if err := c.decode(v, node); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (s *schema[T]) decodeAll(nodes []*record.Node) ([]*T, error) {
	out := make([]*T, 0, len(nodes))
	for i, n := range nodes {
		v, err := s.decode(n)
		if err != nil {
			return nil, &MappingError{Entity: s.entity, Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *schema[T]) encode(v *T) *record.Node {
	root := record.New(s.tag)

	for _, f := range s.scalars {
		leaf := root.AddText(f.tag, f.encode(v))
		if f.typ != "" {
			leaf.SetAttr("type", f.typ)
			if leaf.Value == "" {
				leaf.SetAttr("nil", "true")
			}
		}
	}

	for _, c := range s.collections {
		node := c.encode(v)
		if node == nil {
			continue
		}
		parent := root
		for _, name := range c.path[:len(c.path)-1] {
			parent = parent.Ensure(name)
		}
		parent.Add(node)
	}

	return root
}

// attributes returns the flat local-name view of v.
func (s *schema[T]) attributes(v *T) map[string]string {
	attrs := make(map[string]string, len(s.scalars))
	for _, f := range s.scalars {
		attrs[attributeName(f.tag)] = f.encode(v)
	}
	return attrs
}

// fields returns the attribute names of the declared scalars in table order.
func (s *schema[T]) fields() []string {
	names := make([]string, 0, len(s.scalars))
	for _, f := range s.scalars {
		names = append(names, attributeName(f.tag))
	}
	return names
}

// attributeName is the flat name of a remote tag. The record identifier is
// exposed as highrise_id.
func attributeName(tag string) string {
	if tag == "id" {
		return "highrise_id"
	}
	return LocalName(tag)
}

func required[T any](f scalar[T]) scalar[T] {
	f.required = true
	return f
}

func stringField[T any](tag string, ref func(*T) *string) scalar[T] {
	return scalar[T]{
		tag: tag,
		decode: func(v *T, raw string) error {
			*ref(v) = raw
			return nil
		},
		encode: func(v *T) string {
			return *ref(v)
		},
	}
}

// intField maps an identifier; zero means unset and goes out as nil.
func intField[T any](tag string, ref func(*T) *int64) scalar[T] {
	return integerField(tag, ref, true)
}

// countField maps a quantity where zero is a real value.
func countField[T any](tag string, ref func(*T) *int64) scalar[T] {
	return integerField(tag, ref, false)
}

func integerField[T any](tag string, ref func(*T) *int64, zeroIsNil bool) scalar[T] {
	return scalar[T]{
		tag: tag,
		typ: typeInteger,
		decode: func(v *T, raw string) error {
			if raw == "" {
				*ref(v) = 0
				return nil
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			*ref(v) = n
			return nil
		},
		encode: func(v *T) string {
			n := *ref(v)
			if n == 0 && zeroIsNil {
				return ""
			}
			return strconv.FormatInt(n, 10)
		},
	}
}

func timeField[T any](tag string, ref func(*T) *time.Time) scalar[T] {
	return scalar[T]{
		tag: tag,
		typ: typeDatetime,
		decode: func(v *T, raw string) error {
			if raw == "" {
				*ref(v) = time.Time{}
				return nil
			}
			t, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return err
			}
			*ref(v) = t
			return nil
		},
		encode: func(v *T) string {
			t := *ref(v)
			if t.IsZero() {
				return ""
			}
			return t.Format(time.RFC3339Nano)
		},
	}
}

// nested maps a repeated sub-record list at path onto a slice of E, keeping
// source order.
func nested[T, E any](path []string, item *schema[E], ref func(*T) *[]E) collection[T] {
	return collection[T]{
		path: path,
		decode: func(v *T, n *record.Node) error {
			items := make([]E, 0, len(n.Children))
			for i, child := range n.Children {
				e, err := item.decode(child)
				if err != nil {
					return &MappingError{Entity: item.entity, Index: i, Err: err}
				}
				items = append(items, *e)
			}
			*ref(v) = items
			return nil
		},
		encode: func(v *T) *record.Node {
			items := *ref(v)
			if len(items) == 0 {
				return nil
			}
			list := record.New(path[len(path)-1]).SetAttr("type", typeArray)
			for i := range items {
				list.Add(item.encode(&items[i]))
			}
			return list
		},
	}
}
