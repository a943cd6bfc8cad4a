package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind is the JSON type of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the schema name of the kind ("string", "object", ...).
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a decoded JSON document. Only the field matching Kind is set.
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	Str    string
	Items  []Value
	Fields []Field
}

// Field is one member of an object, kept in document order.
type Field struct {
	Name  string
	Value Value
}

// Lookup returns the member called name. When a key is repeated the last
// occurrence wins.
func (v Value) Lookup(name string) (Value, bool) {
	for i := len(v.Fields) - 1; i >= 0; i-- {
		if v.Fields[i].Name == name {
			return v.Fields[i].Value, true
		}
	}
	return Value{}, false
}

// ErrMalformed is returned by Parse for input that is not exactly one JSON
// document.
var ErrMalformed = errors.New("malformed json")

// Parse decodes data into a Value.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case bool:
		return Value{Kind: Bool, Bool: t}, nil
	case json.Number:
		return Value{Kind: Number, Number: t}, nil
	case string:
		return Value{Kind: String, Str: t}, nil
	case nil:
		return Value{Kind: Null}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: Object, Fields: []Field{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		name, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %v, not a string", tok)
		}
		member, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Fields = append(obj.Fields, Field{Name: name, Value: member})
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	arr := Value{Kind: Array, Items: []Value{}}
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, item)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}
