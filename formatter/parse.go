package formatter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/valyala/fastjson"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Parse decodes a JSON document into a Node tree.
// When an object repeats a key the last value wins and the key stays at the
// position of its first occurrence. Input must be UTF-8; strings may not hold
// raw control characters, unknown escapes or unpaired surrogate escapes.
func Parse(data []byte) (*Node, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	// fastjson unescapes strings best-effort, so check them against the raw text
	if err := checkStrings(data); err != nil {
		return nil, err
	}
	return fromFastJSON(v)
}

// checkStrings scans the string literals of a document fastjson accepted
func checkStrings(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '"' {
			continue
		}
		end, err := checkString(data, i+1)
		if err != nil {
			return err
		}
		i = end
	}
	return nil
}

// checkString validates the literal starting after the opening quote at
// start and returns the offset of its closing quote
func checkString(data []byte, start int) (int, error) {
	pendingHigh := false
	for i := start; i < len(data); i++ {
		c := data[i]
		if c < 0x20 {
			return 0, fmt.Errorf("invalid control character 0x%02x in string at offset %d", c, i)
		}
		if c != '\\' {
			if pendingHigh {
				return 0, fmt.Errorf("unpaired surrogate escape at offset %d", i)
			}
			if c == '"' {
				return i, nil
			}
			continue
		}
		if i+1 >= len(data) {
			break
		}
		i++
		switch data[i] {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			if pendingHigh {
				return 0, fmt.Errorf("unpaired surrogate escape at offset %d", i)
			}
		case 'u':
			r, ok := hex4(data, i+1)
			if !ok {
				return 0, fmt.Errorf("invalid \\u escape at offset %d", i-1)
			}
			switch {
			case r >= 0xD800 && r <= 0xDBFF:
				if pendingHigh {
					return 0, fmt.Errorf("unpaired surrogate escape at offset %d", i-1)
				}
				pendingHigh = true
			case r >= 0xDC00 && r <= 0xDFFF:
				if !pendingHigh {
					return 0, fmt.Errorf("unpaired surrogate escape at offset %d", i-1)
				}
				pendingHigh = false
			default:
				if pendingHigh {
					return 0, fmt.Errorf("unpaired surrogate escape at offset %d", i-1)
				}
			}
			i += 4
		default:
			return 0, fmt.Errorf("invalid escape \\%c at offset %d", data[i], i-1)
		}
	}
	return 0, errors.New("unterminated string")
}

func hex4(data []byte, start int) (rune, bool) {
	if start+4 > len(data) {
		return 0, false
	}
	var r rune
	for _, c := range data[start : start+4] {
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, true
}

func fromFastJSON(v *fastjson.Value) (*Node, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		out := NewObject()
		obj.Visit(func(key []byte, child *fastjson.Value) {
			if err != nil {
				return
			}
			var n *Node
			n, err = fromFastJSON(child)
			if err != nil {
				return
			}
			out.Set(string(key), n)
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case fastjson.TypeArray:
		values, err := v.Array()
		if err != nil {
			return nil, err
		}
		out := &Node{kind: KindArray, items: make([]*Node, 0, len(values))}
		for _, item := range values {
			n, err := fromFastJSON(item)
			if err != nil {
				return nil, err
			}
			out.items = append(out.items, n)
		}
		return out, nil
	case fastjson.TypeString:
		return NewString(string(v.GetStringBytes())), nil
	case fastjson.TypeNumber:
		return NewNumber(v.String()), nil
	case fastjson.TypeTrue:
		return NewBool(true), nil
	case fastjson.TypeFalse:
		return NewBool(false), nil
	case fastjson.TypeNull:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected json type %v", v.Type())
	}
}
