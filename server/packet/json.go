package packet

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseJSONObject parses a JSON object in the relaxed dialect the upstream server writes: keys and
// values may be unquoted, in which case a value runs until one of ,]}/\"[{;# or a control
// character. Unquoted true, false and null and numbers are converted; everything else is a string.
func ParseJSONObject(s string) (map[string]any, error) {
	p := &jsonParser{s: s}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("json: expected an object, got %T", v)
	}
	return obj, nil
}

func marshalJSON(obj map[string]any) ([]byte, error) {
	return json.Marshal(obj)
}

// maxJSONDepth bounds the nesting of objects and arrays.
const maxJSONDepth = 512

type jsonParser struct {
	s     string
	pos   int
	depth int
}

func (p *jsonParser) errorf(format string, args ...any) error {
	return fmt.Errorf("json: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *jsonParser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] <= ' ' {
		p.pos++
	}
}

func (p *jsonParser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *jsonParser) value() (any, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch c {
	case '{', '[':
		if p.depth >= maxJSONDepth {
			return nil, p.errorf("nesting deeper than %d", maxJSONDepth)
		}
		p.depth++
		defer func() { p.depth-- }()
		if c == '{' {
			return p.object()
		}
		return p.array()
	case '"', '\'':
		return p.quoted(c)
	}
	return p.bare(",]}/\\\"[{;#")
}

func (p *jsonParser) object() (map[string]any, error) {
	p.pos++
	obj := make(map[string]any)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated object")
		}
		if c == '}' {
			p.pos++
			return obj, nil
		}

		var key string
		var err error
		if c == '"' || c == '\'' {
			key, err = p.quoted(c)
		} else {
			var raw any
			raw, err = p.bareString(",:=]}/\\\"[{;#")
			key, _ = raw.(string)
		}
		if err != nil {
			return nil, err
		}

		if c, ok = p.peek(); !ok || (c != ':' && c != '=') {
			return nil, p.errorf("expected ':' after key %q", key)
		}
		p.pos++

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj[key] = v

		c, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated object")
		case c == ',' || c == ';':
			p.pos++
		case c == '}':
		default:
			return nil, p.errorf("expected ',' or '}'")
		}
	}
}

func (p *jsonParser) array() ([]any, error) {
	p.pos++
	arr := make([]any, 0)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated array")
		}
		if c == ']' {
			p.pos++
			return arr, nil
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		c, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated array")
		case c == ',' || c == ';':
			p.pos++
		case c == ']':
		default:
			return nil, p.errorf("expected ',' or ']'")
		}
	}
}

func (p *jsonParser) quoted(quote byte) (string, error) {
	p.pos++
	var b strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		p.pos++
		switch c {
		case quote:
			return b.String(), nil
		case '\\':
			if p.pos >= len(p.s) {
				return "", p.errorf("unterminated escape")
			}
			e := p.s[p.pos]
			p.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				if p.pos+4 > len(p.s) {
					return "", p.errorf("short unicode escape")
				}
				r, err := strconv.ParseUint(p.s[p.pos:p.pos+4], 16, 32)
				if err != nil {
					return "", p.errorf("invalid unicode escape")
				}
				b.WriteRune(rune(r))
				p.pos += 4
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *jsonParser) bareString(stop string) (any, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= ' ' && !strings.ContainsRune(stop, rune(p.s[p.pos])) {
		p.pos++
	}
	s := strings.TrimSpace(p.s[start:p.pos])
	if s == "" {
		return nil, p.errorf("missing value")
	}
	return s, nil
}

func (p *jsonParser) bare(stop string) (any, error) {
	raw, err := p.bareString(stop)
	if err != nil {
		return nil, err
	}
	s := raw.(string)
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && (s[0] == '-' || s[0] == '.' || (s[0] >= '0' && s[0] <= '9')) {
		return f, nil
	}
	return s, nil
}

var errNotNumber = errors.New("json: value is not a number")

// Number returns obj[key] as a float64, accepting numbers and numeric strings.
func Number(obj map[string]any, key string) (float64, error) {
	switch v := obj[key].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, errNotNumber)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s: %w", key, errNotNumber)
	}
}

// String returns obj[key] formatted as a string. Numbers and booleans are formatted, null and
// missing keys yield false.
func String(obj map[string]any, key string) (string, bool) {
	switch v := obj[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
