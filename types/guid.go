package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GUIDFormat represents textual identifier layout
type GUIDFormat int

const (
	// GUIDDashed 00000000-0000-0000-0000-000000000000
	GUIDDashed GUIDFormat = iota
	// GUIDDigits 00000000000000000000000000000000
	GUIDDigits
	// GUIDBraces {00000000-0000-0000-0000-000000000000}
	GUIDBraces
	// GUIDParentheses (00000000-0000-0000-0000-000000000000)
	GUIDParentheses
	// GUIDHex {0x00000000,0x0000,0x0000,{0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00}}
	GUIDHex
	GUIDDashedUpper
	GUIDDigitsUpper
	GUIDBracesUpper
	GUIDParenthesesUpper
	GUIDHexUpper
)

var guidFormatNames = [...]string{"d", "n", "b", "p", "x", "D", "N", "B", "P", "X"}

// GUIDFormats lists all supported layouts
var GUIDFormats = []GUIDFormat{
	GUIDDashed, GUIDDigits, GUIDBraces, GUIDParentheses, GUIDHex,
	GUIDDashedUpper, GUIDDigitsUpper, GUIDBracesUpper, GUIDParenthesesUpper, GUIDHexUpper,
}

// String returns layout specifier, lower case letter for lower case layouts
func (f GUIDFormat) String() string {
	if f < 0 || int(f) >= len(guidFormatNames) {
		return fmt.Sprintf("GUIDFormat(%d)", int(f))
	}
	return guidFormatNames[f]
}

// IsUpper returns true for upper case layouts
func (f GUIDFormat) IsUpper() bool {
	return f >= GUIDDashedUpper
}

func (f GUIDFormat) layout() GUIDFormat {
	if f.IsUpper() {
		return f - GUIDDashedUpper
	}
	return f
}

// ParseGUIDFormat parses layout specifier (d, n, b, p, x and upper case variants)
func ParseGUIDFormat(name string) (GUIDFormat, error) {
	for i, candidate := range guidFormatNames {
		if candidate == name {
			return GUIDFormat(i), nil
		}
	}
	return GUIDDashed, fmt.Errorf("invalid guid format: %q", name)
}

// FormatGUID formats identifier with supplied layout
func FormatGUID(id uuid.UUID, format GUIDFormat) string {
	var text string
	switch format.layout() {
	case GUIDDigits:
		text = hex.EncodeToString(id[:])
	case GUIDBraces:
		text = "{" + id.String() + "}"
	case GUIDParentheses:
		text = "(" + id.String() + ")"
	case GUIDHex:
		text = fmt.Sprintf("{0x%x,0x%x,0x%x,{0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x}}",
			id[0:4], id[4:6], id[6:8], id[8], id[9], id[10], id[11], id[12], id[13], id[14], id[15])
	default:
		text = id.String()
	}
	if format.IsUpper() {
		return strings.ToUpper(text)
	}
	return text
}

// ParseGUID parses identifier that has to match supplied layout, letter case is ignored
func ParseGUID(text string, format GUIDFormat) (uuid.UUID, error) {
	lower := strings.ToLower(text)
	switch format.layout() {
	case GUIDDashed:
		if len(lower) == 36 {
			return uuid.Parse(lower)
		}
	case GUIDDigits:
		if len(lower) == 32 {
			return guidFromHex(lower)
		}
	case GUIDBraces:
		if len(lower) == 38 && lower[0] == '{' && lower[37] == '}' {
			return uuid.Parse(lower[1:37])
		}
	case GUIDParentheses:
		if len(lower) == 38 && lower[0] == '(' && lower[37] == ')' {
			return uuid.Parse(lower[1:37])
		}
	case GUIDHex:
		return parseHexGUID(lower)
	}
	return uuid.Nil, fmt.Errorf("invalid guid %q for format %v", text, format)
}

// ParseAnyGUID parses identifier in any supported layout
func ParseAnyGUID(text string) (uuid.UUID, error) {
	text = strings.TrimSpace(text)
	for _, format := range GUIDFormats[:GUIDDashedUpper] {
		if id, err := ParseGUID(text, format); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("invalid guid: %q", text)
}

func guidFromHex(digits string) (uuid.UUID, error) {
	data, err := hex.DecodeString(digits)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(data)
}

func parseHexGUID(text string) (uuid.UUID, error) {
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}}") {
		return uuid.Nil, fmt.Errorf("invalid hex guid: %q", text)
	}
	inner := text[1 : len(text)-2]
	idx := strings.Index(inner, ",{")
	if idx == -1 {
		return uuid.Nil, fmt.Errorf("invalid hex guid: %q", text)
	}
	head := strings.Split(inner[:idx], ",")
	tail := strings.Split(inner[idx+2:], ",")
	if len(head) != 3 || len(tail) != 8 {
		return uuid.Nil, fmt.Errorf("invalid hex guid: %q", text)
	}
	widths := []int{8, 4, 4, 2, 2, 2, 2, 2, 2, 2, 2}
	builder := strings.Builder{}
	for i, part := range append(head, tail...) {
		digits, ok := strings.CutPrefix(part, "0x")
		if !ok || len(digits) != widths[i] {
			return uuid.Nil, fmt.Errorf("invalid hex guid: %q", text)
		}
		builder.WriteString(digits)
	}
	return guidFromHex(builder.String())
}
