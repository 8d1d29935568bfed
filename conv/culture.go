package conv

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Culture represents numeric text conventions of a language
type Culture struct {
	Tag     language.Tag
	Decimal string
	Group   string
}

// Invariant culture uses '.' decimal and ',' group separators
var Invariant = &Culture{Tag: language.Und, Decimal: ".", Group: ","}

var cultures sync.Map // map[language.Tag]*Culture

// CultureOf returns numeric text conventions for tag
func CultureOf(tag language.Tag) *Culture {
	if tag == language.Und {
		return Invariant
	}
	if v, ok := cultures.Load(tag); ok {
		return v.(*Culture)
	}
	culture := detectCulture(tag)
	actual, _ := cultures.LoadOrStore(tag, culture)
	return actual.(*Culture)
}

func detectCulture(tag language.Tag) *Culture {
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234.5))
	idx := strings.Index(sample, "234")
	if !strings.HasPrefix(sample, "1") || idx == -1 || !strings.HasSuffix(sample, "5") {
		return &Culture{Tag: tag, Decimal: Invariant.Decimal, Group: Invariant.Group}
	}
	decimal := sample[idx+3 : len(sample)-1]
	if decimal == "" {
		decimal = Invariant.Decimal
	}
	return &Culture{Tag: tag, Decimal: decimal, Group: sample[1:idx]}
}

// FormatFloat formats float with culture decimal separator
func (c *Culture) FormatFloat(f float64, bitSize int) string {
	text := strconv.FormatFloat(f, 'f', -1, bitSize)
	if c.Decimal != "." {
		text = strings.Replace(text, ".", c.Decimal, 1)
	}
	return text
}

// ParseFloat parses float text with culture group and decimal separators
func (c *Culture) ParseFloat(text string, bitSize int) (float64, error) {
	return strconv.ParseFloat(c.normalize(text), bitSize)
}

// ParseInt parses integer text, group separators are ignored
func (c *Culture) ParseInt(text string, bitSize int) (int64, error) {
	return strconv.ParseInt(c.normalize(text), 10, bitSize)
}

// ParseUint parses unsigned integer text, group separators are ignored
func (c *Culture) ParseUint(text string, bitSize int) (uint64, error) {
	return strconv.ParseUint(c.normalize(text), 10, bitSize)
}

func (c *Culture) normalize(text string) string {
	text = strings.TrimSpace(text)
	if c.Group != "" && c.Group != c.Decimal {
		text = strings.ReplaceAll(text, c.Group, "")
	}
	if c.Decimal != "." {
		text = strings.Replace(text, c.Decimal, ".", 1)
	}
	return text
}
