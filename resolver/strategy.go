package resolver

import (
	"github.com/viant/tagly/format/text"
)

// Option configures field based resolver strategy
type Option func(i *fieldInspector)

// Options represents resolver options
type Options []Option

// Apply applies options
func (o Options) Apply(i *fieldInspector) {
	for _, opt := range o {
		opt(i)
	}
}

// WithTagNames sets marker tags, the first tag present on a field wins
func WithTagNames(names ...string) Option {
	return func(i *fieldInspector) {
		i.tagNames = names
	}
}

// WithInspectAncestors controls whether fields of embedded structs are promoted
func WithInspectAncestors(flag bool) Option {
	return func(i *fieldInspector) {
		i.inspectAncestors = flag
	}
}

// WithCaseFormat sets case format applied to names without explicit rename
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(i *fieldInspector) {
		i.caseFormat = caseFormat
	}
}

// NewDefault creates plain reflection resolver: all exported fields, identity names
func NewDefault(opts ...Option) *Base {
	inspector := &fieldInspector{inspectAncestors: true}
	Options(opts).Apply(inspector)
	return New(inspector)
}

// NewContract creates data contract resolver driven by the dict tag
func NewContract(opts ...Option) *Base {
	inspector := &fieldInspector{tagNames: []string{ContractTag}, inspectAncestors: true}
	Options(opts).Apply(inspector)
	return New(inspector)
}

// NewWeb creates JSON style resolver driven by the json tag
func NewWeb(opts ...Option) *Base {
	inspector := &fieldInspector{tagNames: []string{WebTag}, inspectAncestors: true}
	Options(opts).Apply(inspector)
	return New(inspector)
}

// NewFormat creates resolver driven by the viant format tag (name, caseFormat, ignore, inline)
func NewFormat(opts ...Option) *Base {
	inspector := &fieldInspector{formatTag: true, inspectAncestors: true}
	Options(opts).Apply(inspector)
	return New(inspector)
}
