package visitor

import "github.com/viant/tagly/format/text"

// DefaultTagName is the struct tag used for field names
const DefaultTagName = "json"

type (
	//Option struct visitor option
	Option func(o *options)

	options struct {
		tagName    string
		caseFormat text.CaseFormat
	}
)

func newOptions(opts []Option) *options {
	ret := &options{tagName: DefaultTagName}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithTagName sets the struct tag used for field names
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// WithCaseFormat formats untagged field names with supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}
