package watchable

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/watchable/notify"
	"github.com/viant/watchable/visitor"
)

type (
	//Option container option
	Option func(o *options)

	//Options represents container options
	Options []Option

	options struct {
		parent      *Container
		newNotifier func() notify.Notifier
		visitorOpts []visitor.Option
	}
)

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

// WithParent sets the parent back-reference of a constructed container
func WithParent(parent *Container) Option {
	return func(o *options) {
		o.parent = parent
	}
}

// WithNotifier sets notifier factory, each container in the tree gets its own notifier
func WithNotifier(factory func() notify.Notifier) Option {
	return func(o *options) {
		o.newNotifier = factory
	}
}

// WithCaseFormat formats untagged struct field names of seed values
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.visitorOpts = append(o.visitorOpts, visitor.WithCaseFormat(caseFormat))
	}
}

// WithTagName sets struct tag used to name seed struct fields, json by default
func WithTagName(name string) Option {
	return func(o *options) {
		o.visitorOpts = append(o.visitorOpts, visitor.WithTagName(name))
	}
}

func newOptions(opts []Option) *options {
	ret := &options{}
	Options(opts).Apply(ret)
	if ret.newNotifier == nil {
		ret.newNotifier = func() notify.Notifier {
			return notify.New()
		}
	}
	return ret
}
