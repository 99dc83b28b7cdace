package dom

// Options configures the transform for one compilation unit.
type Options struct {
	// DelegateEvents enables the event-delegation fast path for delegable
	// events. When false every event handler uses addEventListener.
	DelegateEvents bool

	// DelegatedEvents extends the built-in delegable event set with
	// user-supplied event names.
	DelegatedEvents []string

	// ModuleName is the import source for runtime helpers.
	ModuleName string
}

// NewOptions returns the default transform options.
func NewOptions() *Options {
	return &Options{
		DelegateEvents: true,
		ModuleName:     "solid-js/web",
	}
}

// delegable reports whether the named event may use the delegation fast path:
// it is in the built-in set or configured by the user.
func (o *Options) delegable(event string) bool {
	if _, ok := delegatedEvents[event]; ok {
		return true
	}
	for _, e := range o.DelegatedEvents {
		if e == event {
			return true
		}
	}
	return false
}

func (o *Options) moduleName() string {
	if o.ModuleName == "" {
		return "solid-js/web"
	}
	return o.ModuleName
}
