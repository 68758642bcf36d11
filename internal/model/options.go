package model

const defaultTagName = "form"

// Options configures the behaviour of the Builder. Options are constructed by
// the root formbind package and passed into New.
type Options struct {
	// TagName is the struct tag read for field descriptors.
	TagName string
}

func defaultOptions() Options {
	return Options{
		TagName: defaultTagName,
	}
}
