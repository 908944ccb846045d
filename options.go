package musicxml

// Option configures parsing and marshaling behaviour.
type Option func(*options) error

type options struct {
	inheritAttributes bool
	compact           bool
}

func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// InheritAttributes returns an Option that makes Parse resolve measure
// attribute inheritance eagerly: a measure without an <attributes> element
// receives a copy of the attributes in effect from earlier measures of the
// same part. Without this option such measures keep a nil Attributes field
// and inheritance is left to the caller.
func InheritAttributes() Option {
	return func(o *options) error {
		o.inheritAttributes = true
		return nil
	}
}

// Compact returns an Option that makes Marshal emit the document on a
// single line, without pretty indentation.
func Compact() Option {
	return func(o *options) error {
		o.compact = true
		return nil
	}
}
