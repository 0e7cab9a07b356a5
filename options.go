package xenon

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identMaxSpans struct{}
type identChunkSize struct{}

// WithMaxSpans specifies how many chunk boundaries a single
// unterminated construct may cross before the stream gives up with
// KindMaxChunkSpanExceeded. The bound caps memory growth on
// pathological input such as an enormous unterminated attribute
// value. The default is DefaultMaxSpans.
func WithMaxSpans(n int) Option {
	return option.New(identMaxSpans{}, n)
}

// WithChunkSize specifies the read size used by NewStreamReader.
// The default is DefaultChunkSize.
func WithChunkSize(n int) Option {
	return option.New(identChunkSize{}, n)
}
