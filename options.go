package imgcore

import "github.com/gogpu/imgcore/internal/pixel"

// Option configures an Image during creation.
//
// Example:
//
//	// Default alpha threshold and the shared buffer pool
//	img, err := imgcore.NewImage(64, 64, imgcore.FormatR5G5B5A1)
//
//	// Only fully opaque pixels set the 1-bit alpha
//	img, err := imgcore.NewImage(64, 64, imgcore.FormatR5G5B5A1, imgcore.WithAlphaThreshold(254.0/255))
type Option func(*options)

// options holds the configuration shared by an image and every image
// derived from it.
type options struct {
	alphaThreshold float32
	pool           *Pool
}

// defaultOptions returns the default image options.
func defaultOptions() options {
	return options{
		alphaThreshold: pixel.DefaultAlphaThreshold,
		pool:           defaultPool,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlphaThreshold sets the fraction of full scale (0..1) above which an
// alpha value sets the R5G5B5A1 alpha bit. The default is 50/255.
func WithAlphaThreshold(t float32) Option {
	return func(o *options) {
		o.alphaThreshold = pixel.Clamp(t, 0, 1)
	}
}

// WithPool sets the buffer pool used to allocate and release pixel data.
// A nil pool selects the package default.
func WithPool(p *Pool) Option {
	return func(o *options) {
		if p == nil {
			p = defaultPool
		}
		o.pool = p
	}
}
