package corejson

// ScannerOption configures a Scanner at construction time, applied once
// before the first Reset.
type ScannerOption func(*scannerConfig)

type scannerConfig struct {
	decodeCapacityHint int
}

// WithDecodeCapacityHint sizes the scanner's decode scratch buffer to at
// least n bytes at construction, so that a later Reset over a payload of
// up to n bytes needs no grow. Reset still grows the buffer if a payload
// is longer than its current capacity.
func WithDecodeCapacityHint(n int) ScannerOption {
	return func(c *scannerConfig) {
		if n > 0 {
			c.decodeCapacityHint = n
		}
	}
}

// EmitterOption configures an Emitter at construction time.
type EmitterOption func(*emitterConfig)

type emitterConfig struct{}
