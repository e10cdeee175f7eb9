package abicodec

import "go.uber.org/zap"

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithLogger sets the logger used to report rejected inputs.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) CodecOption {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUTF8Validation enables or disables UTF-8 validation of decoded strings.
// When enabled (default), decoding a string that is not valid UTF-8 fails
// with ErrInvalidUTF8; when disabled the bytes are passed through unchanged.
func WithUTF8Validation(enabled bool) CodecOption {
	return func(c *Codec) {
		c.strictUTF8 = enabled
	}
}
