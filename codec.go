package bloqs

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Client-side decoder contract for compressed scripts.
const (
	// BootstrapToken starts every compressed script body. The embedded
	// blocks_eval.js resource defines the function it calls.
	BootstrapToken = "blocksEval("

	// DecoderName is the global object that inflates the payload in the
	// browser. The embedded jsinflate.js resource defines it.
	DecoderName = "RawDeflate"
)

const (
	payloadPrefix = BootstrapToken + DecoderName + `.inflate(atob("`
	payloadSuffix = `")));`
)

// Codec turns script text into a self-decoding bootstrap call and back.
type Codec interface {
	// Encode writes the bootstrap call for script to w. The output starts
	// with BootstrapToken and does not contain script verbatim.
	Encode(w io.Writer, script string) error

	// Decode reverses Encode.
	Decode(payload string) (string, error)
}

// DeflateCodec compresses scripts with raw DEFLATE (RFC 1951) and base64,
// producing blocksEval(RawDeflate.inflate(atob("..."))); calls.
// The zero value compresses with flate.BestCompression.
type DeflateCodec struct {
	level    int
	hasLevel bool
}

// NewDeflateCodec creates a DeflateCodec with maximum compression.
func NewDeflateCodec() *DeflateCodec {
	return &DeflateCodec{}
}

// NewDeflateCodecLevel creates a DeflateCodec with a flate level, from
// flate.HuffmanOnly to flate.BestCompression. flate.NoCompression stores
// the script uncompressed, still base64-encoded.
// Returns ErrInvalidCompressionLevel for other values.
func NewDeflateCodecLevel(level int) (*DeflateCodec, error) {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompressionLevel, level)
	}
	return &DeflateCodec{level: level, hasLevel: true}, nil
}

// Level returns the flate level used by Encode.
func (c *DeflateCodec) Level() int {
	if !c.hasLevel {
		return flate.BestCompression
	}
	return c.level
}

// Encode implements Codec.
func (c *DeflateCodec) Encode(w io.Writer, script string) error {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, c.Level())
	if err != nil {
		return fmt.Errorf("deflate writer: %w", err)
	}
	if _, err := io.WriteString(fw, script); err != nil {
		return fmt.Errorf("deflate: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("deflate: %w", err)
	}

	_, err = io.WriteString(w, payloadPrefix+base64.StdEncoding.EncodeToString(buf.Bytes())+payloadSuffix)
	return err
}

// Decode implements Codec.
func (c *DeflateCodec) Decode(payload string) (string, error) {
	encoded, ok := strings.CutPrefix(payload, payloadPrefix)
	if !ok {
		return "", fmt.Errorf("%w: missing %s prefix", ErrMalformedPayload, BootstrapToken)
	}
	encoded, ok = strings.CutSuffix(encoded, payloadSuffix)
	if !ok {
		return "", fmt.Errorf("%w: unterminated call", ErrMalformedPayload)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	fr := flate.NewReader(bytes.NewReader(raw))
	defer fr.Close()

	script, err := io.ReadAll(fr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return string(script), nil
}

// Compile-time interface check.
var _ Codec = (*DeflateCodec)(nil)
