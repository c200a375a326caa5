package store

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Letter bodies compress well (English prose, ~3-4x) and are only read
// on single-record fetches, so they are stored zstd-compressed. One
// encoder/decoder pair is shared for EncodeAll/DecodeAll use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic(fmt.Sprintf("store: init zstd encoder: %v", err))
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("store: init zstd decoder: %v", err))
	}
}

// compressText returns the zstd-compressed form of s.
func compressText(s string) []byte {
	return zstdEncoder.EncodeAll([]byte(s), nil)
}

// decompressText reverses compressText.
func decompressText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := zstdDecoder.DecodeAll(b, nil)
	if err != nil {
		return "", fmt.Errorf("zstd decode: %w", err)
	}
	return string(out), nil
}
