// Package snapshot serializes rawvec vectors to a self-describing binary
// format.
//
// A snapshot records the element size and element count in a fixed header
// followed by the raw element bytes, optionally compressed with LZ4 (fast)
// or ZSTD (better ratio). The format is independent of the vector's
// allocator: a vector saved from an mmap-backed instance can be loaded into
// a heap-backed one.
//
// Snapshot IO can be throttled with a rate limiter to keep background saves
// from starving foreground work.
package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/rawvec/rawvec"
	"github.com/rawvec/rawvec/internal/conv"
)

// CompressionType defines the compression algorithm applied to the payload.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 applies LZ4 stream compression (fast, hot data).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD applies ZSTD stream compression (better ratio, cold data).
	CompressionZSTD CompressionType = 2
)

var (
	// ErrBadMagic is returned when the input does not start with a snapshot
	// header.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshots written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCompression is returned for an unrecognized compression type.
	ErrUnknownCompression = errors.New("snapshot: unknown compression type")
	// ErrCorrupt is returned when the payload is shorter than the header
	// promises.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
)

const (
	formatVersion = 1

	// Header layout, little-endian:
	//   [0:4]   magic "RVEC"
	//   [4]     version
	//   [5]     compression type
	//   [6:8]   reserved
	//   [8:16]  element size
	//   [16:24] element count
	headerSize = 24

	// chunkSize bounds how much payload is moved per IO call, so rate
	// limiting stays responsive.
	chunkSize = 64 * 1024

	// maxElementSize bounds the element size a header may claim. Larger
	// values cannot come from a Save and would force absurd allocations.
	maxElementSize = 1 << 30

	// maxPrealloc bounds how many payload bytes Load reserves up front. The
	// header's count field is untrusted until the payload actually delivers
	// the bytes, so larger vectors grow as data arrives.
	maxPrealloc = 1 << 20
)

var magic = [4]byte{'R', 'V', 'E', 'C'}

// Save writes the vector to w.
func Save(ctx context.Context, w io.Writer, v *rawvec.Vector, optFns ...Option) error {
	if v == nil {
		return fmt.Errorf("snapshot: nil vector")
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := validateLimiter(opts.limiter); err != nil {
		return err
	}

	elemSize, err := conv.IntToUint64(v.ElementSize())
	if err != nil {
		return err
	}
	count, err := conv.IntToUint64(v.Size())
	if err != nil {
		return err
	}

	out := io.Writer(w)
	if opts.limiter != nil {
		out = &throttledWriter{ctx: ctx, w: w, limiter: opts.limiter}
	}

	// Constructing the payload writer first keeps an invalid compression
	// type from leaving a partial header in the stream; both encoders emit
	// their framing lazily on the first payload write.
	payload, closePayload, err := compressingWriter(out, opts.compression)
	if err != nil {
		return err
	}

	var header [headerSize]byte
	copy(header[0:4], magic[:])
	header[4] = formatVersion
	header[5] = byte(opts.compression)
	binary.LittleEndian.PutUint64(header[8:16], elemSize)
	binary.LittleEndian.PutUint64(header[16:24], count)

	if _, err := w.Write(header[:]); err != nil {
		_ = closePayload()
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	if err := writeChunked(ctx, payload, v.Bytes()); err != nil {
		_ = closePayload()
		return err
	}
	if err := closePayload(); err != nil {
		return fmt.Errorf("snapshot: flush payload: %w", err)
	}

	if opts.logger != nil {
		opts.logger.Info("snapshot saved",
			"elements", v.Size(),
			"element_size", v.ElementSize(),
			"compression", opts.compression,
		)
	}

	return nil
}

// Load reads a snapshot from r and rebuilds the vector. Vector construction
// behavior (allocator, growth policy) is controlled via WithVectorOptions.
func Load(ctx context.Context, r io.Reader, optFns ...Option) (*rawvec.Vector, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := validateLimiter(opts.limiter); err != nil {
		return nil, err
	}

	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if [4]byte(header[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	compression := CompressionType(header[5])

	elemSize, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(header[8:16]))
	if err != nil {
		return nil, err
	}
	count, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(header[16:24]))
	if err != nil {
		return nil, err
	}

	// The size fields come straight off the wire; reject anything a Save
	// could not have produced before sizing an allocation from them.
	if elemSize <= 0 || elemSize > maxElementSize {
		return nil, fmt.Errorf("%w: element size %d", ErrCorrupt, elemSize)
	}
	if count > 0 && elemSize > math.MaxInt/count {
		return nil, fmt.Errorf("%w: %d elements of %d bytes overflow", ErrCorrupt, count, elemSize)
	}

	in := io.Reader(r)
	if opts.limiter != nil {
		in = &throttledReader{ctx: ctx, r: r, limiter: opts.limiter}
	}

	payload, closePayload, err := decompressingReader(in, compression)
	if err != nil {
		return nil, err
	}
	defer closePayload()

	capacity := count
	if limit := maxPrealloc / elemSize; capacity > limit {
		capacity = limit
	}

	vectorOpts := append([]rawvec.Option{rawvec.WithCapacity(capacity)}, opts.vectorOpts...)
	v, err := rawvec.New(elemSize, vectorOpts...)
	if err != nil {
		return nil, err
	}

	remaining := count * elemSize
	buf := make([]byte, minInt(chunkSize-chunkSize%elemSize+elemSize, remaining))
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			_ = v.Destroy()
			return nil, err
		}
		n := minInt(len(buf), remaining)
		if _, err := io.ReadFull(payload, buf[:n]); err != nil {
			_ = v.Destroy()
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if err := v.InsertMany(v.Size(), buf[:n]); err != nil {
			_ = v.Destroy()
			return nil, err
		}
		remaining -= n
	}

	if opts.logger != nil {
		opts.logger.Info("snapshot loaded",
			"elements", v.Size(),
			"element_size", v.ElementSize(),
			"compression", compression,
		)
	}

	return v, nil
}

func compressingWriter(w io.Writer, compression CompressionType) (io.Writer, func() error, error) {
	switch compression {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}

func decompressingReader(r io.Reader, compression CompressionType) (io.Reader, func(), error) {
	switch compression {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr.IOReadCloser(), zr.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}

func writeChunked(ctx context.Context, w io.Writer, data []byte) error {
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := minInt(chunkSize, len(data))
		if _, err := w.Write(data[:n]); err != nil {
			return fmt.Errorf("snapshot: write payload: %w", err)
		}
		data = data[n:]
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
