package pointfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/racheljewell/kmeans/model"
	"github.com/racheljewell/kmeans/resource"
)

// PointSize is the memory charged per decoded point.
const PointSize = 16

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

// Stats summarizes a Decode call.
type Stats struct {
	Lines       int
	Points      int
	Malformed   int
	Compression Compression
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithOnMalformed sets the callback for malformed lines.
func WithOnMalformed(fn func(*LineError)) Option {
	return func(d *Decoder) {
		d.onMalformed = fn
	}
}

// WithResourceController charges PointSize bytes per point against rc.
// Decode fails with resource.ErrMemoryLimit once the budget is exhausted.
func WithResourceController(rc *resource.Controller) Option {
	return func(d *Decoder) {
		d.rc = rc
	}
}

// WithMaxLineBytes overrides DefaultMaxLineBytes.
func WithMaxLineBytes(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxLine = n
		}
	}
}

// Decoder reads points from a text stream.
type Decoder struct {
	r           io.Reader
	onMalformed func(*LineError)
	rc          *resource.Controller
	maxLine     int

	reserved int64
	stats    Stats
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, optFns ...Option) *Decoder {
	d := &Decoder{
		r:       r,
		maxLine: DefaultMaxLineBytes,
	}
	for _, fn := range optFns {
		fn(d)
	}
	return d
}

// Decode reads the whole stream and returns its points in input order.
//
// The memory reserved for the returned points stays charged to the
// resource controller until Release is called.
func (d *Decoder) Decode(ctx context.Context) ([]model.Point, error) {
	rc, c, err := decompress(d.r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	d.stats = Stats{Compression: c}

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, min(64*1024, d.maxLine)), d.maxLine)

	var points []model.Point
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			d.Release()
			return nil, err
		}

		d.stats.Lines++
		text := strings.TrimSuffix(sc.Text(), "\r")

		p, err := ParseLine(text)
		if err != nil {
			d.stats.Malformed++
			if d.onMalformed != nil {
				d.onMalformed(&LineError{Line: d.stats.Lines, Text: text, Err: err})
			}
			continue
		}

		if !d.rc.TryAcquireMemory(PointSize) {
			d.Release()
			return nil, fmt.Errorf("pointfile: %d points exceed %d bytes: %w",
				len(points)+1, d.rc.MemoryLimit(), resource.ErrMemoryLimit)
		}
		d.reserved += PointSize

		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		d.Release()
		return nil, fmt.Errorf("pointfile: read line %d: %w", d.stats.Lines+1, err)
	}

	d.stats.Points = len(points)
	return points, nil
}

// Stats returns counters from the last Decode call.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// Release returns the memory reserved by Decode to the resource controller.
func (d *Decoder) Release() {
	d.rc.ReleaseMemory(d.reserved)
	d.reserved = 0
}

// ParseLine parses "x y [ignored...]". Coordinates outside
// ±model.MaxCoordinate are rejected with ErrInvalidCoordinate.
func ParseLine(text string) (model.Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return model.Point{}, ErrMissingField
	}

	x, err := parseCoordinate("x", fields[0])
	if err != nil {
		return model.Point{}, err
	}
	y, err := parseCoordinate("y", fields[1])
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: x, Y: y}, nil
}

func parseCoordinate(axis, field string) (int, error) {
	v, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidCoordinate, axis, field)
	}
	if v < -model.MaxCoordinate || v > model.MaxCoordinate {
		return 0, fmt.Errorf("%w: %s %q out of range", ErrInvalidCoordinate, axis, field)
	}
	return int(v), nil
}
