// Package pointfile decodes point lists from text input.
//
// The format is one point per line: two whitespace-separated integers,
// X then Y. Fields after the second are ignored. A line that does not start
// with two integers (blank lines included) is reported as a *LineError and
// skipped; it never aborts decoding.
//
// Input may be compressed with zstd, gzip or lz4. The codec is detected from
// the leading magic bytes, so file names do not matter.
//
//	dec := pointfile.NewDecoder(r, pointfile.WithOnMalformed(func(e *pointfile.LineError) {
//	    fmt.Fprintf(os.Stderr, "Error reading line: %s\n", e.Text)
//	}))
//	points, err := dec.Decode(ctx)
package pointfile
