// SPDX-License-Identifier: MIT

package dataset

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/katalvlaran/grinder/mask"
	"github.com/katalvlaran/grinder/tensor"
)

// compression is detected from the file name.
type compression int

const (
	plain compression = iota
	xzCompressed
	gzipCompressed
)

func detect(path string) compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return xzCompressed
	case strings.HasSuffix(lower, ".gz"):
		return gzipCompressed
	default:
		return plain
	}
}

// ReadFile opens path, decompresses .xz/.gz and decodes it with Read.
func ReadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch detect(path) {
	case xzCompressed:
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ReadFile: %s: xz: %w", path, err)
		}
		r = xr
	case gzipCompressed:
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ReadFile: %s: gzip: %w", path, err)
		}
		defer gr.Close()
		r = gr
	}

	t, err := Read(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %s: %w", path, err)
	}
	return t, nil
}

// WriteFile encodes d into path, compressing by extension.
func WriteFile(path string, d *tensor.Dense, header []string, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return Write(w, d, header, opts...) })
}

// WriteMaskFile encodes m into path, compressing by extension.
func WriteMaskFile(path string, m *mask.Mask, header []string, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return WriteMask(w, m, header, opts...) })
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: %s: %w", path, cerr)
		}
	}()

	var w io.WriteCloser
	switch detect(path) {
	case xzCompressed:
		if w, err = xz.NewWriter(f); err != nil {
			return fmt.Errorf("WriteFile: %s: xz: %w", path, err)
		}
	case gzipCompressed:
		w = gzip.NewWriter(f)
	}

	if w == nil {
		return encode(f)
	}
	if err = encode(w); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("WriteFile: %s: %w", path, err)
	}
	return nil
}
