/*
 * zfile.go, part of gocrystal.
 *
 * Copyright 2024 Rodrigo Solis <rsolis{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package crystal

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Most grid and trajectory files are large and compress very well, so every
//reader in this library accepts them compressed. The compressor is picked
//from the file name: .gz, .zst/.zstd, .flate, anything else is read as-is.

type zReadCloser struct {
	z io.ReadCloser
	f *os.File
}

func (r *zReadCloser) Read(p []byte) (int, error) { return r.z.Read(p) }

func (r *zReadCloser) Close() error {
	err := r.z.Close()
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}

//This will cause an additional indirection, but each read takes enough
//time to make that delay irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

// OpenDecompressed opens the named file for reading, transparently
// decompressing it according to its extension. The caller must Close the
// returned reader, which also closes the file.
func OpenDecompressed(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var z io.ReadCloser
	switch {
	case strings.HasSuffix(name, ".gz"):
		z, err = gzip.NewReader(f)
	case strings.HasSuffix(name, ".zst") || strings.HasSuffix(name, ".zstd"):
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			z = zstdql{d.Close, d}
		}
	case strings.HasSuffix(name, ".flate"):
		z = flate.NewReader(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zReadCloser{z: z, f: f}, nil
}

type zWriteCloser struct {
	z io.WriteCloser
	f *os.File
}

func (w *zWriteCloser) Write(p []byte) (int, error) { return w.z.Write(p) }

func (w *zWriteCloser) Close() error {
	err := w.z.Close()
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

// CreateCompressed creates the named file for writing, compressing the
// stream according to the file extension, with the same conventions as
// OpenDecompressed.
func CreateCompressed(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var z io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".gz"):
		z = gzip.NewWriter(f)
	case strings.HasSuffix(name, ".zst") || strings.HasSuffix(name, ".zstd"):
		z, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".flate"):
		z, err = flate.NewWriter(f, flate.DefaultCompression)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zWriteCloser{z: z, f: f}, nil
}
