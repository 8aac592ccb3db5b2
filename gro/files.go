/*
 * files.go, part of mdconf.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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

package gro

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/mdconf"
)

// Compression identifies the compression applied to a .gro file.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// CompressionFor returns the compression implied by the extension of the file name:
// gzip for .gz, zstd for .zst and .zstd, and none for anything else.
func CompressionFor(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	default:
		return Plain
	}
}

// zstd.Decoder doesn't implement io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// nopWriteCloser is used for uncompressed files.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// newWriter returns a compressing writer. A nil level uses the default of
// each compressor. zstd levels are mapped with zstd.EncoderLevelFromZstd.
func newWriter(w io.Writer, c Compression, level []int) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		l := gzip.DefaultCompression
		if len(level) > 0 {
			l = min(max(level[0], gzip.HuffmanOnly), gzip.BestCompression)
		}
		return gzip.NewWriterLevel(w, l)
	case Zstd:
		l := zstd.SpeedDefault
		if len(level) > 0 {
			l = zstd.EncoderLevelFromZstd(level[0])
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(l))
	default:
		return nopWriteCloser{w}, nil
	}
}

// FileRead reads the GROMOS87 configuration in the file name, which is
// decompressed if its extension asks for it (see CompressionFor).
func FileRead(name string) (*chem.Configuration, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(withFileName(&StreamError{Err: err}, name), "FileRead")
	}
	defer f.Close()
	r, err := newReader(bufio.NewReader(f), CompressionFor(name))
	if err != nil {
		return nil, errDecorate(withFileName(&StreamError{Line: 1, Err: err}, name), "FileRead")
	}
	defer r.Close()
	C, err := Read(r)
	if err != nil {
		return nil, errDecorate(withFileName(err, name), "FileRead")
	}
	return C, nil
}

// FileWrite writes C, in GROMOS87 format, to the file name, which is compressed if
// its extension asks for it (see CompressionFor). If given, level is the compression level:
// -2 to 9 for gzip and 1 to 22 for zstd. Values out of range are clamped.
// If the atoms of C can't be grouped into residues, the file is not created.
func FileWrite(name string, C *chem.Configuration, level ...int) (err error) {
	groups, err := Group(C)
	if err != nil {
		return errDecorate(withFileName(err, name), "FileWrite")
	}
	f, err := os.Create(name)
	if err != nil {
		return errDecorate(withFileName(&StreamError{Err: err}, name), "FileWrite")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errDecorate(withFileName(&StreamError{Err: cerr}, name), "FileWrite")
		}
	}()
	w, err := newWriter(f, CompressionFor(name), level)
	if err != nil {
		return errDecorate(withFileName(&StreamError{Line: 1, Err: err}, name), "FileWrite")
	}
	if err = write(w, C, groups); err != nil {
		w.Close()
		return errDecorate(withFileName(err, name), "FileWrite")
	}
	if err = w.Close(); err != nil {
		return errDecorate(withFileName(&StreamError{Err: err}, name), "FileWrite")
	}
	return nil
}
