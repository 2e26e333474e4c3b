// Package utils provides the ROM loading and screenshot helpers used
// around the emulator core.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrLoadFailure is returned when a ROM cannot be loaded, either
// because it could not be read or because no ROM could be
// extracted from it.
var ErrLoadFailure = errors.New("utils: failed to load ROM")

var (
	gzipMagic     = []byte{0x1F, 0x8B}
	zipMagic      = []byte("PK\x03\x04")
	sevenZipMagic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives are recognised by their extension or their magic
// number. From a zip or 7z archive the first .gb or .gbc file is
// returned, or the first file if there is none.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return Decompress(filename, data)
}

// Decompress returns data decompressed according to the extension
// of name, or its magic number. Anything else is returned as is.
func Decompress(name string, data []byte) ([]byte, error) {
	var (
		rom []byte
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); {
	case ext == ".gz" || bytes.HasPrefix(data, gzipMagic):
		rom, err = gunzip(data)
	case ext == ".zip" || bytes.HasPrefix(data, zipMagic):
		rom, err = unzip(data)
	case ext == ".7z" || bytes.HasPrefix(data, sevenZipMagic):
		rom, err = un7z(data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailure, name, err)
	}
	return rom, nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// archiveFile is a file inside a zip or 7z archive.
type archiveFile interface {
	Open() (io.ReadCloser, error)
	FileInfo() os.FileInfo
}

// pickROM opens the first ROM in files, falling back to the first
// regular file.
func pickROM(files []archiveFile) ([]byte, error) {
	var chosen archiveFile
	for _, f := range files {
		info := f.FileInfo()
		if info.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(info.Name())); ext == ".gb" || ext == ".gbc" {
			chosen = f
			break
		}
		if chosen == nil {
			chosen = f
		}
	}
	if chosen == nil {
		return nil, errors.New("archive holds no files")
	}

	rc, err := chosen.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func unzip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	files := make([]archiveFile, len(r.File))
	for i, f := range r.File {
		files[i] = f
	}
	return pickROM(files)
}

func un7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	files := make([]archiveFile, len(r.File))
	for i, f := range r.File {
		files[i] = f
	}
	return pickROM(files)
}
