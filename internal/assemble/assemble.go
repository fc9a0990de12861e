// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble builds the output PDF from downloaded slide images,
// one page per slide at the image's native pixel size.
// Implements: docs/ARCHITECTURE § Assembly.
package assemble

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/deck2pdf/pkg/types"
)

// Sentinel errors for the assembly stage. ErrAssemble covers bad image
// data and PDF construction; ErrPDFWrite covers the filesystem side.
var (
	ErrAssemble = errors.New("assembling PDF failed")
	ErrPDFWrite = errors.New("writing PDF failed")
)

// fallbackName is the file stem used when a sanitized title is empty.
const fallbackName = "presentation"

// PDF combines the slide images, in index order, into a single PDF named
// after the sanitized title in cfg.Dir and returns its path. Every image
// must decode as JPEG or PNG; each PDF page takes its image's native
// pixel dimensions. The document is built in a temp file and renamed
// into place on success, so a failed run leaves no partial output.
func PDF(title string, images []types.SlideImage, cfg types.OutputConfig, w io.Writer) (string, error) {
	if len(images) == 0 {
		return "", fmt.Errorf("%w: no slide images to assemble", ErrAssemble)
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating output directory: %v", ErrPDFWrite, err)
	}

	readers := make([]io.Reader, len(images))
	for i, img := range images {
		if _, _, err := image.DecodeConfig(bytes.NewReader(img.Data)); err != nil {
			return "", fmt.Errorf("%w: slide %d: %v", ErrAssemble, img.Index, err)
		}
		readers[i] = bytes.NewReader(img.Data)
	}

	tmpFile, err := os.CreateTemp(dir, ".deck2pdf-*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %v", ErrPDFWrite, err)
	}
	tmpPath := tmpFile.Name()

	importErr := api.ImportImages(nil, tmpFile, readers, nil, model.NewDefaultConfiguration())
	closeErr := tmpFile.Close()
	if importErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrAssemble, importErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: closing temp file: %v", ErrPDFWrite, closeErr)
	}

	outPath := filepath.Join(dir, sanitizeTitle(title)+".pdf")
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %v", ErrPDFWrite, err)
	}

	fmt.Fprintf(w, "PDF saved successfully: %s\n", outPath)
	return outPath, nil
}

// invalidTitleChars removes the characters that are not allowed in file
// names on common filesystems.
var invalidTitleChars = strings.NewReplacer(
	"/", "", "\\", "", ":", "", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
)

// sanitizeTitle turns a deck title into a safe file name stem. Invalid
// filename characters and control characters are removed, whitespace runs
// collapse to a single space, and an empty result falls back to
// "presentation".
func sanitizeTitle(title string) string {
	clean := invalidTitleChars.Replace(title)
	clean = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, clean)
	clean = strings.Join(strings.Fields(clean), " ")
	if clean == "" {
		return fallbackName
	}
	return clean
}
