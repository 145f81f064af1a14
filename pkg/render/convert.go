package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// rsvgBinary is the converter looked up on PATH.
var rsvgBinary = "rsvg-convert"

// ToPDF converts an SVG to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts an SVG to PNG at the given zoom; scale 2 doubles the
// pixel size. Non-positive scales fall back to 1.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

// Available reports whether PDF and PNG conversion can run here.
func Available() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}

func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	if !Available() {
		return nil, errs.New(errs.ErrCodeUnsupported,
			"%s output needs %s (librsvg2-bin on Debian, librsvg on Homebrew)", format, rsvgBinary)
	}

	cmd := exec.CommandContext(ctx, rsvgBinary, append([]string{"--format", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s %s: %w: %s", rsvgBinary, format, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
