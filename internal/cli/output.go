package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	sections  int
	items     int
}

// writeArtifacts writes one file per format. A single format goes to
// output verbatim when given; otherwise files are named base.<ext>.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)
	formats := slices.Clone(p.formats)
	slices.Sort(formats)

	var written []string
	for _, format := range formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + artifactExt(format)
		if len(formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := writeFile(path, data); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Rendered %d artifact(s)", len(written))
	for _, path := range written {
		printFile(path)
	}
	printStats(p.sections, p.items, p.cacheHit)
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
