package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// collectRefs returns the video references from args followed by those read from path.
// A path of "-" reads stdin. Blank lines and lines starting with # are ignored.
// Duplicates are kept: every reference produces one batch item.
func collectRefs(args []string, path string, stdin io.Reader) ([]string, error) {
	refs := make([]string, 0, len(args))
	for _, arg := range args {
		if ref := strings.TrimSpace(arg); ref != "" {
			refs = append(refs, ref)
		}
	}
	if path == "" {
		return refs, nil
	}

	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return refs, nil
}
