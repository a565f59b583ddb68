package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/bitpack/layout"
	"github.com/wippyai/bitpack/witspec"
)

// parseLayoutFile reads one field per line as "name type [tag]". A line
// "@struct <tag>" before the first field sets the structure config.
func parseLayoutFile(r io.Reader) (layout.Config, []layout.Spec, error) {
	var (
		cfg   layout.Config
		specs []layout.Spec
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if parts[0] == "@struct" {
			if len(specs) > 0 {
				return cfg, nil, fmt.Errorf("line %d: @struct must come before the fields", lineNo)
			}
			c, err := layout.ParseConfigTag(strings.Join(parts[1:], ""))
			if err != nil {
				return cfg, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cfg = c
			continue
		}

		if len(parts) < 2 {
			return cfg, nil, fmt.Errorf("line %d: want \"name type [tag]\"", lineNo)
		}
		kind, err := parseKind(parts[1])
		if err != nil {
			return cfg, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		spec, err := layout.ParseTag(parts[0], kind, strings.Join(parts[2:], ""))
		if err != nil {
			return cfg, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return cfg, nil, fmt.Errorf("read layout: %w", err)
	}
	return cfg, specs, nil
}

// parseKind accepts WIT primitive names and Go integer names.
func parseKind(s string) (layout.Kind, error) {
	if k, err := witspec.ParseKind(s); err == nil {
		return k, nil
	}
	return layout.ParseKind(s)
}
