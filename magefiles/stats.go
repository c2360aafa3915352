//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sourceRoots are the directories holding sourcenet packages.
var sourceRoots = []string{"cmd", "internal", "pkg"}

type packageStats struct {
	prod, test, tests int
}

// Stats prints non-blank Go lines and test function counts per package.
func Stats() error {
	stats := map[string]*packageStats{}
	for _, root := range sourceRoots {
		files, err := filepath.Glob(filepath.Join(root, "*", "*.go"))
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := countFile(stats, f); err != nil {
				return err
			}
		}
	}

	pkgs := make([]string, 0, len(stats))
	for p := range stats {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	var total packageStats
	fmt.Printf("%-20s %8s %8s %6s\n", "package", "prod", "test", "tests")
	for _, p := range pkgs {
		s := stats[p]
		fmt.Printf("%-20s %8d %8d %6d\n", p, s.prod, s.test, s.tests)
		total.prod += s.prod
		total.test += s.test
		total.tests += s.tests
	}
	fmt.Printf("%-20s %8d %8d %6d\n", "total", total.prod, total.test, total.tests)
	return nil
}

// countFile adds the lines of one Go file to its package's totals.
func countFile(stats map[string]*packageStats, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	pkg := filepath.ToSlash(filepath.Dir(path))
	s, ok := stats[pkg]
	if !ok {
		s = &packageStats{}
		stats[pkg] = s
	}
	isTest := strings.HasSuffix(path, "_test.go")

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !isTest {
			s.prod++
			continue
		}
		s.test++
		if strings.HasPrefix(line, "func Test") {
			s.tests++
		}
	}
	return sc.Err()
}
