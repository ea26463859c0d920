// Package sitesio loads Voronoi sites from a plain text file: one
// site per line, two decimal numbers separated by whitespace or a
// comma. Lines that don't parse are skipped with a warning rather
// than aborting the whole load, since a point file hand-edited or
// exported from another tool commonly carries the odd stray line.
//
// This package sits outside geovoronoi's core on purpose — the core
// function takes a slice of points and knows nothing about files.
package sitesio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sherlockjack/geovoronoi/internal/geom"
)

// LoadFile reads sites from path. Unparseable lines are skipped and
// logged as warnings; LoadFile only returns an error if the file
// itself can't be opened or read.
func LoadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sitesio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, path)
}

// Load reads sites from r, the way LoadFile does for a path. name is
// used only in warning messages for skipped lines.
func Load(r io.Reader, name string) ([]geom.Point, error) {
	var sites []geom.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, ok := parseLine(line)
		if !ok {
			log.Printf("sitesio: %s:%d: skipping unparseable line %q", name, lineNo, line)
			continue
		}
		sites = append(sites, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sitesio: read %s: %w", name, err)
	}
	return sites, nil
}

func parseLine(line string) (geom.Point, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return geom.Point{}, false
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, false
	}
	return geom.Point{X: x, Y: y}, true
}
