package routing

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/tspga/tsperr"
)

// ParseCoordinatesFile reads path as one "lat,long" coordinate per line,
// tolerating blank lines, per spec.md §6's real-instance coordinate format.
func ParseCoordinatesFile(path string) ([]Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tsperr.Wrap(tsperr.ErrCoordinatesFileEmpty, err.Error())
	}
	defer f.Close()

	coords, err := ParseCoordinates(f)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return nil, tsperr.ErrCoordinatesFileEmpty
	}
	return coords, nil
}

// ParseCoordinates reads r line by line, skipping blanks, parsing the rest
// as "lat,long" pairs.
func ParseCoordinates(r io.Reader) ([]Coordinate, error) {
	var coords []Coordinate
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := ParseCoordinate(line)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	if err := sc.Err(); err != nil {
		return nil, tsperr.Wrap(tsperr.ErrCoordinatesFileEmpty, err.Error())
	}
	return coords, nil
}
