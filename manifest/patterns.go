package manifest

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ReadPattern recognizes one FASTQ naming convention. Submatches for both
// regexps are: 1 sample, 2 lane token (e.g. _L001), 3 chunk suffix
// (e.g. _001), 4 extension, 5 gz suffix.
type ReadPattern struct {
	Name string
	R1   *regexp.Regexp
	R2   *regexp.Regexp
}

// DefaultPatterns holds the recognized naming conventions, tried in order.
// First match wins, R1 before R2 within each convention.
var DefaultPatterns = []ReadPattern{
	{
		Name: "_1/_2",
		R1:   regexp.MustCompile(`^(.+?)(_L\d+)?_1(_\d+)?\.(fastq|fq)(\.gz)?$`),
		R2:   regexp.MustCompile(`^(.+?)(_L\d+)?_2(_\d+)?\.(fastq|fq)(\.gz)?$`),
	},
	{
		Name: "_R1/_R2",
		R1:   regexp.MustCompile(`^(.+?)(_L\d+)?_R1(_\d+)?\.(fastq|fq)(\.gz)?$`),
		R2:   regexp.MustCompile(`^(.+?)(_L\d+)?_R2(_\d+)?\.(fastq|fq)(\.gz)?$`),
	},
}

// FastqFile is one discovered FASTQ file. Only the filename is ever
// inspected, never the contents.
type FastqFile struct {
	Path    string
	Sample  string
	Lane    string
	Read    int // 1 or 2
	Gzipped bool
	Pattern string
}

// Match tests the basename of path against each pattern in order and
// returns the parsed FastqFile. ok is false if no convention matched.
func Match(path string, patterns []ReadPattern) (f FastqFile, ok bool) {
	name := filepath.Base(path)
	for i := range patterns {
		if sm := patterns[i].R1.FindStringSubmatch(name); sm != nil {
			return fromSubmatch(path, patterns[i].Name, sm, 1), true
		}
		if sm := patterns[i].R2.FindStringSubmatch(name); sm != nil {
			return fromSubmatch(path, patterns[i].Name, sm, 2), true
		}
	}
	return FastqFile{}, false
}

func fromSubmatch(path, pattern string, sm []string, read int) FastqFile {
	lane := "1"
	if sm[2] != "" {
		lane = strings.TrimPrefix(sm[2], "_L")
	}
	return FastqFile{
		Path:    path,
		Sample:  sm[1],
		Lane:    lane,
		Read:    read,
		Gzipped: sm[5] != "",
		Pattern: pattern,
	}
}
