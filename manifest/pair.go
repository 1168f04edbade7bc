package manifest

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MatePair is one resolved R1+R2 pairing for a sample and lane.
type MatePair struct {
	Sample string
	Lane   string
	R1     string
	R2     string
}

// Duplicate records an ambiguous slot: more than one file claimed the same
// sample, lane and read designator. The whole group is withheld from the
// manifest.
type Duplicate struct {
	Sample string
	Lane   string
	Read   int
	Paths  []string
}

// Report accumulates everything that was kept out of the manifest.
// Returned alongside the pairs so callers can assert on it directly.
type Report struct {
	Pairs      int
	Unmatched  []FastqFile
	Duplicates []Duplicate
}

// Clean reports whether every scanned file ended up in a MatePair.
func (r Report) Clean() bool {
	return len(r.Unmatched) == 0 && len(r.Duplicates) == 0
}

type groupKey struct {
	sample string
	lane   string
}

// Pair groups files by sample and lane and resolves R1/R2 mates.
// Groups with exactly one R1 and one R2 become a MatePair. A lone mate is
// recorded as unmatched. A group with more than one file per read slot is
// ambiguous and excluded entirely. Output order is sample then lane.
func Pair(files []FastqFile) ([]MatePair, Report) {
	groups := make(map[groupKey][]FastqFile)
	for _, f := range files {
		k := groupKey{f.Sample, f.Lane}
		groups[k] = append(groups[k], f)
	}

	keys := maps.Keys(groups)
	slices.SortFunc(keys, func(a, b groupKey) int {
		if a.sample != b.sample {
			if a.sample < b.sample {
				return -1
			}
			return 1
		}
		if a.lane != b.lane {
			if a.lane < b.lane {
				return -1
			}
			return 1
		}
		return 0
	})

	var pairs []MatePair
	var rep Report
	for _, k := range keys {
		var r1, r2 []FastqFile
		for _, f := range groups[k] {
			if f.Read == 1 {
				r1 = append(r1, f)
			} else {
				r2 = append(r2, f)
			}
		}
		if len(r1) > 1 || len(r2) > 1 {
			if len(r1) > 1 {
				rep.Duplicates = append(rep.Duplicates, Duplicate{k.sample, k.lane, 1, paths(r1)})
			}
			if len(r2) > 1 {
				rep.Duplicates = append(rep.Duplicates, Duplicate{k.sample, k.lane, 2, paths(r2)})
			}
			continue
		}
		switch {
		case len(r1) == 1 && len(r2) == 1:
			pairs = append(pairs, MatePair{Sample: k.sample, Lane: k.lane, R1: r1[0].Path, R2: r2[0].Path})
		case len(r1) == 1:
			rep.Unmatched = append(rep.Unmatched, r1[0])
		case len(r2) == 1:
			rep.Unmatched = append(rep.Unmatched, r2[0])
		}
	}
	rep.Pairs = len(pairs)
	return pairs, rep
}

func paths(files []FastqFile) []string {
	ans := make([]string, len(files))
	for i := range files {
		ans[i] = files[i].Path
	}
	return ans
}

func (d Duplicate) String() string {
	return fmt.Sprintf("sample %s lane %s R%d claimed by %d files: %v", d.Sample, d.Lane, d.Read, len(d.Paths), d.Paths)
}
