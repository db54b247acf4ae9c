package inspection

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Report describes the state of an extracted frames directory
type Report struct {
	FrameCount  int      // files matching the numbering pattern
	MissingNums []int    // gaps in the 1-based sequence
	StrayFiles  []string // files not matching the numbering pattern
	BlankFrames []string // frames that decoded to a near-uniform image
	Undecodable []string // frames that could not be decoded as images
}

// OK returns true when the directory holds at least one frame and no
// anomalies were found
func (r Report) OK() bool {
	return r.FrameCount > 0 &&
		len(r.MissingNums) == 0 &&
		len(r.StrayFiles) == 0 &&
		len(r.BlankFrames) == 0 &&
		len(r.Undecodable) == 0
}

// Summary returns a one-line human-readable description of the report
func (r Report) Summary() string {
	if r.OK() {
		return fmt.Sprintf("%d frames, contiguous numbering, all decodable", r.FrameCount)
	}
	return fmt.Sprintf("%d frames, %d gaps, %d stray files, %d blank, %d undecodable",
		r.FrameCount, len(r.MissingNums), len(r.StrayFiles), len(r.BlankFrames), len(r.Undecodable))
}

var frameNamePattern = regexp.MustCompile(`^(\d{4})\.([a-z0-9]+)$`)

// CheckSequence classifies the given filenames against the 4-digit
// zero-padded 1-based numbering scheme with the given image extension.
// It returns the matching frame numbers in order, the gaps in the sequence,
// and any filenames that do not fit the scheme.
func CheckSequence(filenames []string, imageFormat string) (nums []int, missing []int, stray []string) {
	for _, name := range filenames {
		base := filepath.Base(name)
		m := frameNamePattern.FindStringSubmatch(base)
		if m == nil || m[2] != imageFormat {
			stray = append(stray, base)
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			stray = append(stray, base)
			continue
		}
		nums = append(nums, n)
	}

	sort.Ints(nums)

	next := 1
	for _, n := range nums {
		for next < n {
			missing = append(missing, next)
			next++
		}
		next = n + 1
	}

	return nums, missing, stray
}
