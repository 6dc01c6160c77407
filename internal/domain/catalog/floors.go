package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// minFloorRun is the shortest run of consecutive floors collapsed to "a-b".
const minFloorRun = 3

// FormatFloors renders floors ascending, collapsing runs of three or more
// consecutive floors: [1 2 3 5 7 8 9] -> "1-3, 5, 7-9".
func FormatFloors(floors []int) string {
	sorted := normalizeFloors(floors)
	if len(sorted) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sorted))
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1]+1 {
			continue
		}
		parts = appendRun(parts, sorted[start:i])
		start = i
	}
	return strings.Join(parts, ", ")
}

func appendRun(parts []string, run []int) []string {
	if len(run) >= minFloorRun {
		return append(parts, strconv.Itoa(run[0])+"-"+strconv.Itoa(run[len(run)-1]))
	}
	for _, f := range run {
		parts = append(parts, strconv.Itoa(f))
	}
	return parts
}

func normalizeFloors(floors []int) []int {
	if len(floors) == 0 {
		return []int{}
	}
	seen := make(map[int]struct{}, len(floors))
	out := make([]int, 0, len(floors))
	for _, f := range floors {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}
