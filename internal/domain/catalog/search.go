package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

const DefaultSearchLimit = 20

type SearchHit struct {
	Object Object  `json:"object"`
	Kind   Kind    `json:"kind"`
	Score  float64 `json:"score"`
	Match  string  `json:"match"`
}

// Search ranks objects by how well their name matches query. Names are
// compared after normalisation; typos within a small edit distance still hit.
func (r *Registry) Search(query string, limit int) []SearchHit {
	q := normaliseName(query)
	if q == "" {
		return []SearchHit{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	hits := []SearchHit{}
	for _, kind := range r.kinds {
		for _, id := range r.byKind[kind] {
			obj := r.byID[id]
			score, match, ok := scoreName(q, normaliseName(obj.ObjectBase().Name))
			if !ok {
				continue
			}
			hits = append(hits, SearchHit{Object: obj, Kind: kind, Score: score, Match: match})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		ni, nj := hits[i].Object.ObjectBase().Name, hits[j].Object.ObjectBase().Name
		if ni != nj {
			return ni < nj
		}
		return hits[i].Object.ObjectBase().ID < hits[j].Object.ObjectBase().ID
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func scoreName(q, name string) (float64, string, bool) {
	if name == "" {
		return 0, "", false
	}
	switch {
	case name == q:
		return 1.0, "exact", true
	case strings.HasPrefix(name, q):
		return 0.9, "prefix", true
	case strings.Contains(name, q):
		return 0.8, "substring", true
	}
	if len(q) < 3 {
		return 0, "", false
	}

	best := -1
	candidates := append([]string{name}, strings.Fields(name)...)
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(q, c)
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		if best < 0 || dist < best {
			best = dist
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return 0.72 - 0.08*float64(best), "fuzzy", true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normaliseName(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
