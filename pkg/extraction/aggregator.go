package extraction

import (
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// DefaultTitleSimilarityThreshold is the length-difference cutoff for
// the title near-duplicate heuristic. Deliberately loose: catalog bloat
// from re-wrapped duplicate titles is worse than the occasional false
// merge.
const DefaultTitleSimilarityThreshold = 10

// Aggregate merges per-chunk requirement lists: exact requirement_id
// dedup first, then title-similarity dedup where the longer description
// wins. Output order is not guaranteed; list endpoints sort by
// requirement_id downstream.
func Aggregate(lists ...[]compliance.RequirementRecord) []compliance.RequirementRecord {
	return AggregateWithThreshold(DefaultTitleSimilarityThreshold, lists...)
}

// AggregateWithThreshold is Aggregate with a tunable title-length
// threshold.
func AggregateWithThreshold(titleThreshold int, lists ...[]compliance.RequirementRecord) []compliance.RequirementRecord {
	// seenIDs maps a non-empty requirement_id to its index in unique.
	seenIDs := map[string]int{}
	var unique []compliance.RequirementRecord

	for _, list := range lists {
		for _, req := range list {
			// Empty ids are never deduplicated by id, only by title.
			if req.RequirementID != "" {
				if idx, seen := seenIDs[req.RequirementID]; seen {
					// Same id emitted from two chunks: the more complete
					// extraction (longer description) survives.
					if len(req.Description) > len(unique[idx].Description) {
						unique[idx] = req
					}
					continue
				}
			}

			if idx, dup := findTitleDuplicate(unique, req, titleThreshold); dup {
				// Same logical requirement under a re-wrapped title: the
				// more detailed description survives.
				if len(req.Description) > len(unique[idx].Description) {
					if unique[idx].RequirementID != "" {
						delete(seenIDs, unique[idx].RequirementID)
					}
					unique[idx] = req
					if req.RequirementID != "" {
						seenIDs[req.RequirementID] = idx
					}
				}
				continue
			}

			unique = append(unique, req)
			if req.RequirementID != "" {
				seenIDs[req.RequirementID] = len(unique) - 1
			}
		}
	}

	return unique
}

// findTitleDuplicate reports whether req is a near-duplicate of an
// already kept record: one title contains the other, or their lengths
// differ by less than threshold characters. Empty titles never match.
func findTitleDuplicate(kept []compliance.RequirementRecord, req compliance.RequirementRecord, threshold int) (int, bool) {
	title := strings.ToLower(req.Title)
	if title == "" {
		return 0, false
	}
	for i, existing := range kept {
		existingTitle := strings.ToLower(existing.Title)
		if existingTitle == "" {
			continue
		}
		if strings.Contains(existingTitle, title) || strings.Contains(title, existingTitle) ||
			absInt(len(title)-len(existingTitle)) < threshold {
			return i, true
		}
	}
	return 0, false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
