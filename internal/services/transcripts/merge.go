package transcripts

import (
	"sort"

	"github.com/coursekit/video-api/internal/models"
)

// FilterBySource selects transcripts of one source, or everything but that
// source when exclude is set.
func FilterBySource(transcripts []models.Transcript, source models.TranscriptSource, exclude bool) []models.Transcript {
	filtered := make([]models.Transcript, 0, len(transcripts))
	for _, transcript := range transcripts {
		if (transcript.Source == source) != exclude {
			filtered = append(filtered, transcript)
		}
	}
	return filtered
}

// MergeDefaults combines platform default transcripts with a video's stored
// manual transcripts. A manual transcript shadows the platform default in the
// same language. The result is deduplicated per language and sorted by
// language code, so merging is idempotent: feeding the output back in with
// the same manual set reproduces it.
func MergeDefaults(defaults, manual []models.Transcript) []models.Transcript {
	manualLangs := make(map[string]bool, len(manual))
	for _, transcript := range manual {
		manualLangs[transcript.Lang] = true
	}

	seen := make(map[string]bool, len(defaults))
	merged := make([]models.Transcript, 0, len(defaults))
	for _, transcript := range defaults {
		if manualLangs[transcript.Lang] || seen[transcript.Lang] {
			continue
		}
		seen[transcript.Lang] = true
		merged = append(merged, transcript)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Lang < merged[j].Lang
	})
	return merged
}
