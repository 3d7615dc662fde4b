package services

import (
	"routescout/internal/models/domain_models"
	"routescout/pkg/utils"
)

type DedupeServiceInterface interface {
	Dedupe(candidates []domain_models.POICandidate) []domain_models.POICandidate
}

type DedupeService struct{}

func NewDedupeService() DedupeServiceInterface {
	return &DedupeService{}
}

// Dedupe merges candidates that describe the same physical place: same
// normalized name inside the same ~1 km proximity bucket. First seen wins
// unless a later duplicate carries strictly higher source trust or a better
// rating, in which case metadata is merged rather than discarded. Running
// Dedupe on an already deduplicated set is a no-op.
func (d *DedupeService) Dedupe(candidates []domain_models.POICandidate) []domain_models.POICandidate {
	if len(candidates) <= 1 {
		return candidates
	}

	seen := make(map[string]int, len(candidates))
	result := make([]domain_models.POICandidate, 0, len(candidates))

	for _, candidate := range candidates {
		key := utils.NormalizeNameKey(candidate.Name) + "|" + utils.ProximityBucket(candidate.Coordinate)

		idx, dup := seen[key]
		if !dup {
			seen[key] = len(result)
			result = append(result, candidate)
			continue
		}

		result[idx] = mergeCandidates(result[idx], candidate)
	}

	return result
}

// mergeCandidates keeps the more trustworthy record and unions metadata so no
// information is lost in the merge.
func mergeCandidates(kept, other domain_models.POICandidate) domain_models.POICandidate {
	preferOther := other.Source.BaseScore() > kept.Source.BaseScore() ||
		(other.Source.BaseScore() == kept.Source.BaseScore() && other.Rating > kept.Rating)

	primary, secondary := kept, other
	if preferOther {
		primary, secondary = other, kept
	}

	if primary.Rating == 0 && secondary.Rating > 0 {
		primary.Rating = secondary.Rating
	}
	if secondary.Rating > primary.Rating {
		primary.Rating = secondary.Rating
	}
	if primary.Description == "" {
		primary.Description = secondary.Description
	}
	if primary.SubType == "" {
		primary.SubType = secondary.SubType
	}
	if secondary.RelevanceScore > primary.RelevanceScore {
		primary.RelevanceScore = secondary.RelevanceScore
	}
	if primary.DetourMinutes == nil {
		primary.DetourMinutes = secondary.DetourMinutes
	}
	if primary.VisitDurationMinutes == 0 {
		primary.VisitDurationMinutes = secondary.VisitDurationMinutes
	}
	if primary.BestTimeOfDay == "" {
		primary.BestTimeOfDay = secondary.BestTimeOfDay
	}

	return primary
}
