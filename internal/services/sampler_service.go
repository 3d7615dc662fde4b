package services

import (
	"math"

	"routescout/internal/models/domain_models"
	"routescout/pkg/utils"
)

// DefaultSampleCap bounds downstream provider calls. Uniform subsampling past
// the cap trades precision for cost.
const DefaultSampleCap = 30

type SamplerServiceInterface interface {
	SampleRoute(route []domain_models.Coordinate, intervalKm float64) []domain_models.RouteSample
}

type SamplerService struct {
	MaxSamples int
}

func NewSamplerService() SamplerServiceInterface {
	return &SamplerService{MaxSamples: DefaultSampleCap}
}

// SampleRoute walks consecutive vertex pairs accumulating great-circle
// distance and emits a sample each time the accumulator reaches intervalKm.
// The first and last vertices are always included.
func (s *SamplerService) SampleRoute(route []domain_models.Coordinate, intervalKm float64) []domain_models.RouteSample {
	if len(route) == 0 {
		return []domain_models.RouteSample{}
	}
	if len(route) == 1 {
		return []domain_models.RouteSample{{Coordinate: route[0], Index: 0}}
	}
	if intervalKm <= 0 {
		intervalKm = 25
	}

	samples := []domain_models.RouteSample{{Coordinate: route[0], Index: 0}}

	accumulated := 0.0
	for i := 1; i < len(route)-1; i++ {
		accumulated += utils.HaversineKm(route[i-1], route[i])
		if accumulated >= intervalKm {
			samples = append(samples, domain_models.RouteSample{Coordinate: route[i], Index: i})
			accumulated = 0
		}
	}

	last := len(route) - 1
	samples = append(samples, domain_models.RouteSample{Coordinate: route[last], Index: last})

	return s.capSamples(samples)
}

// capSamples uniformly subsamples past MaxSamples, keeping both endpoints.
func (s *SamplerService) capSamples(samples []domain_models.RouteSample) []domain_models.RouteSample {
	cap := s.MaxSamples
	if cap <= 0 {
		cap = DefaultSampleCap
	}
	if len(samples) <= cap {
		return samples
	}

	stride := int(math.Ceil(float64(len(samples)) / float64(cap)))
	capped := make([]domain_models.RouteSample, 0, cap)
	for i := 0; i < len(samples); i += stride {
		capped = append(capped, samples[i])
	}

	last := samples[len(samples)-1]
	if capped[len(capped)-1].Index != last.Index {
		if len(capped) >= cap {
			capped[len(capped)-1] = last
		} else {
			capped = append(capped, last)
		}
	}
	return capped
}
