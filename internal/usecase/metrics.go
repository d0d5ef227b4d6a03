package usecase

import "context"

// MetricsSummary represents aggregated proctoring insights.
type MetricsSummary struct {
	TotalEvents         int64   `json:"total_events"`
	NoFaceEvents        int64   `json:"no_face_events"`
	MultipleFacesEvents int64   `json:"multiple_faces_events"`
	MismatchEvents      int64   `json:"mismatch_events"`
	AvgMismatchDistance float64 `json:"avg_mismatch_distance"`
}

// GetMetricsSummary aggregates violation metrics from the persisted event log.
func (uc *ProctorUseCase) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := uc.repo.AggregateEvents(ctx)
	if err != nil {
		return nil, err
	}

	return &MetricsSummary{
		TotalEvents:         aggregation.TotalEvents,
		NoFaceEvents:        aggregation.NoFaceCount,
		MultipleFacesEvents: aggregation.MultipleFacesCount,
		MismatchEvents:      aggregation.MismatchCount,
		AvgMismatchDistance: aggregation.AvgMismatchDistance,
	}, nil
}
