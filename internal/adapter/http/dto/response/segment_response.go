package response

import "gestao_obras/internal/domain/entities"

type SegmentResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	StartKm     float64 `json:"start_km"`
	EndKm       float64 `json:"end_km"`
	City        string  `json:"city"`
	SegmentName string  `json:"segment_name"`
}

func FromSegment(seg entities.ProjectSegment) SegmentResponse {
	return SegmentResponse{
		ID:          seg.ID,
		ProjectID:   seg.ProjectID,
		StartKm:     seg.StartKm,
		EndKm:       seg.EndKm,
		City:        seg.City,
		SegmentName: seg.SegmentName,
	}
}

func FromSegments(segs []entities.ProjectSegment) []SegmentResponse {
	out := make([]SegmentResponse, 0, len(segs))
	for _, seg := range segs {
		out = append(out, FromSegment(seg))
	}
	return out
}

// SegmentResolutionResponse is the city/segment pair matched for a km marker.
// Both fields hold "N/A" when the marker falls outside every registered range.
type SegmentResolutionResponse struct {
	Km      float64 `json:"km"`
	City    string  `json:"city"`
	Segment string  `json:"segment"`
}
