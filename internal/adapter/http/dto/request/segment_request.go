package request

type SegmentRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	StartKm     float64 `json:"start_km"`
	EndKm       float64 `json:"end_km"`
	City        string  `json:"city" binding:"required"`
	SegmentName string  `json:"segment_name"`
}
