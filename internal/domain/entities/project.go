package entities

import "time"

// Project is a construction contract ("obra"). Reference data for every
// project-scoped aggregate.
//
// Storage model (DynamoDB):
//   - PK: id

type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	ContractValue float64   `json:"contract_value"`
	CreatedAt     time.Time `json:"created_at"`
}

// Company owns or operates fleet assets.

type Company struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsGroupMember bool      `json:"is_group_member"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectSegment is a named kilometer range ("trecho") of a project's
// geography. Ranges are inclusive on both ends, expected non-overlapping and
// stored sorted by StartKm; a single-point range (StartKm == EndKm) is valid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id

type ProjectSegment struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	StartKm     float64 `json:"start_km"`
	EndKm       float64 `json:"end_km"`
	City        string  `json:"city"`
	SegmentName string  `json:"segment_name"`
}

// SegmentUnknown is the sentinel returned when a km marker falls outside
// every registered segment of a project.
const SegmentUnknown = "N/A"
