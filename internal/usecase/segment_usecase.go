package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
)

var (
	ErrInvalidSegmentRange = errors.New("invalid segment km range")
	ErrInvalidSegmentCity  = errors.New("invalid segment city")
)

// ISegmentUseCase exposes the kilometer-range reference table ("trechos") and
// the km -> location lookup used to attribute production to a city/segment.

type ISegmentUseCase interface {
	Register(ctx context.Context, s entities.ProjectSegment) (entities.ProjectSegment, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProjectSegment, error)
	Resolve(ctx context.Context, projectID string, km float64) (city, segment string, err error)
}

type SegmentUseCase struct {
	repo interfaces.ISegmentRepository
}

var _ ISegmentUseCase = (*SegmentUseCase)(nil)

func NewSegmentUseCase(repo interfaces.ISegmentRepository) *SegmentUseCase {
	return &SegmentUseCase{repo: repo}
}

func (u *SegmentUseCase) Register(ctx context.Context, s entities.ProjectSegment) (entities.ProjectSegment, error) {
	s.ProjectID = strings.TrimSpace(s.ProjectID)
	s.City = strings.TrimSpace(s.City)
	s.SegmentName = strings.TrimSpace(s.SegmentName)
	if s.ProjectID == "" {
		return entities.ProjectSegment{}, ErrInvalidProjectID
	}
	if s.City == "" {
		return entities.ProjectSegment{}, ErrInvalidSegmentCity
	}
	// Single-point ranges (StartKm == EndKm) are valid markers.
	if s.StartKm < 0 || s.EndKm < s.StartKm {
		return entities.ProjectSegment{}, ErrInvalidSegmentRange
	}

	s.ID = pkg.NewID()
	return u.repo.Create(ctx, s)
}

func (u *SegmentUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.ProjectSegment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	segments, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartKm < segments[j].StartKm
	})
	return segments, nil
}

// Resolve maps a km marker to its city/segment: first range containing km
// wins (inclusive on both ends). Markers outside every range resolve to the
// "N/A" sentinel pair rather than an error.
func (u *SegmentUseCase) Resolve(ctx context.Context, projectID string, km float64) (string, string, error) {
	segments, err := u.ListByProject(ctx, projectID)
	if err != nil {
		return "", "", err
	}

	for _, s := range segments {
		if km >= s.StartKm && km <= s.EndKm {
			return s.City, s.SegmentName, nil
		}
	}
	return entities.SegmentUnknown, entities.SegmentUnknown, nil
}
