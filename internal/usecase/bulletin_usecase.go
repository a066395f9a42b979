package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"
)

var (
	ErrBulletinNotFound     = errors.New("measurement bulletin not found")
	ErrInvalidBulletinID    = errors.New("invalid bulletin id")
	ErrBulletinWithoutItems = errors.New("bulletin without items")
	ErrInvalidBulletinType  = errors.New("invalid bulletin type")
)

// IBulletinUseCase exposes the measurement bulletin store. Spreadsheet
// parsing happens upstream; Import only accepts already-structured,
// numerically well-formed line items. Items are immutable after import and
// only metadata (reference date, period text, type) may be edited.

type IBulletinUseCase interface {
	Import(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error)
	GetByID(ctx context.Context, id string) (entities.MeasurementBulletin, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.MeasurementBulletin, error)
	UpdateMetadata(ctx context.Context, id string, referenceDate time.Time, period string, bulletinType entities.IndexType) (entities.MeasurementBulletin, error)
	Delete(ctx context.Context, id string) error
}

type BulletinUseCase struct {
	repo interfaces.IBulletinRepository
}

var _ IBulletinUseCase = (*BulletinUseCase)(nil)

func NewBulletinUseCase(repo interfaces.IBulletinRepository) *BulletinUseCase {
	return &BulletinUseCase{repo: repo}
}

func (u *BulletinUseCase) Import(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
	b.ProjectID = strings.TrimSpace(b.ProjectID)
	if b.ProjectID == "" {
		return entities.MeasurementBulletin{}, ErrInvalidProjectID
	}
	if b.Type != entities.IndexTypeRental && b.Type != entities.IndexTypeConstrutora {
		return entities.MeasurementBulletin{}, ErrInvalidBulletinType
	}
	if len(b.Items) == 0 {
		return entities.MeasurementBulletin{}, ErrBulletinWithoutItems
	}

	// Summed once at import; never recomputed afterwards.
	total := 0.0
	for _, item := range b.Items {
		total += item.MeasuredValue
	}
	b.TotalValue = total

	b.ID = pkg.NewID()
	b.Period = strings.TrimSpace(b.Period)
	b.UploadDate = time.Now().UTC()
	return u.repo.Create(ctx, b)
}

func (u *BulletinUseCase) GetByID(ctx context.Context, id string) (entities.MeasurementBulletin, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MeasurementBulletin{}, ErrInvalidBulletinID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if b.ID == "" {
		return entities.MeasurementBulletin{}, ErrBulletinNotFound
	}
	return b, nil
}

func (u *BulletinUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.MeasurementBulletin, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProject(ctx, projectID)
}

func (u *BulletinUseCase) UpdateMetadata(ctx context.Context, id string, referenceDate time.Time, period string, bulletinType entities.IndexType) (entities.MeasurementBulletin, error) {
	if bulletinType != entities.IndexTypeRental && bulletinType != entities.IndexTypeConstrutora {
		return entities.MeasurementBulletin{}, ErrInvalidBulletinType
	}

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}

	b.ReferenceDate = referenceDate
	b.Period = strings.TrimSpace(period)
	b.Type = bulletinType
	return u.repo.UpdateMetadata(ctx, b)
}

func (u *BulletinUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBulletinID
	}
	return u.repo.Delete(ctx, id)
}
