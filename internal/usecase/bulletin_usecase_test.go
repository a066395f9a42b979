package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBulletinUseCase_Import(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewBulletinUseCase(nil)
		_, err := uc.Import(context.Background(), entities.MeasurementBulletin{ProjectID: "p1", Type: "OUTRO", Items: []entities.MeasurementItem{{}}})
		if !errors.Is(err, ErrInvalidBulletinType) {
			t.Fatalf("expected ErrInvalidBulletinType, got %v", err)
		}
	})

	t.Run("without items", func(t *testing.T) {
		uc := NewBulletinUseCase(nil)
		_, err := uc.Import(context.Background(), entities.MeasurementBulletin{ProjectID: "p1", Type: entities.IndexTypeRental})
		if !errors.Is(err, ErrBulletinWithoutItems) {
			t.Fatalf("expected ErrBulletinWithoutItems, got %v", err)
		}
	})

	t.Run("sums measured values into the total at import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBulletinRepository(ctrl)
		uc := NewBulletinUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				if b.ID == "" || b.UploadDate.IsZero() {
					t.Fatalf("expected id and upload date: %+v", b)
				}
				if b.TotalValue != 1500.75 {
					t.Fatalf("expected total 1500.75, got %v", b.TotalValue)
				}
				return b, nil
			},
		)

		_, err := uc.Import(context.Background(), entities.MeasurementBulletin{
			ProjectID: "p1",
			Type:      entities.IndexTypeConstrutora,
			Period:    "Março/2026",
			FileName:  "medicao-marco.xlsx",
			Items: []entities.MeasurementItem{
				{CodeSAP: "SAP-001", MeasuredValue: 1000.25},
				{CodeSAP: "SAP-002", MeasuredValue: 500.50},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBulletinUseCase_UpdateMetadata(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBulletinRepository(ctrl)
		uc := NewBulletinUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.MeasurementBulletin{}, nil)

		_, err := uc.UpdateMetadata(context.Background(), "b1", time.Now(), "Abril/2026", entities.IndexTypeRental)
		if !errors.Is(err, ErrBulletinNotFound) {
			t.Fatalf("expected ErrBulletinNotFound, got %v", err)
		}
	})

	t.Run("edits metadata only, items and total untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBulletinRepository(ctrl)
		uc := NewBulletinUseCase(repo)

		items := []entities.MeasurementItem{{CodeSAP: "SAP-001", MeasuredValue: 1000}}
		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.MeasurementBulletin{
			ID: "b1", ProjectID: "p1", Period: "Março/2026", Type: entities.IndexTypeConstrutora, Items: items, TotalValue: 1000,
		}, nil)
		newDate := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().UpdateMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				if b.Period != "Abril/2026" || b.Type != entities.IndexTypeRental || !b.ReferenceDate.Equal(newDate) {
					t.Fatalf("metadata not applied: %+v", b)
				}
				if len(b.Items) != 1 || b.TotalValue != 1000 {
					t.Fatalf("items/total must not change: %+v", b)
				}
				return b, nil
			},
		)

		_, err := uc.UpdateMetadata(context.Background(), "b1", newDate, "Abril/2026", entities.IndexTypeRental)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
