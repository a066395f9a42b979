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

func TestIndexUseCase_Create(t *testing.T) {
	t.Run("invalid project", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ContractIndex{ItemCode: "1.1", Type: entities.IndexTypeRental, CurrentPrice: 10})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("invalid item code", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ContractIndex{ProjectID: "p1", Type: entities.IndexTypeRental, CurrentPrice: 10})
		if !errors.Is(err, ErrInvalidIndexItemCode) {
			t.Fatalf("expected ErrInvalidIndexItemCode, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ContractIndex{ProjectID: "p1", ItemCode: "1.1", Type: "OUTRO", CurrentPrice: 10})
		if !errors.Is(err, ErrInvalidIndexType) {
			t.Fatalf("expected ErrInvalidIndexType, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ContractIndex{ProjectID: "p1", ItemCode: "1.1", Type: entities.IndexTypeRental})
		if !errors.Is(err, ErrInvalidIndexPrice) {
			t.Fatalf("expected ErrInvalidIndexPrice, got %v", err)
		}
	})

	t.Run("success computes total and starts at revision zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractIndex{})).DoAndReturn(
			func(_ context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
				if idx.ID == "" {
					t.Fatalf("expected generated id")
				}
				if idx.Revision != 0 {
					t.Fatalf("expected revision 0, got %d", idx.Revision)
				}
				if idx.TotalValue != 45.0*100 {
					t.Fatalf("expected total 4500, got %v", idx.TotalValue)
				}
				return idx, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.ContractIndex{
			ProjectID:     "p1",
			ItemCode:      "1.1",
			CodeSAP:       "SAP-001",
			Type:          entities.IndexTypeRental,
			CurrentPrice:  45.0,
			TotalQuantity: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestIndexUseCase_Revise(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.Revise(context.Background(), "idx1", 0, 10, time.Now(), "reajuste")
		if !errors.Is(err, ErrInvalidIndexPrice) {
			t.Fatalf("expected ErrInvalidIndexPrice, got %v", err)
		}
	})

	t.Run("index not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{}, nil)

		_, err := uc.Revise(context.Background(), "idx1", 50, 100, time.Now(), "reajuste")
		if !errors.Is(err, ErrIndexNotFound) {
			t.Fatalf("expected ErrIndexNotFound, got %v", err)
		}
	})

	t.Run("appends revision then replaces snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		effective := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{
			ID: "idx1", ProjectID: "p1", CurrentPrice: 45, TotalQuantity: 100, TotalValue: 4500, Revision: 2,
		}, nil)
		repo.EXPECT().AddRevision(gomock.Any(), gomock.AssignableToTypeOf(entities.IndexRevision{})).DoAndReturn(
			func(_ context.Context, rev entities.IndexRevision) (entities.IndexRevision, error) {
				if rev.IndexID != "idx1" || rev.Price != 50 || rev.Quantity != 120 || !rev.EffectiveDate.Equal(effective) {
					t.Fatalf("unexpected revision: %+v", rev)
				}
				return rev, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractIndex{})).DoAndReturn(
			func(_ context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
				if idx.CurrentPrice != 50 || idx.TotalQuantity != 120 || idx.TotalValue != 6000 {
					t.Fatalf("unexpected snapshot: %+v", idx)
				}
				if idx.Revision != 3 {
					t.Fatalf("expected revision 3, got %d", idx.Revision)
				}
				if !idx.LastRevisionDate.Equal(effective) {
					t.Fatalf("expected last revision date %v, got %v", effective, idx.LastRevisionDate)
				}
				return idx, nil
			},
		)

		updated, err := uc.Revise(context.Background(), "idx1", 50, 120, effective, "reajuste contratual")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TotalValue != 6000 {
			t.Fatalf("expected total 6000, got %v", updated.TotalValue)
		}
	})

	t.Run("revision counter grows by one per call and snapshot reflects the last call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		// In-memory stand-in so consecutive calls observe each other.
		stored := entities.ContractIndex{ID: "idx1", ProjectID: "p1", CurrentPrice: 45, TotalQuantity: 100, TotalValue: 4500, Revision: 0}
		repo.EXPECT().GetByID(gomock.Any(), "idx1").DoAndReturn(
			func(context.Context, string) (entities.ContractIndex, error) { return stored, nil },
		).Times(3)
		repo.EXPECT().AddRevision(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rev entities.IndexRevision) (entities.IndexRevision, error) { return rev, nil },
		).Times(3)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
				stored = idx
				return idx, nil
			},
		).Times(3)

		calls := []struct{ price, qty float64 }{{46, 100}, {48, 90}, {52.5, 80}}
		for _, c := range calls {
			if _, err := uc.Revise(context.Background(), "idx1", c.price, c.qty, time.Now(), "r"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if stored.Revision != 3 {
			t.Fatalf("expected revision 3, got %d", stored.Revision)
		}
		if stored.CurrentPrice != 52.5 || stored.TotalQuantity != 80 || stored.TotalValue != 52.5*80 {
			t.Fatalf("snapshot should reflect only the last call: %+v", stored)
		}
	})
}

func TestIndexUseCase_ListRevisions(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		_, err := uc.ListRevisions(context.Background(), " ")
		if !errors.Is(err, ErrInvalidIndexID) {
			t.Fatalf("expected ErrInvalidIndexID, got %v", err)
		}
	})

	t.Run("sorted by effective date descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		d := func(m time.Month) time.Time { return time.Date(2026, m, 1, 0, 0, 0, 0, time.UTC) }
		repo.EXPECT().ListRevisions(gomock.Any(), "idx1").Return([]entities.IndexRevision{
			{ID: "r1", EffectiveDate: d(time.January)},
			{ID: "r3", EffectiveDate: d(time.March)},
			{ID: "r2", EffectiveDate: d(time.February)},
		}, nil)

		revs, err := uc.ListRevisions(context.Background(), "idx1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revs[0].ID != "r3" || revs[1].ID != "r2" || revs[2].ID != "r1" {
			t.Fatalf("unexpected order: %v %v %v", revs[0].ID, revs[1].ID, revs[2].ID)
		}
	})
}

func TestIndexUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewIndexUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidIndexID) {
			t.Fatalf("expected ErrInvalidIndexID, got %v", err)
		}
	})

	t.Run("delete is unconditional and touches only the index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewIndexUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "idx1").Return(nil)

		if err := uc.Delete(context.Background(), "idx1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
