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

func newTestSegments(t *testing.T, ctrl *gomock.Controller, segments []entities.ProjectSegment) ISegmentUseCase {
	t.Helper()
	repo := mock_interfaces.NewMockISegmentRepository(ctrl)
	repo.EXPECT().ListByProject(gomock.Any(), gomock.Any()).Return(segments, nil).AnyTimes()
	return NewSegmentUseCase(repo)
}

func TestRDOUseCase_SetItemIndex(t *testing.T) {
	t.Run("invalid index id", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil, nil)
		_, err := uc.SetItemIndex(context.Background(), entities.RDOItem{}, " ")
		if !errors.Is(err, ErrInvalidIndexID) {
			t.Fatalf("expected ErrInvalidIndexID, got %v", err)
		}
	})

	t.Run("index not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		indexRepo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewRDOUseCase(nil, indexRepo, nil)

		indexRepo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{}, nil)

		_, err := uc.SetItemIndex(context.Background(), entities.RDOItem{}, "idx1")
		if !errors.Is(err, ErrIndexNotFound) {
			t.Fatalf("expected ErrIndexNotFound, got %v", err)
		}
	})

	t.Run("freezes the current price and recomputes the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		indexRepo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewRDOUseCase(nil, indexRepo, nil)

		indexRepo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{ID: "idx1", CurrentPrice: 45}, nil)

		item, err := uc.SetItemIndex(context.Background(), entities.RDOItem{ID: "it1", Quantity: 10}, "idx1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.FrozenPrice != 45 {
			t.Fatalf("expected frozen price 45, got %v", item.FrozenPrice)
		}
		if item.TotalValue != 450 {
			t.Fatalf("expected total 450, got %v", item.TotalValue)
		}
	})

	t.Run("a later revision does not touch an already frozen item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		indexRepo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewRDOUseCase(nil, indexRepo, nil)

		indexRepo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{ID: "idx1", CurrentPrice: 45}, nil)
		item, err := uc.SetItemIndex(context.Background(), entities.RDOItem{ID: "it1", Quantity: 10}, "idx1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Revise the index through its own usecase, sharing the repo.
		indexUC := NewIndexUseCase(indexRepo)
		indexRepo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{ID: "idx1", ProjectID: "p1", CurrentPrice: 45, TotalQuantity: 100}, nil)
		indexRepo.EXPECT().AddRevision(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rev entities.IndexRevision) (entities.IndexRevision, error) { return rev, nil },
		)
		indexRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) { return idx, nil },
		)
		if _, err := indexUC.Revise(context.Background(), "idx1", 50, 100, time.Now(), "reajuste"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if item.FrozenPrice != 45 || item.TotalValue != 450 {
			t.Fatalf("frozen item must not change: %+v", item)
		}
	})
}

func TestRDOUseCase_SetItemQuantity(t *testing.T) {
	uc := NewRDOUseCase(nil, nil, nil)

	t.Run("negative quantity", func(t *testing.T) {
		_, err := uc.SetItemQuantity(entities.RDOItem{}, -1)
		if !errors.Is(err, ErrInvalidItemQuantity) {
			t.Fatalf("expected ErrInvalidItemQuantity, got %v", err)
		}
	})

	t.Run("recomputes using the frozen price only", func(t *testing.T) {
		item, err := uc.SetItemQuantity(entities.RDOItem{FrozenPrice: 42}, 200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.TotalValue != 8400 {
			t.Fatalf("expected total 8400, got %v", item.TotalValue)
		}
		if item.FrozenPrice != 42 {
			t.Fatalf("price must not change, got %v", item.FrozenPrice)
		}
	})
}

func TestRDOUseCase_SetItemKm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	segments := newTestSegments(t, ctrl, []entities.ProjectSegment{
		{ID: "s1", ProjectID: "p1", StartKm: 0, EndKm: 10, City: "Itu", SegmentName: "Trecho 1"},
		{ID: "s2", ProjectID: "p1", StartKm: 10.001, EndKm: 25, City: "Salto", SegmentName: "Trecho 2"},
	})
	uc := NewRDOUseCase(nil, nil, segments)

	t.Run("denormalizes resolved city and segment", func(t *testing.T) {
		item, err := uc.SetItemKm(context.Background(), "p1", entities.RDOItem{ID: "it1"}, 12.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Km != 12.5 || item.City != "Salto" || item.Segment != "Trecho 2" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("unmatched km stores the sentinel", func(t *testing.T) {
		item, err := uc.SetItemKm(context.Background(), "p1", entities.RDOItem{ID: "it1"}, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.City != entities.SegmentUnknown || item.Segment != entities.SegmentUnknown {
			t.Fatalf("expected sentinel, got %+v", item)
		}
	})
}

func TestRDOUseCase_Save(t *testing.T) {
	t.Run("without project", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil, nil)
		_, err := uc.Save(context.Background(), entities.RDO{Items: []entities.RDOItem{{IndexID: "idx1", MeasurementType: entities.MeasurementProdutivo}}})
		if !errors.Is(err, ErrRDOWithoutProject) {
			t.Fatalf("expected ErrRDOWithoutProject, got %v", err)
		}
	})

	t.Run("without items", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil, nil)
		_, err := uc.Save(context.Background(), entities.RDO{ProjectID: "p1"})
		if !errors.Is(err, ErrRDOWithoutItems) {
			t.Fatalf("expected ErrRDOWithoutItems, got %v", err)
		}
	})

	t.Run("item without index", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil, nil)
		_, err := uc.Save(context.Background(), entities.RDO{ProjectID: "p1", Items: []entities.RDOItem{{MeasurementType: entities.MeasurementProdutivo}}})
		if !errors.Is(err, ErrItemWithoutIndex) {
			t.Fatalf("expected ErrItemWithoutIndex, got %v", err)
		}
	})

	t.Run("create persists the item snapshot verbatim and sums the daily total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RDO{})).DoAndReturn(
			func(_ context.Context, rdo entities.RDO) (entities.RDO, error) {
				if rdo.ID == "" || rdo.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and created_at: %+v", rdo)
				}
				if rdo.Status != entities.RDOStatusApproved {
					t.Fatalf("expected approved status, got %s", rdo.Status)
				}
				if rdo.Items[0].FrozenPrice != 42 || rdo.Items[0].TotalValue != 8400 {
					t.Fatalf("frozen snapshot must be persisted verbatim: %+v", rdo.Items[0])
				}
				if rdo.TotalDailyValue != 8400+300 {
					t.Fatalf("expected daily total 8700, got %v", rdo.TotalDailyValue)
				}
				return rdo, nil
			},
		)

		saved, err := uc.Save(context.Background(), entities.RDO{
			ProjectID: "p1",
			Items: []entities.RDOItem{
				{ID: "it1", IndexID: "idx3", MeasurementType: entities.MeasurementProdutivo, Quantity: 200, FrozenPrice: 42, TotalValue: 8400},
				{IndexID: "idx4", MeasurementType: entities.MeasurementImprodutivo, Quantity: 10, FrozenPrice: 30, TotalValue: 300},
			},
			Impacts: []entities.RDOImpact{{Type: entities.ImpactClima, Description: "chuva forte", Duration: "2h"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Items[1].ID == "" || saved.Impacts[0].ID == "" {
			t.Fatalf("expected ids assigned to new items and impacts")
		}
		if saved.Items[0].RDOID != saved.ID {
			t.Fatalf("expected items linked to the report")
		}
	})

	t.Run("update of unknown id fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.RDO{}, nil)

		_, err := uc.Save(context.Background(), entities.RDO{ID: "r1", ProjectID: "p1", Items: []entities.RDOItem{{IndexID: "idx1", MeasurementType: entities.MeasurementProdutivo}}})
		if !errors.Is(err, ErrRDONotFound) {
			t.Fatalf("expected ErrRDONotFound, got %v", err)
		}
	})
}

// End-to-end freeze scenario: an item frozen at 42.00 survives a revision to
// 45.00 untouched, while a new item created afterwards freezes at 45.00.
func TestRDOUseCase_PriceFreezeAcrossRevision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	indexRepo := mock_interfaces.NewMockIIndexRepository(ctrl)
	rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
	uc := NewRDOUseCase(rdoRepo, indexRepo, nil)
	indexUC := NewIndexUseCase(indexRepo)

	stored := entities.ContractIndex{ID: "idx3", ProjectID: "p1", CurrentPrice: 42, TotalQuantity: 500, TotalValue: 21000}
	indexRepo.EXPECT().GetByID(gomock.Any(), "idx3").DoAndReturn(
		func(context.Context, string) (entities.ContractIndex, error) { return stored, nil },
	).AnyTimes()
	indexRepo.EXPECT().AddRevision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rev entities.IndexRevision) (entities.IndexRevision, error) { return rev, nil },
	)
	indexRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
			stored = idx
			return idx, nil
		},
	)

	var persisted entities.RDO
	rdoRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rdo entities.RDO) (entities.RDO, error) {
			persisted = rdo
			return rdo, nil
		},
	)
	rdoRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) (entities.RDO, error) { return persisted, nil },
	)

	item := uc.NewItem()
	item, err := uc.SetItemIndex(context.Background(), item, "idx3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, err = uc.SetItemQuantity(item, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.FrozenPrice != 42 || item.TotalValue != 8400 {
		t.Fatalf("expected freeze at 42/8400, got %+v", item)
	}

	saved, err := uc.Save(context.Background(), entities.RDO{ProjectID: "p1", Items: []entities.RDOItem{item}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := indexUC.Revise(context.Background(), "idx3", 45, 500, time.Now(), "reajuste"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refetched, err := uc.GetByID(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refetched.Items[0].FrozenPrice != 42 || refetched.Items[0].TotalValue != 8400 {
		t.Fatalf("historical item must keep its frozen price: %+v", refetched.Items[0])
	}

	fresh, err := uc.SetItemIndex(context.Background(), uc.NewItem(), "idx3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.FrozenPrice != 45 {
		t.Fatalf("new item must freeze the revised price, got %v", fresh.FrozenPrice)
	}
}

func TestRDOUseCase_DailySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRDORepository(ctrl)
	uc := NewRDOUseCase(repo, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.RDO{
		ID: "r1", ProjectID: "p1",
		Items: []entities.RDOItem{
			{Segment: "Trecho 1", City: "Itu", EquipmentID: "eq1", MeasurementType: entities.MeasurementProdutivo, TotalValue: 100},
			{Segment: "Trecho 1", City: "Itu", EquipmentID: "eq1", MeasurementType: entities.MeasurementImprodutivo, TotalValue: 40},
			{Segment: "Trecho 1", City: "Itu", EquipmentID: "eq2", MeasurementType: entities.MeasurementProdutivo, TotalValue: 70},
			{Segment: "Trecho 2", City: "Salto", EquipmentID: "eq1", MeasurementType: entities.MeasurementProdutivo, TotalValue: 55},
		},
	}, nil)

	rows, err := uc.DailySummary(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 grouped rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Segment != "Trecho 1" || first.EquipmentID != "eq1" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.ProductiveValue != 100 || first.UnproductiveValue != 40 || first.TotalValue != 140 {
		t.Fatalf("unexpected sums: %+v", first)
	}
	if rows[2].Segment != "Trecho 2" || rows[2].TotalValue != 55 {
		t.Fatalf("unexpected last row: %+v", rows[2])
	}
}
