package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_obras/internal/domain/entities"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPlanningUseCase_GetPlan(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		uc := NewPlanningUseCase(nil, nil)
		_, err := uc.GetPlan(context.Background(), "p1", 13, 2026)
		if !errors.Is(err, ErrInvalidPlanMonth) {
			t.Fatalf("expected ErrInvalidPlanMonth, got %v", err)
		}
	})

	t.Run("exact match returns the saved plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanningUseCase(repo, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "p1", 3, 2026).Return(entities.MonthlyPlan{ID: "pl1", ProjectID: "p1", Month: 3, Year: 2026}, nil)

		plan, err := uc.GetPlan(context.Background(), "p1", 3, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.ID != "pl1" || plan.IsDraft() {
			t.Fatalf("expected saved plan, got %+v", plan)
		}
	})

	t.Run("carry-forward builds a draft from the previous month's fleet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanningUseCase(repo, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "p1", 4, 2026).Return(entities.MonthlyPlan{}, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "p1", 3, 2026).Return(entities.MonthlyPlan{
			ID: "pl1", ProjectID: "p1", Month: 3, Year: 2026,
			Items: []entities.PlanItem{{IndexID: "idx1", PlannedQuantity: 100, TotalValue: 4500}},
			Fleet: []entities.PlanEquipment{
				{EquipmentID: "eq1", Status: entities.FleetStatusDesmobilizacao, TargetProductive: 1000, TargetUnproductive: 200, EstimatedCost: 300},
			},
			TotalValue: 4500,
		}, nil)

		plan, err := uc.GetPlan(context.Background(), "p1", 4, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !plan.IsDraft() {
			t.Fatalf("expected unsaved draft, got id %q", plan.ID)
		}
		if plan.Month != 4 || plan.Year != 2026 {
			t.Fatalf("draft must target the requested month: %+v", plan)
		}
		if len(plan.Items) != 0 {
			t.Fatalf("items must not carry forward, got %d", len(plan.Items))
		}
		if len(plan.Fleet) != 1 || plan.Fleet[0].EquipmentID != "eq1" {
			t.Fatalf("fleet must carry forward: %+v", plan.Fleet)
		}
		if plan.Fleet[0].Status != entities.FleetStatusAtivo {
			t.Fatalf("status must reset to ATIVO, got %s", plan.Fleet[0].Status)
		}
		if plan.Fleet[0].TargetProductive != 1000 || plan.Fleet[0].EstimatedCost != 300 {
			t.Fatalf("fleet targets must be copied verbatim: %+v", plan.Fleet[0])
		}
	})

	t.Run("january falls back to december of the previous year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanningUseCase(repo, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "p1", 1, 2026).Return(entities.MonthlyPlan{}, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "p1", 12, 2025).Return(entities.MonthlyPlan{ID: "pl0", Fleet: []entities.PlanEquipment{{EquipmentID: "eq1"}}}, nil)

		plan, err := uc.GetPlan(context.Background(), "p1", 1, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !plan.IsDraft() || len(plan.Fleet) != 1 {
			t.Fatalf("expected draft from december, got %+v", plan)
		}
	})

	t.Run("no plan and no predecessor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanningUseCase(repo, nil)

		repo.EXPECT().GetByKey(gomock.Any(), "p1", 4, 2026).Return(entities.MonthlyPlan{}, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "p1", 3, 2026).Return(entities.MonthlyPlan{}, nil)

		_, err := uc.GetPlan(context.Background(), "p1", 4, 2026)
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})
}

func TestPlanningUseCase_SavePlan(t *testing.T) {
	t.Run("invalid year", func(t *testing.T) {
		uc := NewPlanningUseCase(nil, nil)
		_, err := uc.SavePlan(context.Background(), entities.MonthlyPlan{ProjectID: "p1", Month: 3})
		if !errors.Is(err, ErrInvalidPlanYear) {
			t.Fatalf("expected ErrInvalidPlanYear, got %v", err)
		}
	})

	t.Run("prices items from the current index price at save time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		indexRepo := mock_interfaces.NewMockIIndexRepository(ctrl)
		uc := NewPlanningUseCase(repo, indexRepo)

		indexRepo.EXPECT().GetByID(gomock.Any(), "idx1").Return(entities.ContractIndex{ID: "idx1", CurrentPrice: 45}, nil)
		// Deleted index prices its item at zero.
		indexRepo.EXPECT().GetByID(gomock.Any(), "idx-gone").Return(entities.ContractIndex{}, nil)
		repo.EXPECT().GetByKey(gomock.Any(), "p1", 3, 2026).Return(entities.MonthlyPlan{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.MonthlyPlan{})).DoAndReturn(
			func(_ context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error) {
				if plan.ID == "" || plan.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and created_at: %+v", plan)
				}
				if plan.Items[0].TotalValue != 4500 {
					t.Fatalf("expected item priced at 4500, got %v", plan.Items[0].TotalValue)
				}
				if plan.Items[1].TotalValue != 0 {
					t.Fatalf("dangling index must price at zero, got %v", plan.Items[1].TotalValue)
				}
				if plan.TotalValue != 4500 {
					t.Fatalf("expected plan total 4500, got %v", plan.TotalValue)
				}
				return plan, nil
			},
		)

		_, err := uc.SavePlan(context.Background(), entities.MonthlyPlan{
			ProjectID: "p1", Month: 3, Year: 2026,
			Items: []entities.PlanItem{
				{IndexID: "idx1", PlannedQuantity: 100},
				{IndexID: "idx-gone", PlannedQuantity: 50},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("replaces in place when a record exists for the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanningUseCase(repo, nil)

		existing := entities.MonthlyPlan{ID: "pl1", ProjectID: "p1", Month: 3, Year: 2026}
		repo.EXPECT().GetByKey(gomock.Any(), "p1", 3, 2026).Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error) {
				if plan.ID != "pl1" {
					t.Fatalf("expected upsert to keep id pl1, got %q", plan.ID)
				}
				return plan, nil
			},
		)

		_, err := uc.SavePlan(context.Background(), entities.MonthlyPlan{ProjectID: "p1", Month: 3, Year: 2026})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
