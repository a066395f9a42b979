package request

import (
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
)

func TestRDORequest_ToEntity(t *testing.T) {
	r := RDORequest{
		ProjectID: "p1",
		Date:      time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:    "RASCUNHO",
		Items: []RDOItemRequest{
			{
				IndexID:         "idx1",
				EquipmentID:     "eq1",
				Km:              110.5,
				City:            "Salto",
				Segment:         "Trecho 1",
				MeasurementType: "HORA",
				Quantity:        8,
				FrozenPrice:     45,
				TotalValue:      360,
			},
		},
		Impacts: []RDOImpactRequest{
			{Type: "CHUVA", Description: "chuva forte pela manha", Duration: "2h"},
		},
	}

	rdo := r.ToEntity("rdo1")
	if rdo.ID != "rdo1" || rdo.ProjectID != "p1" {
		t.Fatalf("unexpected rdo: %+v", rdo)
	}
	if len(rdo.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(rdo.Items))
	}

	item := rdo.Items[0]
	if item.FrozenPrice != 45 || item.TotalValue != 360 {
		t.Fatalf("snapshot values changed: %+v", item)
	}
	if item.City != "Salto" || item.Segment != "Trecho 1" {
		t.Fatalf("location changed: %+v", item)
	}
	if item.MeasurementType != entities.MeasurementType("HORA") {
		t.Fatalf("unexpected measurement type %q", item.MeasurementType)
	}

	if len(rdo.Impacts) != 1 || rdo.Impacts[0].Type != entities.ImpactType("CHUVA") {
		t.Fatalf("unexpected impacts: %+v", rdo.Impacts)
	}
}

func TestRDORequest_ToEntityWithoutID(t *testing.T) {
	r := RDORequest{ProjectID: "p1", Items: []RDOItemRequest{{IndexID: "idx1"}}}
	rdo := r.ToEntity("")
	if rdo.ID != "" {
		t.Fatalf("expected empty id, got %q", rdo.ID)
	}
}
