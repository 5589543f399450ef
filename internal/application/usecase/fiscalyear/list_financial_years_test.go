package fiscalyear

import (
	"context"
	"testing"
	"time"
)

func TestListFinancialYearsUseCase(t *testing.T) {
	t.Run("enumerates from the first tracked year through the current one", func(t *testing.T) {
		uc := NewListFinancialYearsUseCase()
		uc.now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Current != "2025-2026" {
			t.Errorf("expected current 2025-2026, got %s", output.Current)
		}
		want := []string{"2022-2023", "2023-2024", "2024-2025", "2025-2026"}
		if len(output.Years) != len(want) {
			t.Fatalf("expected %d years, got %d", len(want), len(output.Years))
		}
		for i, label := range want {
			if output.Years[i] != label {
				t.Errorf("expected %s at %d, got %s", label, i, output.Years[i])
			}
		}
	})

	t.Run("year rolls in April", func(t *testing.T) {
		uc := NewListFinancialYearsUseCase()
		uc.now = func() time.Time { return time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Current != "2024-2025" {
			t.Errorf("expected current 2024-2025, got %s", output.Current)
		}
	})
}
