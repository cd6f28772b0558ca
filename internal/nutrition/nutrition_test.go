package nutrition

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"calgen/internal/models"
)

func TestCalculate_BuildMuscleExample(t *testing.T) {
	plan := Calculate(175, 70, []models.Goal{models.GoalMuscle})

	// Миффлин-Сан Жеор: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	if plan.BMR != 1649 {
		t.Errorf("BMR = %d, want 1649", plan.BMR)
	}
	// 1648.75 * 1.4 * 1.08 = 2492.9
	if plan.TotalEnergy != 2493 {
		t.Errorf("TotalEnergy = %d, want 2493", plan.TotalEnergy)
	}
	// 70 кг * 2.2 г/кг
	if plan.ProteinGrams != 154 {
		t.Errorf("ProteinGrams = %d, want 154", plan.ProteinGrams)
	}
	if len(plan.SampleMeals) != 5 {
		t.Errorf("приёмов пищи %d, want 5", len(plan.SampleMeals))
	}
}

func TestCalculate_GoalAdjustments(t *testing.T) {
	tests := []struct {
		name   string
		goals  []models.Goal
		factor float64
	}{
		{"weight loss deficit", []models.Goal{models.GoalWeightLoss}, 0.90},
		{"muscle surplus", []models.Goal{models.GoalMuscle}, 1.08},
		{"endurance slight surplus", []models.Goal{models.GoalEndurance}, 1.02},
		{"no goals maintenance", nil, 1.0},
		{"skill only maintenance", []models.Goal{models.GoalSkill}, 1.0},
	}

	maintenance := Calculate(180, 80, nil).TotalEnergy
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(180, 80, tt.goals).TotalEnergy
			want := int(float64(maintenance)*tt.factor + 0.5)
			// Допуск на независимое округление
			if diff := got - want; diff < -2 || diff > 2 {
				t.Errorf("TotalEnergy = %d, want ~%d", got, want)
			}
		})
	}
}

func TestCalculate_SentinelOnMissingData(t *testing.T) {
	tests := []struct {
		name   string
		height int
		weight int
	}{
		{"both zero", 0, 0},
		{"height missing", 0, 70},
		{"weight missing", 175, 0},
		{"height implausible", 80, 70},
		{"weight implausible", 175, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Calculate(tt.height, tt.weight, nil)
			if plan.Note != NoDataNote {
				t.Errorf("Note = %q, want %q", plan.Note, NoDataNote)
			}
			if plan.TotalEnergy != 0 || len(plan.SampleMeals) != 0 {
				t.Error("план-заглушка не должен содержать расчётов")
			}
		})
	}
}

// Расчёт чистый: повторный вызов даёт идентичный план
func TestCalculate_Pure(t *testing.T) {
	a := Calculate(175, 70, []models.Goal{models.GoalWeightLoss})
	b := Calculate(175, 70, []models.Goal{models.GoalWeightLoss})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("повторный расчёт отличается (-первый +второй):\n%s", diff)
	}
}

// Масштабирование рациона ограничено, чтобы приёмы пищи
// оставались реалистичными
func TestSampleMeals_RatioClamped(t *testing.T) {
	huge := sampleMeals(10000, 400)
	tiny := sampleMeals(800, 40)

	// Потолок 1.4 по энергии: завтрак не больше 600*1.4
	if huge[0].Kcal > 840 {
		t.Errorf("завтрак %d ккал превышает потолок масштабирования", huge[0].Kcal)
	}
	// Пол 0.7 по энергии: завтрак не меньше 600*0.7
	if tiny[0].Kcal < 420 {
		t.Errorf("завтрак %d ккал ниже пола масштабирования", tiny[0].Kcal)
	}
	// Белок клампится отдельно: [0.8, 1.3]
	if huge[0].Protein > 39 || tiny[0].Protein < 24 {
		t.Errorf("белок завтрака вне пределов: huge=%d tiny=%d", huge[0].Protein, tiny[0].Protein)
	}
}
