package goals

import (
	"math"
	"testing"

	"calgen/internal/models"
)

func TestCompute_WeightsSumToOne(t *testing.T) {
	tests := []struct {
		name    string
		goalSet []models.Goal
	}{
		{"single goal", []models.Goal{models.GoalMuscle}},
		{"two goals", []models.Goal{models.GoalWeightLoss, models.GoalEndurance}},
		{"three goals", []models.Goal{models.GoalMuscle, models.GoalSkill, models.GoalEndurance}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Compute(tt.goalSet)
			sum := 0.0
			for _, v := range w {
				sum += v
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("сумма весов = %v, want 1.0", sum)
			}
		})
	}
}

func TestCompute_FixedSplits(t *testing.T) {
	w := Compute([]models.Goal{models.GoalMuscle})
	if w[models.GoalMuscle] != 1.0 {
		t.Errorf("одна цель: вес = %v, want 1.0", w[models.GoalMuscle])
	}

	w = Compute([]models.Goal{models.GoalMuscle, models.GoalSkill})
	if w[models.GoalMuscle] != 0.6 || w[models.GoalSkill] != 0.4 {
		t.Errorf("две цели: веса = %v/%v, want 0.6/0.4", w[models.GoalMuscle], w[models.GoalSkill])
	}

	w = Compute([]models.Goal{models.GoalEndurance, models.GoalWeightLoss, models.GoalSkill})
	if w[models.GoalEndurance] != 0.6 || w[models.GoalWeightLoss] != 0.3 || w[models.GoalSkill] != 0.1 {
		t.Errorf("три цели: веса = %v, want 0.6/0.3/0.1", w)
	}
}

func TestCompute_EmptySet(t *testing.T) {
	w := Compute(nil)
	if len(w) != 0 {
		t.Errorf("пустой набор целей: веса = %v, want пусто", w)
	}
	if got := w.Dominant(); got != "" {
		t.Errorf("Dominant() без целей = %q, want пусто", got)
	}
}

func TestRepRangeBias(t *testing.T) {
	tests := []struct {
		name   string
		goals  []models.Goal
		wantLo float64
		wantHi float64
	}{
		{"muscle biases high", []models.Goal{models.GoalMuscle}, 0.55, 0.80},
		{"weight loss biases low", []models.Goal{models.GoalWeightLoss}, 0.40, 0.60},
		{"endurance biases low", []models.Goal{models.GoalEndurance}, 0.40, 0.60},
		{"skill keeps default", []models.Goal{models.GoalSkill}, 0.45, 0.70},
		{"no goals default", nil, 0.45, 0.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := RepRangeBias(Compute(tt.goals))
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("RepRangeBias = %v-%v, want %v-%v", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestRest(t *testing.T) {
	if got := Rest(Compute([]models.Goal{models.GoalMuscle})); got != RestLonger {
		t.Errorf("масса: Rest = %v, want longer", got)
	}
	if got := Rest(Compute([]models.Goal{models.GoalWeightLoss})); got != RestShorter {
		t.Errorf("похудение: Rest = %v, want shorter", got)
	}
	if got := Rest(Compute(nil)); got != RestDefault {
		t.Errorf("без целей: Rest = %v, want default", got)
	}
}

func TestComputeLimits(t *testing.T) {
	l := ComputeLimits(Compute([]models.Goal{models.GoalMuscle}))
	if !l.CapCardioVolume {
		t.Error("масса доминирует: должен стоять CapCardioVolume")
	}

	l = ComputeLimits(Compute([]models.Goal{models.GoalWeightLoss}))
	if !l.CapIntervalIntensity {
		t.Error("похудение доминирует: должен стоять CapIntervalIntensity")
	}

	l = ComputeLimits(Compute([]models.Goal{models.GoalEndurance, models.GoalSkill}))
	if !l.NoSkillConditioning {
		t.Error("выбрана техника: должен стоять NoSkillConditioning")
	}
}

func TestConflict(t *testing.T) {
	if !Conflict([]models.Goal{models.GoalWeightLoss, models.GoalMuscle}) {
		t.Error("похудение + масса должны конфликтовать")
	}
	if Conflict([]models.Goal{models.GoalWeightLoss, models.GoalEndurance}) {
		t.Error("похудение + выносливость не конфликтуют")
	}
	if Conflict([]models.Goal{models.GoalMuscle}) {
		t.Error("одна цель не конфликтует")
	}
}

// При конфликте каждый день получает ровно одну доминирующую цель,
// и это всегда одна из конфликтующих или более весомая третья
func TestDominantGoalForDay_Conflict(t *testing.T) {
	goalSet := []models.Goal{models.GoalWeightLoss, models.GoalMuscle}

	for day := 1; day <= 5; day++ {
		got := DominantGoalForDay(goalSet, day)
		if got == "" {
			t.Fatalf("день %d: доминирующая цель пустая", day)
		}
		if got != models.GoalWeightLoss && got != models.GoalMuscle {
			t.Errorf("день %d: цель %s не из конфликтующей пары", day, got)
		}
	}

	if got := DominantGoalForDay(goalSet, 3); got != models.GoalWeightLoss {
		t.Errorf("кардио-день: цель %s, want weight_loss", got)
	}
	if got := DominantGoalForDay(goalSet, 5); got != models.GoalMuscle {
		t.Errorf("силовой день: цель %s, want build_muscle", got)
	}
}

func TestDominantGoalForDay_ConflictWithEndurance(t *testing.T) {
	goalSet := []models.Goal{models.GoalEndurance, models.GoalWeightLoss, models.GoalMuscle}
	if got := DominantGoalForDay(goalSet, 4); got != models.GoalEndurance {
		t.Errorf("день выносливости: цель %s, want endurance", got)
	}
}

func TestDominantGoalForDay_NoConflict(t *testing.T) {
	goalSet := []models.Goal{models.GoalEndurance}
	for day := 1; day <= 5; day++ {
		if got := DominantGoalForDay(goalSet, day); got != models.GoalEndurance {
			t.Errorf("день %d: цель %s, want endurance", day, got)
		}
	}
}

func TestUnlockedSkills(t *testing.T) {
	tests := []struct {
		name       string
		capability models.CapabilityVector
		wantNames  []string
	}{
		{
			"weak athlete unlocks nothing",
			models.CapabilityVector{Pull: 3, Dip: 3, Push: 10},
			nil,
		},
		{
			"muscle up unlocked",
			models.CapabilityVector{Pull: 10, Dip: 8, Push: 15},
			[]string{"Выход силой"},
		},
		{
			"strong athlete unlocks all",
			models.CapabilityVector{Pull: 15, Dip: 12, Push: 30, LegRaise: 20},
			[]string{"Выход силой", "Стойка на руках у стены", "Передний вис (прогрессии)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnlockedSkills(tt.capability)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("открыто %d навыков, want %d", len(got), len(tt.wantNames))
			}
			for i, s := range got {
				if s.Name != tt.wantNames[i] {
					t.Errorf("навык [%d] = %q, want %q", i, s.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestIsSkillSlot(t *testing.T) {
	want := map[int]bool{1: true, 2: false, 3: false, 4: false, 5: true}
	for day, expect := range want {
		if got := IsSkillSlot(day); got != expect {
			t.Errorf("IsSkillSlot(%d) = %v, want %v", day, got, expect)
		}
	}
}
