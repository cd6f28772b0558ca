// Package nutrition считает ориентировочную калорийность и белок
// по формуле Миффлина-Сан Жеора и собирает примерный рацион.
// Расчёт чистый: одни и те же входы всегда дают один и тот же план.
package nutrition

import (
	"fmt"
	"math"

	"calgen/internal/models"
)

// Формула привязана к усреднённому мужскому профилю 30 лет:
// пол и возраст в анкету не входят
const (
	defaultAge     = 30
	sexConstant    = 5   // Мужская константа формулы
	activityFactor = 1.4 // Умеренная активность: 3-5 тренировок в неделю
)

// NoDataNote план без расчёта: не хватает роста или веса
const NoDataNote = "недостаточно данных"

// Calculate строит план питания. При нулевом росте или весе возвращается
// план-заглушка с пометкой, генерация программы из-за этого не падает.
func Calculate(heightCm, weightKg int, goalSet []models.Goal) *models.NutritionPlan {
	if heightCm < 100 || weightKg < 30 {
		return &models.NutritionPlan{Note: NoDataNote}
	}

	// Миффлин-Сан Жеор: 10*вес + 6.25*рост - 5*возраст + 5
	bmr := 10*float64(weightKg) + 6.25*float64(heightCm) - 5*defaultAge + sexConstant
	maintenance := bmr * activityFactor

	energyFactor, proteinPerKg, note := goalAdjustment(goalSet)
	total := maintenance * energyFactor
	protein := float64(weightKg) * proteinPerKg

	plan := &models.NutritionPlan{
		BMR:          int(math.Round(bmr)),
		TotalEnergy:  int(math.Round(total)),
		ProteinGrams: int(math.Round(protein)),
		Note:         note,
	}
	plan.SampleMeals = sampleMeals(plan.TotalEnergy, plan.ProteinGrams)
	return plan
}

// goalAdjustment множитель калорийности и норма белка по первой
// распознанной цели
func goalAdjustment(goalSet []models.Goal) (energy, proteinPerKg float64, note string) {
	for _, g := range goalSet {
		switch g {
		case models.GoalWeightLoss:
			return 0.90, 2.0, "Умеренный дефицит: белок держим высоким, чтобы сохранить мышцы"
		case models.GoalMuscle:
			return 1.08, 2.2, "Небольшой профицит под рост мышечной массы"
		case models.GoalEndurance:
			return 1.02, 1.8, "Лёгкий профицит: углеводы — основное топливо для объёмной работы"
		}
	}
	return 1.0, 1.8, "Поддерживающая калорийность"
}

// Базовый рацион на ~2400 ккал и 150 г белка, подобран под тренировки
// во второй половине дня. Масштабируется под расчётные цифры атлета.
var mealTemplates = []models.Meal{
	{Name: "Завтрак", Kcal: 600, Protein: 30, Carbs: 75, Fat: 18},
	{Name: "Перекус", Kcal: 250, Protein: 15, Carbs: 30, Fat: 8},
	{Name: "Обед", Kcal: 700, Protein: 45, Carbs: 80, Fat: 22},
	{Name: "После тренировки", Kcal: 250, Protein: 25, Carbs: 30, Fat: 3},
	{Name: "Ужин", Kcal: 600, Protein: 35, Carbs: 55, Fat: 22},
}

// Пределы масштабирования: рацион остаётся съедобным даже при
// экстремальных расчётных цифрах
const (
	minEnergyRatio  = 0.7
	maxEnergyRatio  = 1.4
	minProteinRatio = 0.8
	maxProteinRatio = 1.3
)

// sampleMeals масштабирует базовый рацион под дневные калории и белок
func sampleMeals(totalKcal, totalProtein int) []models.Meal {
	baseKcal, baseProtein := 0, 0
	for _, m := range mealTemplates {
		baseKcal += m.Kcal
		baseProtein += m.Protein
	}

	energyRatio := clamp(float64(totalKcal)/float64(baseKcal), minEnergyRatio, maxEnergyRatio)
	proteinRatio := clamp(float64(totalProtein)/float64(baseProtein), minProteinRatio, maxProteinRatio)

	meals := make([]models.Meal, 0, len(mealTemplates))
	for _, tpl := range mealTemplates {
		meals = append(meals, models.Meal{
			Name:    tpl.Name,
			Kcal:    int(math.Round(float64(tpl.Kcal) * energyRatio)),
			Protein: int(math.Round(float64(tpl.Protein) * proteinRatio)),
			Carbs:   int(math.Round(float64(tpl.Carbs) * energyRatio)),
			Fat:     int(math.Round(float64(tpl.Fat) * energyRatio)),
		})
	}
	return meals
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DescribeRu краткая сводка плана на русском
func DescribeRu(p *models.NutritionPlan) string {
	if p == nil || p.Note == NoDataNote {
		return "Питание: " + NoDataNote + " (укажите рост и вес)"
	}
	return fmt.Sprintf("Питание: %d ккал/день, белок %d г. %s", p.TotalEnergy, p.ProteinGrams, p.Note)
}
