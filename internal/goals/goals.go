// Package goals превращает выбранные цели в весовые коэффициенты и
// производные настройки, которые потребляют все остальные компоненты
// генератора. Веса считаются один раз и передаются явно.
package goals

import "calgen/internal/models"

// Фиксированные разбиения весов по количеству выбранных целей.
// Эмпирические константы — сохраняются как есть, не "исправляются".
var (
	splitTwo   = [2]float64{0.6, 0.4}
	splitThree = [3]float64{0.6, 0.3, 0.1}
)

// Weights карта цель -> вес приоритета в [0,1], сумма по выбранным целям = 1
type Weights map[models.Goal]float64

// Compute возвращает веса для упорядоченного набора целей (0-3 штуки).
// Порядок кодирует приоритет: первая цель получает наибольший вес.
func Compute(goalSet []models.Goal) Weights {
	w := make(Weights, len(goalSet))
	switch len(goalSet) {
	case 1:
		w[goalSet[0]] = 1.0
	case 2:
		w[goalSet[0]] = splitTwo[0]
		w[goalSet[1]] = splitTwo[1]
	case 3:
		w[goalSet[0]] = splitThree[0]
		w[goalSet[1]] = splitThree[1]
		w[goalSet[2]] = splitThree[2]
	}
	return w
}

// Dominant возвращает цель с наибольшим весом (пустая строка без целей)
func (w Weights) Dominant() models.Goal {
	var best models.Goal
	bestW := 0.0
	// Обходим в фиксированном порядке, чтобы результат был детерминированным
	for _, g := range models.AllGoals {
		if w[g] > bestW {
			best = g
			bestW = w[g]
		}
	}
	return best
}

// Has сообщает, выбрана ли цель (с любым весом)
func (w Weights) Has(g models.Goal) bool {
	return w[g] > 0
}

// RepRangeBias возвращает окно процентов от максимума для основных
// назначений. По умолчанию 45-70%, масса смещает вверх, похудение и
// выносливость — вниз.
func RepRangeBias(w Weights) (lo, hi float64) {
	switch w.Dominant() {
	case models.GoalMuscle:
		return 0.55, 0.80
	case models.GoalWeightLoss, models.GoalEndurance:
		return 0.40, 0.60
	default:
		return 0.45, 0.70
	}
}

// RestBias смещение отдыха между подходами
type RestBias string

const (
	RestDefault RestBias = "default"
	RestLonger  RestBias = "longer"  // Доминирует масса
	RestShorter RestBias = "shorter" // Доминирует похудение
)

// Rest возвращает смещение отдыха по весам целей
func Rest(w Weights) RestBias {
	switch w.Dominant() {
	case models.GoalMuscle:
		return RestLonger
	case models.GoalWeightLoss:
		return RestShorter
	default:
		return RestDefault
	}
}

// CardioDensity настройки кондиционной работы
type CardioDensity struct {
	ExtraConditioning bool // Добавлять дополнительный кондиционный элемент
	FavorBurpee       bool // Интервальная работа через циклическое движение всем телом
}

// Cardio возвращает настройки кондиционной работы по весам целей
func Cardio(w Weights) CardioDensity {
	return CardioDensity{
		ExtraConditioning: w.Has(models.GoalWeightLoss) || w.Has(models.GoalEndurance),
		FavorBurpee:       w.Has(models.GoalWeightLoss),
	}
}

// Limits ограничительные флаги, которые планировщик методов обязан учитывать
type Limits struct {
	CapCardioVolume      bool // Масса доминирует: не раздувать кардио
	CapIntervalIntensity bool // Похудение доминирует: интервалы без предельной интенсивности
	NoSkillConditioning  bool // Выбрана техника: не смешивать навык с кондиционкой
}

// ComputeLimits возвращает флаги ограничений по весам целей
func ComputeLimits(w Weights) Limits {
	return Limits{
		CapCardioVolume:      w.Dominant() == models.GoalMuscle,
		CapIntervalIntensity: w.Dominant() == models.GoalWeightLoss,
		NoSkillConditioning:  w.Has(models.GoalSkill),
	}
}

// Conflict истинно только для антагонистичной пары похудение + масса
func Conflict(goalSet []models.Goal) bool {
	hasLoss, hasMuscle := false, false
	for _, g := range goalSet {
		switch g {
		case models.GoalWeightLoss:
			hasLoss = true
		case models.GoalMuscle:
			hasMuscle = true
		}
	}
	return hasLoss && hasMuscle
}

// DominantGoalForDay разрешает конфликт похудение/масса по дням недели:
// кардио-день получает дефицитную работу, день выносливости — выносливость,
// силовой день — массу. Одна тренировка никогда не обслуживает обе цели.
// Индексы дней: 1 тяга, 2 жим, 3 ноги+кардио+кор, 4 выносливость, 5 сила.
func DominantGoalForDay(goalSet []models.Goal, dayIndex int) models.Goal {
	w := Compute(goalSet)
	if !Conflict(goalSet) {
		return w.Dominant()
	}
	switch dayIndex {
	case 3:
		return models.GoalWeightLoss
	case 4:
		if w.Has(models.GoalEndurance) {
			return models.GoalEndurance
		}
		return models.GoalWeightLoss
	case 5:
		if w.Has(models.GoalSkill) && w[models.GoalSkill] > w[models.GoalMuscle] {
			return models.GoalSkill
		}
		return models.GoalMuscle
	default:
		// Тяга и жим идут за более приоритетной из конфликтующих целей
		if w[models.GoalMuscle] >= w[models.GoalWeightLoss] {
			return models.GoalMuscle
		}
		return models.GoalWeightLoss
	}
}
