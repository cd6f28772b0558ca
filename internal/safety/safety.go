// Package safety содержит числовые ограничители и таблицу регрессий.
// Все генераторы методов обязаны пропускать объёмы через эти функции —
// это единственная точка, гарантирующая выполнимость назначений.
package safety

import (
	"math"

	"calgen/internal/models"
)

const (
	// PerSetFraction предельная доля от максимума для одного рабочего подхода
	PerSetFraction = 0.5
	// IntervalFraction предельная доля для повторяющихся интервальных схем
	// ("каждые N секунд") — темп, который можно удерживать
	IntervalFraction = 0.35
)

// NoRegression возвращается, когда замена движения не требуется
const NoRegression = "без регрессии"

// Sanitize округляет значение и не даёт ему уйти ниже минимума.
// При allowZero=false минимальный результат — 1 повторение.
func Sanitize(n float64, allowZero bool) int {
	v := int(math.Round(n))
	if allowZero {
		if v < 0 {
			return 0
		}
		return v
	}
	if v < 1 {
		return 1
	}
	return v
}

// CapPerSet ограничивает повторения в одном рабочем подходе
// половиной максимума атлета
func CapPerSet(reps, max int) int {
	limit := int(math.Floor(float64(max) * PerSetFraction))
	if reps > limit {
		return limit
	}
	return reps
}

// CapIntervalReps ограничивает повторения в интервальных блоках
// 35% от максимума — выше этот темп не удержать
func CapIntervalReps(reps, max int) int {
	limit := int(math.Floor(float64(max) * IntervalFraction))
	if reps > limit {
		return limit
	}
	return reps
}

// regressionTable замены движений для новичков: [0] — для максимума 1-3
// (самая лёгкая регрессия), [1] — для максимума 4-8 (умеренная)
var regressionTable = map[models.Movement][2]string{
	models.MovementPull:     {"Австралийские подтягивания", "Негативные подтягивания"},
	models.MovementDip:      {"Отжимания от скамьи", "Негативные отжимания на брусьях"},
	models.MovementPush:     {"Отжимания с колен", "Отжимания с возвышения"},
	models.MovementSquat:    {"Приседания на ящик", "Полуприседания"},
	models.MovementLegRaise: {"Подъёмы коленей в висе", "Подъёмы согнутых ног"},
	models.MovementBurpee:   {"Бёрпи без отжимания", "Бёрпи с шагом назад"},
}

// RegressionFor возвращает облегчённую замену движения для новичка
// с низким максимумом. Для остальных случаев — NoRegression.
func RegressionFor(movement models.Movement, capabilityValue int, level models.Level) string {
	if level != models.LevelBeginner {
		return NoRegression
	}
	row, ok := regressionTable[movement]
	if !ok {
		return NoRegression
	}
	switch {
	case capabilityValue >= 1 && capabilityValue <= 3:
		return row[0]
	case capabilityValue >= 4 && capabilityValue <= 8:
		return row[1]
	default:
		return NoRegression
	}
}
