// Package reps переводит максимумы атлета в конкретные назначения
// повторений с учётом недели, уровня и убывающей отдачи.
package reps

import (
	"calgen/internal/models"
	"calgen/internal/safety"
)

// Пороги убывающей отдачи: линейное масштабирование от максимума даёт
// нереальные объёмы для очень выносливых атлетов. Эмпирические константы.
const (
	diminishAbove20 = 0.90
	diminishAbove40 = 0.85
	diminishAbove60 = 0.80
)

// enduranceWeekCurve недельные множители объёма для работы на выносливость:
// рост с выходом на пик и откат на разгрузке
var enduranceWeekCurve = []float64{0.50, 0.54, 0.58, 0.62, 0.48, 0.55}

// levelMultipliers множители уровня подготовки
var levelMultipliers = map[models.Level]float64{
	models.LevelBeginner:     0.90,
	models.LevelIntermediate: 1.00,
	models.LevelAdvanced:     1.08,
}

// SmartReps считает повторения для рабочего подхода: доля интенсивности
// от максимума с поправкой на убывающую отдачу, затем предельный кап.
func SmartReps(max int, intensityFraction float64) int {
	if max <= 0 {
		return 0
	}
	mult := 1.0
	switch {
	case max > 60:
		mult = diminishAbove60
	case max > 40:
		mult = diminishAbove40
	case max > 20:
		mult = diminishAbove20
	}
	reps := safety.Sanitize(float64(max)*intensityFraction*mult, false)
	return safety.CapPerSet(reps, max)
}

// EnduranceReps считает повторения для объёмной работы на выносливость
// по недельной кривой и множителю уровня
func EnduranceReps(max, weekIndex int, level models.Level) int {
	if max <= 0 {
		return 0
	}
	curve := enduranceWeekCurve[weekIndex%len(enduranceWeekCurve)]
	lvl, ok := levelMultipliers[level]
	if !ok {
		lvl = 1.0
	}
	reps := safety.Sanitize(float64(max)*curve*lvl, false)
	return safety.CapPerSet(reps, max)
}

// IntervalReps считает повторения для интервальных схем "каждые N секунд"
func IntervalReps(max int) int {
	if max <= 0 {
		return 0
	}
	reps := safety.Sanitize(float64(max)*safety.IntervalFraction, false)
	return safety.CapIntervalReps(reps, max)
}

// RegressionReps масштабирует повторения облегчённой замены относительно
// основного движения: горизонтальная тяга легче вертикальной, поэтому
// объём выше и растёт по неделям (1.5x -> 2.2x)
func RegressionReps(primaryReps, weekIndex int) int {
	factor := 1.5 + 0.1*float64(weekIndex)
	if factor > 2.2 {
		factor = 2.2
	}
	return safety.Sanitize(float64(primaryReps)*factor, false)
}
