// Package methods — планировщик методов: для каждого архетипа дня и номера
// недели выбирает тренировочный метод из фиксированной таблицы и строит
// упражнения дня. Разнообразие методов по программе гарантируется самой
// таблицей, без случайности во время генерации.
package methods

import (
	"calgen/internal/goals"
	"calgen/internal/models"
)

// Method идентификатор тренировочного метода
type Method string

const (
	MethodSplitVolume      Method = "split_volume"     // Несколько подходов с убывающими целями
	MethodIntervalBlock    Method = "interval_block"   // Два интервальных блока подряд
	MethodDescendingLadder Method = "descending_ladder" // Лесенка вниз от потолка
	MethodPyramid          Method = "pyramid"          // Пирамида вверх и вниз
	MethodSuperset         Method = "superset"         // Пары упражнений раундами
	MethodMiniSets         Method = "mini_sets"        // Кластеры мини-подходов с микро-отдыхом
	MethodTimedChallenge   Method = "timed_challenge"  // Максимум раундов за время
	MethodIsoDynamic       Method = "iso_dynamic"      // Изометрия + динамика
	MethodChipper          Method = "chipper"          // Один большой комплекс на время
	MethodTripleLadder     Method = "triple_ladder"    // Фиксированные раунды, три движения
	MethodBackToBack       Method = "back_to_back"     // Два упражнения без отдыха
	MethodMaxHold          Method = "max_hold"         // Длительное удержание
)

// AllMethods полный набор методов
var AllMethods = []Method{
	MethodSplitVolume, MethodIntervalBlock, MethodDescendingLadder,
	MethodPyramid, MethodSuperset, MethodMiniSets, MethodTimedChallenge,
	MethodIsoDynamic, MethodChipper, MethodTripleLadder, MethodBackToBack,
	MethodMaxHold,
}

// highFatigue методы с высокой утомляемостью — не больше одного на тренировку
var highFatigue = map[Method]bool{
	MethodIntervalBlock:  true,
	MethodTimedChallenge: true,
	MethodChipper:        true,
	MethodBackToBack:     true,
	MethodMaxHold:        true,
}

// IsHighFatigue сообщает, относится ли метод к высокоутомительным
func IsHighFatigue(m Method) bool {
	return highFatigue[m]
}

// NameRu возвращает название метода на русском
func (m Method) NameRu() string {
	switch m {
	case MethodSplitVolume:
		return "Раздельный объём"
	case MethodIntervalBlock:
		return "Интервальный блок"
	case MethodDescendingLadder:
		return "Лесенка вниз"
	case MethodPyramid:
		return "Пирамида"
	case MethodSuperset:
		return "Суперсет"
	case MethodMiniSets:
		return "Мини-подходы"
	case MethodTimedChallenge:
		return "Челлендж на время"
	case MethodIsoDynamic:
		return "Изометрия + динамика"
	case MethodChipper:
		return "Комплекс-чиппер"
	case MethodTripleLadder:
		return "Тройная лесенка"
	case MethodBackToBack:
		return "Спина к спине"
	case MethodMaxHold:
		return "Максимальное удержание"
	default:
		return string(m)
	}
}

// Archetype архетип тренировочного дня
type Archetype string

const (
	ArchetypePull      Archetype = "pull"
	ArchetypePush      Archetype = "push"
	ArchetypeLegs      Archetype = "legs_cardio_core"
	ArchetypeEndurance Archetype = "endurance"
	ArchetypeStrength  Archetype = "strength"
)

// DayArchetypes архетипы по индексу дня недели (1-5)
var DayArchetypes = []Archetype{
	ArchetypePull, ArchetypePush, ArchetypeLegs, ArchetypeEndurance, ArchetypeStrength,
}

// FocusRu возвращает фокус дня на русском
func (a Archetype) FocusRu() string {
	switch a {
	case ArchetypePull:
		return "Тяговый день"
	case ArchetypePush:
		return "Жимовой день"
	case ArchetypeLegs:
		return "Ноги + кардио + кор"
	case ArchetypeEndurance:
		return "Выносливость"
	case ArchetypeStrength:
		return "Силовой день"
	default:
		return string(a)
	}
}

// archetypeMovements основные движения каждого архетипа в порядке выполнения
var archetypeMovements = map[Archetype][]models.Movement{
	ArchetypePull:      {models.MovementPull, models.MovementLegRaise},
	ArchetypePush:      {models.MovementPush, models.MovementDip},
	ArchetypeLegs:      {models.MovementSquat, models.MovementLegRaise, models.MovementBurpee},
	ArchetypeEndurance: {models.MovementBurpee, models.MovementPush, models.MovementSquat},
	ArchetypeStrength:  {models.MovementPull, models.MovementDip, models.MovementSquat},
}

// Context всё, что нужно генератору метода для построения дня.
// Собирается ассемблером программы и передаётся явно.
type Context struct {
	Capability models.CapabilityVector
	Level      models.Level
	Weights    goals.Weights
	Limits     goals.Limits
	Volume     float64 // Доля объёма недели
	Intensity  float64 // Доля интенсивности недели
	WeekIndex  int     // Индекс недели внутри блока (0-based)
	WeekNumber int     // Абсолютный номер недели (1-based)
	TotalWeeks int
	DayIndex   int // 1-5
	Dominant   models.Goal // Доминирующая цель этого дня
	Seed       int64       // Только для выбора формулировок, не для математики
	Sport      string
}

// effectiveIntensity проецирует долю интенсивности недели в окно
// процентов, заданное целями
func (c Context) effectiveIntensity() float64 {
	lo, hi := goals.RepRangeBias(c.Weights)
	return lo + (hi-lo)*c.Intensity
}
