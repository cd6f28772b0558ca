package models

import "time"

// ExerciseType тип элемента внутри тренировочного дня
type ExerciseType string

const (
	ExerciseWarmup   ExerciseType = "warmup"
	ExerciseSkill    ExerciseType = "skill"
	ExerciseMain     ExerciseType = "main"
	ExerciseCooldown ExerciseType = "cooldown"
)

// Exercise одно назначенное упражнение. После создания не изменяется.
type Exercise struct {
	Name   string       `json:"name"`
	Sets   string       `json:"sets"`             // Схема подходов, например "4 подхода: 10-8-6-5"
	Rest   string       `json:"rest"`             // Отдых между подходами
	Note   string       `json:"note,omitempty"`   // Заметка к упражнению
	Method string       `json:"method,omitempty"` // Тег метода (descending_ladder, interval_block...)
	Type   ExerciseType `json:"type,omitempty"`   // warmup/skill/main/cooldown
}

// Day тренировочный день
type Day struct {
	Number    int        `json:"number"`
	Focus     string     `json:"focus"` // "Тяговый день", "Ноги + кардио + кор"...
	Exercises []Exercise `json:"exercises"`
	Methods   []string   `json:"methods"` // Теги методов, использованных в дне
	Note      string     `json:"note,omitempty"`
}

// ScheduleEntry день недельного календаря (фокус или отдых)
type ScheduleEntry struct {
	Weekday string `json:"weekday"`
	Focus   string `json:"focus"`
}

// Week тренировочная неделя
type Week struct {
	Number   int             `json:"number"`
	Label    string          `json:"label"` // "Втягивающая", "Пиковая"...
	Color    string          `json:"color"` // Цвет интенсивности для отображения
	Days     []Day           `json:"days"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// Meal приём пищи из примерного рациона
type Meal struct {
	Name    string `json:"name"`
	Kcal    int    `json:"kcal"`
	Protein int    `json:"protein_g"`
	Carbs   int    `json:"carbs_g"`
	Fat     int    `json:"fat_g"`
}

// NutritionPlan расчёт питания
type NutritionPlan struct {
	BMR          int    `json:"bmr"`           // Базовый метаболизм, ккал
	TotalEnergy  int    `json:"total_energy"`  // Целевая калорийность, ккал
	ProteinGrams int    `json:"protein_grams"` // Целевой белок, г
	Note         string `json:"note"`
	SampleMeals  []Meal `json:"sample_meals,omitempty"`
}

// Program полная программа тренировок. Создаётся целиком за один вызов
// генератора; после создания меняется только карта Reviews (добавлением).
type Program struct {
	ID         string           `json:"id"`
	Level      Level            `json:"level"`
	Capability CapabilityVector `json:"capability"` // Снимок входных максимумов
	Goals      []Goal           `json:"goals,omitempty"`
	Sport      string           `json:"sport,omitempty"`
	TotalWeeks int              `json:"total_weeks"`
	Weeks      []Week           `json:"weeks"`
	Nutrition  *NutritionPlan   `json:"nutrition,omitempty"`
	Reviews    map[int]string   `json:"reviews,omitempty"` // Номер недели -> комментарий тренера
	CreatedAt  time.Time        `json:"created_at"`
}

// WeekByNumber возвращает неделю по номеру
func (p *Program) WeekByNumber(n int) *Week {
	for i := range p.Weeks {
		if p.Weeks[i].Number == n {
			return &p.Weeks[i]
		}
	}
	return nil
}

// TotalExercises возвращает общее количество упражнений в программе
func (p *Program) TotalExercises() int {
	count := 0
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			count += len(d.Exercises)
		}
	}
	return count
}
