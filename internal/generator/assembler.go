// Package generator собирает полную программу тренировок из запроса:
// валидация входа, недельная периодизация, дни через планировщик методов
// и расчёт питания. Генерация детерминированная — один и тот же запрос
// всегда даёт одну и ту же программу (с точностью до ID и времени создания).
package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"calgen/internal/goals"
	"calgen/internal/methods"
	"calgen/internal/models"
	"calgen/internal/nutrition"
)

// Недельный календарь: три дня через день и одна длинная пауза,
// контрольная или выносливостная работа в воскресенье
var weekdayPlan = []struct {
	weekday string
	day     int // 0 — отдых
}{
	{"Понедельник", 1},
	{"Вторник", 2},
	{"Среда", 0},
	{"Четверг", 3},
	{"Пятница", 4},
	{"Суббота", 0},
	{"Воскресенье", 5},
}

// Build строит программу целиком. Запрос сначала проверяется;
// дальше все шаги детерминированные.
func Build(req Request) (*models.Program, error) {
	if err := Validate(req); err != nil {
		return nil, fmt.Errorf("некорректный запрос: %w", err)
	}

	// Выход силой — элемент не для новичков, максимум обнуляется молча
	if req.Level == models.LevelBeginner {
		req.Capability.MuscleUp = 0
	}

	weights := goals.Compute(req.Goals)
	limits := goals.ComputeLimits(weights)
	settings := SettingsFor(req.Weeks)

	blockLen := 6
	if req.Weeks == 4 {
		blockLen = 4
	}

	program := &models.Program{
		ID:         uuid.NewString(),
		Level:      req.Level,
		Capability: req.Capability,
		Goals:      append([]models.Goal(nil), req.Goals...),
		Sport:      req.Sport,
		TotalWeeks: req.Weeks,
		CreatedAt:  time.Now(),
	}

	for i, setting := range settings {
		weekNumber := i + 1
		blockIndex := i % blockLen

		// Второй 6-недельный блок получает свои формулировки заметок,
		// чтобы 12-недельная программа не читалась как копия первой половины
		seed := req.Seed
		if i >= blockLen {
			seed++
		}

		week := models.Week{
			Number: weekNumber,
			Label:  setting.Label,
			Color:  setting.Color,
		}

		for dayIdx, arch := range methods.DayArchetypes {
			ctx := methods.Context{
				Capability: req.Capability,
				Level:      req.Level,
				Weights:    weights,
				Limits:     limits,
				Volume:     setting.Volume,
				Intensity:  setting.Intensity,
				WeekIndex:  blockIndex,
				WeekNumber: weekNumber,
				TotalWeeks: req.Weeks,
				DayIndex:   dayIdx + 1,
				Dominant:   goals.DominantGoalForDay(req.Goals, dayIdx+1),
				Seed:       seed,
				Sport:      req.Sport,
			}

			var day models.Day
			if weekNumber == req.Weeks && ctx.DayIndex == 5 {
				day = methods.RetestDay(ctx)
			} else {
				day = methods.PlanDay(arch, ctx)
			}
			week.Days = append(week.Days, day)
		}

		week.Schedule = buildSchedule(week.Days)
		program.Weeks = append(program.Weeks, week)
	}

	program.Nutrition = nutrition.Calculate(req.HeightCm, req.WeightKg, req.Goals)

	return program, nil
}

// buildSchedule раскладывает дни по календарю недели
func buildSchedule(days []models.Day) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(weekdayPlan))
	for _, slot := range weekdayPlan {
		entry := models.ScheduleEntry{Weekday: slot.weekday, Focus: "Отдых"}
		if slot.day > 0 && slot.day <= len(days) {
			entry.Focus = days[slot.day-1].Focus
		}
		entries = append(entries, entry)
	}
	return entries
}
