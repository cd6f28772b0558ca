package generator

import (
	"fmt"

	"calgen/internal/models"
)

// Request входные данные для генерации программы
type Request struct {
	Level      models.Level
	Capability models.CapabilityVector
	Goals      []models.Goal
	HeightCm   int    // Опционально, для расчёта питания
	WeightKg   int    // Опционально, для расчёта питания
	Sport      string // Опциональный акцент под вид спорта
	Weeks      int    // 4, 6 или 12
	Seed       int64  // Влияет только на формулировки заметок
}

// Validate проверяет запрос целиком. Ошибка одна и описательная:
// пользователь должен понять, что именно исправить.
func Validate(req Request) error {
	switch req.Level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		return fmt.Errorf("неизвестный уровень подготовки: %q (допустимо: beginner, intermediate, advanced)", req.Level)
	}

	switch req.Weeks {
	case 4, 6, 12:
	default:
		return fmt.Errorf("недопустимая длительность программы: %d недель (допустимо: 4, 6 или 12)", req.Weeks)
	}

	for _, m := range models.AllMovements {
		v := req.Capability.Get(m)
		if v < 0 {
			return fmt.Errorf("максимум в движении %q не может быть отрицательным: %d", m.NameRu(), v)
		}
		if ceiling := models.CapabilityCeilings[m]; v > ceiling {
			return fmt.Errorf("максимум в движении %q неправдоподобен: %d (потолок %d)", m.NameRu(), v, ceiling)
		}
	}

	if len(req.Goals) > 3 {
		return fmt.Errorf("слишком много целей: %d (максимум 3)", len(req.Goals))
	}
	seen := map[models.Goal]bool{}
	for _, g := range req.Goals {
		if _, ok := models.ParseGoal(string(g)); !ok {
			return fmt.Errorf("неизвестная цель: %q", g)
		}
		if seen[g] {
			return fmt.Errorf("цель %q указана дважды", g)
		}
		seen[g] = true
	}

	if req.HeightCm != 0 && (req.HeightCm < 100 || req.HeightCm > 230) {
		return fmt.Errorf("рост вне допустимого диапазона: %d см (100-230)", req.HeightCm)
	}
	if req.WeightKg != 0 && (req.WeightKg < 30 || req.WeightKg > 250) {
		return fmt.Errorf("вес вне допустимого диапазона: %d кг (30-250)", req.WeightKg)
	}

	return nil
}
