package generator

import (
	"fmt"
	"strings"

	"calgen/internal/models"
)

// Stats сводка по готовой программе для вывода пользователю
type Stats struct {
	Weeks        int
	Days         int
	Exercises    int
	Methods      []string // Уникальные теги методов в порядке появления
	SkillBlocks  int
	RetestDays   int
}

// Summarize собирает сводку по программе
func Summarize(p *models.Program) Stats {
	st := Stats{Weeks: len(p.Weeks)}
	seen := map[string]bool{}
	for _, w := range p.Weeks {
		for _, d := range w.Days {
			st.Days++
			st.Exercises += len(d.Exercises)
			for _, m := range d.Methods {
				if m == "retest" {
					st.RetestDays++
					continue
				}
				if !seen[m] {
					seen[m] = true
					st.Methods = append(st.Methods, m)
				}
			}
			for _, ex := range d.Exercises {
				if ex.Type == models.ExerciseSkill {
					st.SkillBlocks++
				}
			}
		}
	}
	return st
}

// DescribeRu человекочитаемая сводка на русском
func (st Stats) DescribeRu() string {
	return fmt.Sprintf("Недель: %d, тренировок: %d, упражнений: %d, навыковых блоков: %d, методов: %d (%s)",
		st.Weeks, st.Days, st.Exercises, st.SkillBlocks, len(st.Methods), strings.Join(st.Methods, ", "))
}

// Verify проверяет структурные инварианты готовой программы.
// Используется тестами и CLI как последний рубеж перед выдачей.
func Verify(p *models.Program) error {
	if p == nil {
		return fmt.Errorf("программа пустая")
	}
	if len(p.Weeks) != p.TotalWeeks {
		return fmt.Errorf("недель %d, заявлено %d", len(p.Weeks), p.TotalWeeks)
	}
	for _, w := range p.Weeks {
		if len(w.Days) != 5 {
			return fmt.Errorf("неделя %d: дней %d, должно быть 5", w.Number, len(w.Days))
		}
		if len(w.Schedule) != 7 {
			return fmt.Errorf("неделя %d: календарь из %d дней, должно быть 7", w.Number, len(w.Schedule))
		}
		for _, d := range w.Days {
			if len(d.Exercises) == 0 {
				return fmt.Errorf("неделя %d, день %d: нет упражнений", w.Number, d.Number)
			}
		}
	}
	return nil
}
