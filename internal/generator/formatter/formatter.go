// Package formatter превращает программу в текст для консоли.
package formatter

import (
	"fmt"
	"strings"

	"calgen/internal/models"
	"calgen/internal/nutrition"
)

// TextFormatter - текстовый форматтер программы
type TextFormatter struct{}

// NewTextFormatter создаёт новый форматтер
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// FormatProgram форматирует всю программу
func (f *TextFormatter) FormatProgram(program *models.Program) string {
	var sb strings.Builder

	sb.WriteString(f.formatHeader(program))
	sb.WriteString("\n")

	for _, week := range program.Weeks {
		sb.WriteString(f.FormatWeek(week))
		sb.WriteString("\n")

		if review, ok := program.Reviews[week.Number]; ok && review != "" {
			sb.WriteString("💬 Комментарий тренера:\n")
			sb.WriteString(review)
			sb.WriteString("\n\n")
		}
	}

	if program.Nutrition != nil {
		sb.WriteString(f.formatNutrition(program.Nutrition))
	}

	return sb.String()
}

// formatHeader форматирует заголовок программы
func (f *TextFormatter) formatHeader(program *models.Program) string {
	var goalNames []string
	for _, g := range program.Goals {
		goalNames = append(goalNames, g.NameRu())
	}
	goalsLine := "не указаны"
	if len(goalNames) > 0 {
		goalsLine = strings.Join(goalNames, ", ")
	}

	header := fmt.Sprintf(`ПРОГРАММА ТРЕНИРОВОК С СОБСТВЕННЫМ ВЕСОМ
Уровень: %s
Цели: %s
Длительность: %d недель
`,
		program.Level.NameRu(),
		goalsLine,
		program.TotalWeeks,
	)

	if program.Sport != "" {
		header += fmt.Sprintf("Акцент под вид спорта: %s\n", program.Sport)
	}
	return header
}

// FormatWeek форматирует неделю (используется и для вывода по частям)
func (f *TextFormatter) FormatWeek(week models.Week) string {
	var sb strings.Builder

	sb.WriteString("┌─────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("│ НЕДЕЛЯ %d %s — %s\n", week.Number, week.Color, week.Label))
	sb.WriteString("└─────────────────────────────────\n\n")

	if len(week.Schedule) > 0 {
		for _, entry := range week.Schedule {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", entry.Weekday, entry.Focus))
		}
		sb.WriteString("\n")
	}

	for _, day := range week.Days {
		sb.WriteString(f.formatDay(day))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDay форматирует тренировочный день
func (f *TextFormatter) formatDay(day models.Day) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("День %d. %s\n", day.Number, day.Focus))
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")

	num := 0
	for _, ex := range day.Exercises {
		switch ex.Type {
		case models.ExerciseWarmup, models.ExerciseCooldown:
			sb.WriteString(fmt.Sprintf("• %s: %s\n", ex.Name, ex.Sets))
			continue
		}

		num++
		marker := ""
		if ex.Type == models.ExerciseSkill {
			marker = " [навык]"
		}
		sb.WriteString(fmt.Sprintf("%d. %s%s\n", num, ex.Name, marker))
		sb.WriteString(fmt.Sprintf("   %s\n", ex.Sets))
		if ex.Rest != "" {
			sb.WriteString(fmt.Sprintf("   Отдых: %s\n", ex.Rest))
		}
		if ex.Note != "" {
			sb.WriteString(fmt.Sprintf("   📝 %s\n", ex.Note))
		}
	}

	if day.Note != "" {
		sb.WriteString(fmt.Sprintf("\n   💡 %s\n", day.Note))
	}

	return sb.String()
}

// formatNutrition форматирует блок питания
func (f *TextFormatter) formatNutrition(plan *models.NutritionPlan) string {
	var sb strings.Builder

	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString("ПИТАНИЕ\n")
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString(nutrition.DescribeRu(plan))
	sb.WriteString("\n")

	if len(plan.SampleMeals) > 0 {
		sb.WriteString("\nПримерный рацион:\n")
		for _, meal := range plan.SampleMeals {
			sb.WriteString(fmt.Sprintf("  %s: %d ккал (Б %d / У %d / Ж %d)\n",
				meal.Name, meal.Kcal, meal.Protein, meal.Carbs, meal.Fat))
		}
	}

	return sb.String()
}
