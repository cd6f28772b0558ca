package ai

import (
	"fmt"
	"strings"

	"calgen/internal/models"
)

// coachSystemPrompt обзор недели с позиции тренера: безопасность и усталость
const coachSystemPrompt = `Ты опытный тренер по калистенике. Тебе показывают одну неделю
готовой программы тренировок с собственным весом.

Твоя задача - короткий обзор недели для атлета:
- оцени распределение нагрузки и усталости по дням;
- отметь, на что обратить внимание по технике и восстановлению;
- дай 2-3 конкретных совета.

Важно: программу менять НЕЛЬЗЯ. Не предлагай другие упражнения, подходы
или повторения - только комментируй то, что есть. Отвечай по-русски,
не больше 5-6 предложений, без приветствий и воды.`

// goalSystemPrompt обзор соответствия недели выбранным целям
const goalSystemPrompt = `Ты опытный тренер по калистенике. Тебе показывают одну неделю
программы и цели атлета.

Оцени в 3-4 предложениях, насколько неделя работает на указанные цели,
и чего атлету ждать от неё. Программу менять нельзя - только комментарий.
Отвечай по-русски, без приветствий.`

// WeekDigest компактное описание недели для промпта: фокус дней,
// теги методов и первые движения. Полная программа в промпт не входит.
func WeekDigest(week models.Week) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Неделя %d (%s):\n", week.Number, week.Label)
	for _, day := range week.Days {
		fmt.Fprintf(&sb, "- День %d, %s", day.Number, day.Focus)
		if len(day.Methods) > 0 {
			fmt.Fprintf(&sb, " [%s]", strings.Join(day.Methods, ", "))
		}
		if name := firstMainExercise(day); name != "" {
			fmt.Fprintf(&sb, ": %s", name)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func firstMainExercise(day models.Day) string {
	for _, ex := range day.Exercises {
		if ex.Type == models.ExerciseMain || ex.Type == models.ExerciseSkill {
			return ex.Name
		}
	}
	return ""
}

// goalsUserPrompt описание целей атлета для второго обзора
func goalsUserPrompt(goals []models.Goal) string {
	names := make([]string, 0, len(goals))
	for _, g := range goals {
		names = append(names, g.NameRu())
	}
	return "Цели атлета: " + strings.Join(names, ", ")
}
