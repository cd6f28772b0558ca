package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"calgen/internal/generator"
	"calgen/internal/models"
)

// authoringSystemPrompt просит модель написать программу строго в JSON
const authoringSystemPrompt = `Ты тренер по калистенике. Составь программу тренировок
с собственным весом по анкете атлета.

Ответь СТРОГО валидным JSON без пояснений до или после:
{
  "weeks": [
    {
      "number": 1,
      "label": "Втягивающая",
      "days": [
        {
          "number": 1,
          "focus": "Тяговый день",
          "exercises": [
            {"name": "Подтягивания", "sets": "4 подхода по 6", "rest": "90 сек", "note": ""}
          ]
        }
      ]
    }
  ]
}

Правила: 5 тренировочных дней в неделе; ни один подход не больше половины
максимума атлета; новичкам - упрощённые варианты упражнений.`

// programJSON формат ответа модели
type programJSON struct {
	Weeks []struct {
		Number int    `json:"number"`
		Label  string `json:"label"`
		Days   []struct {
			Number    int    `json:"number"`
			Focus     string `json:"focus"`
			Exercises []struct {
				Name string `json:"name"`
				Sets string `json:"sets"`
				Rest string `json:"rest"`
				Note string `json:"note"`
			} `json:"exercises"`
		} `json:"days"`
	} `json:"weeks"`
}

// Author - режим, в котором программу пишет модель
type Author struct {
	client Chatter
}

// NewAuthor создаёт генератор программ на модели
func NewAuthor(client Chatter) *Author {
	return &Author{client: client}
}

// GenerateProgram просит модель написать программу и разбирает ответ.
// Любая ошибка - жёсткий отказ вызова: частичных программ не бывает.
func (a *Author) GenerateProgram(ctx context.Context, req generator.Request) (*models.Program, error) {
	if err := generator.Validate(req); err != nil {
		return nil, fmt.Errorf("некорректный запрос: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	response, err := a.client.Chat(callCtx, []Message{
		{Role: "system", Content: authoringSystemPrompt},
		{Role: "user", Content: authoringUserPrompt(req)},
	}, 0.4)
	if err != nil {
		return nil, fmt.Errorf("запрос к модели не удался: %w", err)
	}

	return parseProgram(response, req)
}

// GenerateOrFallback пробует режим модели, при любой неудаче возвращает
// детерминированную программу: валидный результат есть всегда.
func (a *Author) GenerateOrFallback(ctx context.Context, req generator.Request) (*models.Program, error) {
	program, err := a.GenerateProgram(ctx, req)
	if err == nil {
		return program, nil
	}
	log.Printf("режим модели не удался (%v), собираю программу детерминированно", err)
	return generator.Build(req)
}

// authoringUserPrompt анкета атлета для модели
func authoringUserPrompt(req generator.Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Уровень: %s\n", req.Level.NameRu())
	fmt.Fprintf(&sb, "Недель: %d\n", req.Weeks)
	fmt.Fprintf(&sb, "Максимумы: подтягивания %d, отжимания на брусьях %d, отжимания %d, приседания %d, подъёмы ног %d, бёрпи %d",
		req.Capability.Pull, req.Capability.Dip, req.Capability.Push,
		req.Capability.Squat, req.Capability.LegRaise, req.Capability.Burpee)
	if req.Capability.MuscleUp > 0 {
		fmt.Fprintf(&sb, ", выходы силой %d", req.Capability.MuscleUp)
	}
	sb.WriteString("\n")
	if len(req.Goals) > 0 {
		sb.WriteString(goalsUserPrompt(req.Goals) + "\n")
	}
	if req.Sport != "" {
		fmt.Fprintf(&sb, "Вид спорта: %s\n", req.Sport)
	}
	return sb.String()
}

// parseProgram разбирает JSON модели в программу, подставляя
// значения по умолчанию вместо пропущенных полей
func parseProgram(response string, req generator.Request) (*models.Program, error) {
	response = extractJSON(response)

	var data programJSON
	if err := json.Unmarshal([]byte(response), &data); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}
	if len(data.Weeks) == 0 {
		return nil, fmt.Errorf("модель вернула программу без недель")
	}

	program := &models.Program{
		ID:         uuid.NewString(),
		Level:      req.Level,
		Capability: req.Capability,
		Goals:      append([]models.Goal(nil), req.Goals...),
		Sport:      req.Sport,
		TotalWeeks: len(data.Weeks),
		CreatedAt:  time.Now(),
	}

	for i, w := range data.Weeks {
		week := models.Week{
			Number: w.Number,
			Label:  w.Label,
		}
		if week.Number == 0 {
			week.Number = i + 1
		}
		if week.Label == "" {
			week.Label = fmt.Sprintf("Неделя %d", week.Number)
		}

		for j, d := range w.Days {
			day := models.Day{
				Number: d.Number,
				Focus:  d.Focus,
			}
			if day.Number == 0 {
				day.Number = j + 1
			}
			if day.Focus == "" {
				day.Focus = fmt.Sprintf("День %d", day.Number)
			}
			for _, ex := range d.Exercises {
				if ex.Name == "" {
					continue
				}
				if ex.Sets == "" {
					ex.Sets = "3 подхода"
				}
				if ex.Rest == "" {
					ex.Rest = "90 сек"
				}
				day.Exercises = append(day.Exercises, models.Exercise{
					Name: ex.Name,
					Sets: ex.Sets,
					Rest: ex.Rest,
					Note: ex.Note,
					Type: models.ExerciseMain,
				})
			}
			week.Days = append(week.Days, day)
		}
		program.Weeks = append(program.Weeks, week)
	}

	return program, nil
}

// extractJSON достаёт JSON из ответа модели: срезает markdown-ограждения
// и всё вокруг внешних фигурных скобок
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}
