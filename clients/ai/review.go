package ai

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"calgen/internal/models"
)

const (
	// ReviewPlaceholder подставляется, когда обзор недели получить не удалось
	ReviewPlaceholder = "Автоматический обзор недоступен для этой недели."

	reviewBatchSize   = 2               // Недель в пачке
	reviewConcurrency = 2               // Параллельных обзоров внутри пачки
	batchDelay        = 1 * time.Second // Пауза между пачками
	callTimeout       = 30 * time.Second
	emptyRetries      = 2 // Немедленные повторы при пустом ответе
)

// Chatter минимальный интерфейс чат-клиента, нужный пайплайну обзоров
type Chatter interface {
	Chat(ctx context.Context, messages []Message, temperature float64) (string, error)
}

// Reviewer получает комментарии тренера к готовой программе.
// Программу никогда не изменяет: результат - отдельная карта обзоров.
type Reviewer struct {
	client Chatter
}

// NewReviewer создаёт пайплайн обзоров поверх чат-клиента
func NewReviewer(client Chatter) *Reviewer {
	return &Reviewer{client: client}
}

// ReviewProgram строит обзор каждой недели. Недели идут пачками,
// между пачками пауза, чтобы не упираться в лимиты API. Ошибка одной
// недели не роняет остальные: вместо обзора встаёт заглушка.
func (r *Reviewer) ReviewProgram(ctx context.Context, program *models.Program) map[int]string {
	reviews := make(map[int]string, len(program.Weeks))
	var mu sync.Mutex

	for start := 0; start < len(program.Weeks); start += reviewBatchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				mu.Lock()
				for i := start; i < len(program.Weeks); i++ {
					reviews[program.Weeks[i].Number] = ReviewPlaceholder
				}
				mu.Unlock()
				return reviews
			case <-time.After(batchDelay):
			}
		}

		end := start + reviewBatchSize
		if end > len(program.Weeks) {
			end = len(program.Weeks)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(reviewConcurrency)
		for _, week := range program.Weeks[start:end] {
			week := week
			g.Go(func() error {
				text := r.reviewWeek(gctx, week, program.Goals)
				mu.Lock()
				reviews[week.Number] = text
				mu.Unlock()
				return nil // Неудача недели не прерывает пачку
			})
		}
		g.Wait()
	}

	return reviews
}

// reviewWeek собирает обзор одной недели: комментарий тренера всегда,
// комментарий по целям - только если цели выбраны. Оба запроса идут
// параллельно.
func (r *Reviewer) reviewWeek(ctx context.Context, week models.Week, goals []models.Goal) string {
	digest := WeekDigest(week)

	var coachText, goalText string
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		coachText = r.call(ctx, coachSystemPrompt, digest)
	}()

	if len(goals) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			goalText = r.call(ctx, goalSystemPrompt, digest+"\n"+goalsUserPrompt(goals))
		}()
	}
	wg.Wait()

	if coachText == "" {
		log.Printf("обзор недели %d не получен, ставлю заглушку", week.Number)
		return ReviewPlaceholder
	}
	if goalText != "" {
		return coachText + "\n\n" + goalText
	}
	return coachText
}

// call один запрос с таймаутом и повторами на пустой ответ.
// Пустая строка означает окончательную неудачу.
func (r *Reviewer) call(ctx context.Context, systemPrompt, userPrompt string) string {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	for attempt := 0; attempt <= emptyRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		content, err := r.client.Chat(callCtx, messages, 0.7)
		cancel()

		if err != nil {
			log.Printf("запрос обзора не удался: %v", err)
			return ""
		}
		if text := strings.TrimSpace(content); text != "" {
			return text
		}
		// Пустой ответ бывает случайным, повторяем сразу
	}
	return ""
}
