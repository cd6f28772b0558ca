package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"calgen/internal/generator"
	"calgen/internal/models"
)

// chatServer поднимает httptest-сервер, совместимый с chat-completions
func chatServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "test-key", "test-model")
	c.wait = func(context.Context, time.Duration) error { return nil } // В тестах не ждём
	return c
}

func chatReply(content string) string {
	quoted, _ := json.Marshal(content)
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%s}}]}`, quoted)
}

func TestClient_Chat(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprint(w, chatReply("Неделя выглядит сбалансированно."))
	})

	got, err := client.SimpleChat(context.Background(), "система", "вопрос")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Неделя выглядит сбалансированно." {
		t.Errorf("ответ = %q", got)
	}
}

func TestClient_RetriesOn429(t *testing.T) {
	var calls atomic.Int32
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, chatReply("ок"))
	})

	got, err := client.SimpleChat(context.Background(), "с", "в")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ок" {
		t.Errorf("ответ = %q", got)
	}
	if calls.Load() != 3 {
		t.Errorf("запросов %d, ожидали 3", calls.Load())
	}
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.SimpleChat(context.Background(), "с", "в")
	if err == nil {
		t.Fatal("ожидали ошибку после исчерпания повторов")
	}
	if calls.Load() != int32(maxRateLimitRetries)+1 {
		t.Errorf("запросов %d, ожидали %d", calls.Load(), maxRateLimitRetries+1)
	}
}

// Отменённый вызов не досыпает паузу между повторами
func TestClient_BackoffAbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "test-key", "test-model") // Штатное ожидание, без тестового крючка

	start := time.Now()
	_, err := client.SimpleChat(ctx, "с", "в")
	if err == nil {
		t.Fatal("ожидали ошибку отменённого контекста")
	}
	if elapsed := time.Since(start); elapsed >= 5*time.Second {
		t.Errorf("клиент прождал %v вместо немедленного выхода по отмене", elapsed)
	}
}

func TestClient_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.SimpleChat(context.Background(), "с", "в")
	if err == nil {
		t.Fatal("ожидали ошибку")
	}
	if calls.Load() != 1 {
		t.Errorf("запросов %d: 500 повторять не нужно", calls.Load())
	}
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name       string
		attempt    int
		retryAfter time.Duration
		want       time.Duration
	}{
		{"first attempt base", 0, 0, 500 * time.Millisecond},
		{"second attempt doubles", 1, 0, 1 * time.Second},
		{"server hint wins", 0, 3 * time.Second, 3 * time.Second},
		{"hint capped", 0, 60 * time.Second, 10 * time.Second},
		{"exponent capped", 10, 0, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backoffDelay(tt.attempt, tt.retryAfter); got != tt.want {
				t.Errorf("backoffDelay(%d, %v) = %v, want %v", tt.attempt, tt.retryAfter, got, tt.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Вот программа:\n{\"a\":1}\nУдачи!", `{"a":1}`},
		{"no json at all", "не могу помочь", "не могу помочь"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func testProgram(weeks int) *models.Program {
	p := &models.Program{TotalWeeks: weeks, Goals: []models.Goal{models.GoalMuscle}}
	for i := 1; i <= weeks; i++ {
		p.Weeks = append(p.Weeks, models.Week{
			Number: i,
			Label:  "Развивающая",
			Days: []models.Day{{
				Number: 1, Focus: "Тяговый день", Methods: []string{"split_volume"},
				Exercises: []models.Exercise{{Name: "Подтягивания", Type: models.ExerciseMain}},
			}},
		})
	}
	return p
}

func TestReviewer_EveryWeekGetsText(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply("Хорошая неделя."))
	})

	reviews := NewReviewer(client).ReviewProgram(context.Background(), testProgram(4))
	if len(reviews) != 4 {
		t.Fatalf("обзоров %d, ожидали 4", len(reviews))
	}
	for week, text := range reviews {
		if !strings.Contains(text, "Хорошая неделя.") {
			t.Errorf("неделя %d: %q", week, text)
		}
	}
}

func TestReviewer_PlaceholderOnFailure(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	program := testProgram(2)
	reviews := NewReviewer(client).ReviewProgram(context.Background(), program)
	for week, text := range reviews {
		if text != ReviewPlaceholder {
			t.Errorf("неделя %d: %q, ожидали заглушку", week, text)
		}
	}
	// Программа не изменилась
	if program.Reviews != nil {
		t.Error("пайплайн обзоров не должен трогать программу")
	}
}

func TestReviewer_RetriesEmptyContent(t *testing.T) {
	var calls atomic.Int32
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprint(w, chatReply("   "))
			return
		}
		fmt.Fprint(w, chatReply("Комментарий."))
	})

	program := testProgram(1)
	program.Goals = nil // Один запрос на неделю, проще считать вызовы
	reviews := NewReviewer(client).ReviewProgram(context.Background(), program)
	if reviews[1] != "Комментарий." {
		t.Errorf("обзор = %q", reviews[1])
	}
	if calls.Load() != 2 {
		t.Errorf("запросов %d, ожидали повтор после пустого ответа", calls.Load())
	}
}

func TestWeekDigest_OnlyFocusMethodsAndFirstMovement(t *testing.T) {
	week := models.Week{
		Number: 3,
		Label:  "Пиковая",
		Days: []models.Day{{
			Number: 1, Focus: "Тяговый день", Methods: []string{"pyramid"},
			Exercises: []models.Exercise{
				{Name: "Разминка", Type: models.ExerciseWarmup},
				{Name: "Подтягивания", Sets: "4 подхода: 8-7-6-5", Type: models.ExerciseMain},
				{Name: "Подъёмы ног", Type: models.ExerciseMain},
			},
		}},
	}

	digest := WeekDigest(week)
	for _, want := range []string{"Неделя 3", "Тяговый день", "pyramid", "Подтягивания"} {
		if !strings.Contains(digest, want) {
			t.Errorf("в выжимке нет %q:\n%s", want, digest)
		}
	}
	// Детали подходов и второстепенные движения в промпт не попадают
	for _, skip := range []string{"8-7-6-5", "Подъёмы ног"} {
		if strings.Contains(digest, skip) {
			t.Errorf("в выжимке лишнее %q:\n%s", skip, digest)
		}
	}
}

func authoringRequest() generator.Request {
	return generator.Request{
		Level: models.LevelIntermediate,
		Capability: models.CapabilityVector{
			Pull: 10, Dip: 12, Push: 25, Squat: 35, LegRaise: 12, Burpee: 15,
		},
		Weeks: 4,
	}
}

func TestAuthor_ParsesFencedProgram(t *testing.T) {
	payload := "```json\n" + `{
		"weeks": [
			{"number": 1, "label": "Втягивающая", "days": [
				{"number": 1, "focus": "Тяговый день", "exercises": [
					{"name": "Подтягивания", "sets": "4 подхода по 5"}
				]}
			]}
		]
	}` + "\n```"
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply(payload))
	})

	program, err := NewAuthor(client).GenerateProgram(context.Background(), authoringRequest())
	if err != nil {
		t.Fatal(err)
	}
	if program.TotalWeeks != 1 || len(program.Weeks) != 1 {
		t.Fatalf("недель %d", len(program.Weeks))
	}
	ex := program.Weeks[0].Days[0].Exercises[0]
	if ex.Name != "Подтягивания" || ex.Rest != "90 сек" {
		t.Errorf("упражнение %+v: пропущенный отдых должен получить значение по умолчанию", ex)
	}
}

func TestAuthor_MalformedJSONIsHardFailure(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply("к сожалению, JSON не получился"))
	})

	_, err := NewAuthor(client).GenerateProgram(context.Background(), authoringRequest())
	if err == nil {
		t.Fatal("мусор вместо JSON должен быть жёсткой ошибкой вызова")
	}
}

func TestAuthor_FallbackAlwaysReturnsProgram(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	program, err := NewAuthor(client).GenerateOrFallback(context.Background(), authoringRequest())
	if err != nil {
		t.Fatal(err)
	}
	if err := generator.Verify(program); err != nil {
		t.Errorf("резервная программа не прошла проверку: %v", err)
	}
}
