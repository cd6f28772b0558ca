package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"calgen/clients/ai"
	"calgen/internal/config"
	"calgen/internal/generator"
	"calgen/internal/generator/formatter"
	"calgen/internal/models"
)

func main() {
	// Флаги
	level := flag.String("level", "", "Уровень: beginner, intermediate, advanced")
	pull := flag.Int("pull", 0, "Максимум подтягиваний")
	dip := flag.Int("dip", 0, "Максимум отжиманий на брусьях")
	push := flag.Int("push", 0, "Максимум отжиманий от пола")
	squat := flag.Int("squat", 0, "Максимум приседаний")
	legRaise := flag.Int("legraise", 0, "Максимум подъёмов ног")
	burpee := flag.Int("burpee", 0, "Максимум бёрпи")
	muscleUp := flag.Int("muscleup", 0, "Максимум выходов силой (для продвинутых)")
	goalsFlag := flag.String("goals", "", "Цели через запятую: weight_loss, build_muscle, endurance, skill (до 3)")
	weeks := flag.Int("weeks", 6, "Длительность программы: 4, 6 или 12 недель")
	height := flag.Int("height", 0, "Рост (см, для расчёта питания)")
	weight := flag.Int("weight", 0, "Вес (кг, для расчёта питания)")
	sport := flag.String("sport", "", "Акцент под вид спорта (опционально)")
	seed := flag.Int64("seed", 0, "Сид формулировок заметок")
	review := flag.Bool("review", false, "Запросить обзор программы у модели")
	aiAuthor := flag.Bool("ai", false, "Режим модели: программу пишет LLM (с резервом)")
	jsonOut := flag.Bool("json", false, "Вывод в JSON вместо текста")
	output := flag.String("output", "", "Файл для сохранения программы")

	flag.Parse()

	// Интерактивный режим, если анкета не заполнена
	req := generator.Request{
		Capability: models.CapabilityVector{
			Pull: *pull, Dip: *dip, Push: *push, Squat: *squat,
			LegRaise: *legRaise, Burpee: *burpee, MuscleUp: *muscleUp,
		},
		HeightCm: *height,
		WeightKg: *weight,
		Sport:    *sport,
		Weeks:    *weeks,
		Seed:     *seed,
	}

	if *level == "" || *pull == 0 {
		runInteractive(&req)
	} else {
		lv, ok := models.ParseLevel(*level)
		if !ok {
			fmt.Printf("❌ Неизвестный уровень: %s\n", *level)
			os.Exit(1)
		}
		req.Level = lv
		req.Goals = parseGoals(*goalsFlag)
	}

	cfg := config.Load()
	ctx := context.Background()

	// Генерация
	var program *models.Program
	var err error
	if *aiAuthor && cfg.ReviewEnabled() {
		client := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
		program, err = ai.NewAuthor(client).GenerateOrFallback(ctx, req)
	} else {
		if *aiAuthor {
			fmt.Println("⚠️ AI_API_KEY не задан, собираю программу детерминированно")
		}
		program, err = generator.Build(req)
	}
	if err != nil {
		fmt.Printf("❌ Ошибка генерации: %v\n", err)
		os.Exit(1)
	}

	if err := generator.Verify(program); err != nil {
		fmt.Printf("❌ Программа не прошла проверку: %v\n", err)
		os.Exit(1)
	}

	// Обзор недель
	if *review {
		if !cfg.ReviewEnabled() {
			fmt.Println("⚠️ AI_API_KEY не задан, обзор пропущен")
		} else {
			fmt.Println("💬 Запрашиваю обзор программы...")
			client := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
			program.Reviews = ai.NewReviewer(client).ReviewProgram(ctx, program)
		}
	}

	// Вывод
	var rendered string
	if *jsonOut {
		data, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			fmt.Printf("❌ Ошибка сериализации: %v\n", err)
			os.Exit(1)
		}
		rendered = string(data)
	} else {
		rendered = formatter.NewTextFormatter().FormatProgram(program)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0644); err != nil {
			fmt.Printf("❌ Ошибка записи файла: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Программа сохранена в %s\n", *output)
	} else {
		fmt.Println(rendered)
	}

	// Статистика
	st := generator.Summarize(program)
	fmt.Println("\n📊 " + st.DescribeRu())
}

// parseGoals разбирает список целей из строки флага
func parseGoals(s string) []models.Goal {
	var goals []models.Goal
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if g, ok := models.ParseGoal(part); ok {
			goals = append(goals, g)
		} else {
			fmt.Printf("⚠️ Цель %q не распознана, пропускаю\n", part)
		}
	}
	return goals
}

func runInteractive(req *generator.Request) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("🤸 Генератор программ калистеники")
	fmt.Println("==================================")

	// Уровень
	fmt.Println("Уровень подготовки:")
	fmt.Println("  1. Новичок")
	fmt.Println("  2. Средний")
	fmt.Println("  3. Продвинутый")
	fmt.Print("Выбор [2]: ")
	switch readLine(reader) {
	case "1":
		req.Level = models.LevelBeginner
	case "3":
		req.Level = models.LevelAdvanced
	default:
		req.Level = models.LevelIntermediate
	}

	// Максимумы
	fmt.Println("\nВведите максимумы за один подход:")
	req.Capability.Pull = readInt(reader, "Подтягивания")
	req.Capability.Dip = readInt(reader, "Отжимания на брусьях")
	req.Capability.Push = readInt(reader, "Отжимания от пола")
	req.Capability.Squat = readInt(reader, "Приседания")
	req.Capability.LegRaise = readInt(reader, "Подъёмы ног")
	req.Capability.Burpee = readInt(reader, "Бёрпи")
	if req.Level == models.LevelAdvanced {
		req.Capability.MuscleUp = readInt(reader, "Выходы силой")
	}

	// Цели
	fmt.Println("\nЦели через запятую (weight_loss, build_muscle, endurance, skill), Enter — без целей:")
	fmt.Print("Цели: ")
	req.Goals = parseGoals(readLine(reader))

	// Длительность
	fmt.Print("\nДлительность (4, 6 или 12 недель) [6]: ")
	if w, err := strconv.Atoi(readLine(reader)); err == nil {
		req.Weeks = w
	} else if req.Weeks == 0 {
		req.Weeks = 6
	}

	// Питание
	fmt.Print("\nРост в см (Enter — пропустить): ")
	if h, err := strconv.Atoi(readLine(reader)); err == nil {
		req.HeightCm = h
	}
	fmt.Print("Вес в кг (Enter — пропустить): ")
	if w, err := strconv.Atoi(readLine(reader)); err == nil {
		req.WeightKg = w
	}
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func readInt(reader *bufio.Reader, prompt string) int {
	fmt.Printf("%s: ", prompt)
	n, err := strconv.Atoi(readLine(reader))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
