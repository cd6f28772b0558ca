package methods

import (
	"fmt"
	"strconv"
	"strings"

	"calgen/internal/goals"
	"calgen/internal/models"
	"calgen/internal/reps"
	"calgen/internal/safety"
)

// PlanDay строит тренировочный день: метод берётся из недельной таблицы,
// навыковая работа всегда идёт перед утомительной, правила безопасности
// применяются внутри каждого генератора.
func PlanDay(arch Archetype, ctx Context) models.Day {
	method := MethodFor(arch, ctx.WeekIndex, ctx.TotalWeeks)

	day := models.Day{
		Number: ctx.DayIndex,
		Focus:  arch.FocusRu(),
	}

	day.Exercises = append(day.Exercises, warmupExercise())

	// Навыковая работа: только в малоутомительных слотах недели и никогда
	// внутри кластерных методов — мини-подходы слишком утомительны для навыка
	skillAdded := false
	if goals.IsSkillSlot(ctx.DayIndex) && method != MethodMiniSets {
		if sk := skillBlock(ctx, method); len(sk) > 0 {
			day.Exercises = append(day.Exercises, sk...)
			skillAdded = true
		}
	}

	main := buildMain(method, arch, ctx)
	day.Exercises = append(day.Exercises, main...)
	day.Methods = append(day.Methods, string(method))

	// Дополнительная кондиционка: не добавляется к высокоутомительным методам
	// (не больше одного такого элемента на тренировку), при доминирующей массе
	// и при навыковой работе с выбранной целью "техника"
	cardio := goals.Cardio(ctx.Weights)
	if cardio.ExtraConditioning &&
		!IsHighFatigue(method) &&
		!ctx.Limits.CapCardioVolume &&
		!(ctx.Limits.NoSkillConditioning && skillAdded) {
		if fin, ok := conditioningFinisher(ctx, cardio); ok {
			day.Exercises = append(day.Exercises, fin)
		}
	}

	day.Exercises = append(day.Exercises, cooldownExercise())
	day.Note = dayNote(arch, ctx)

	return day
}

// RetestDay контрольный день в конце программы: по одному подходу
// на максимум в каждом движении с длинным отдыхом между упражнениями
func RetestDay(ctx Context) models.Day {
	day := models.Day{
		Number:  ctx.DayIndex,
		Focus:   "Контрольный день — замер максимумов",
		Methods: []string{"retest"},
		Note:    "Сравните результаты со стартовыми максимумами — это и есть прогресс за программу.",
	}

	day.Exercises = append(day.Exercises, warmupExercise())
	for _, m := range models.AllMovements {
		max := ctx.Capability.Get(m)
		if max <= 0 {
			continue
		}
		day.Exercises = append(day.Exercises, models.Exercise{
			Name: m.NameRu(),
			Sets: "1 подход на максимум",
			Rest: "4-5 мин до следующего упражнения",
			Note: "Полный отдых, работать свежим",
			Type: models.ExerciseMain,
		})
	}
	day.Exercises = append(day.Exercises, cooldownExercise())
	return day
}

// buildMain диспетчеризация по замкнутому набору методов
func buildMain(m Method, arch Archetype, ctx Context) []models.Exercise {
	switch m {
	case MethodSplitVolume:
		return genSplitVolume(arch, ctx)
	case MethodIntervalBlock:
		return genIntervalBlock(arch, ctx)
	case MethodDescendingLadder:
		return genDescendingLadder(arch, ctx)
	case MethodPyramid:
		return genPyramid(arch, ctx)
	case MethodSuperset:
		return genSuperset(arch, ctx)
	case MethodMiniSets:
		return genMiniSets(arch, ctx)
	case MethodTimedChallenge:
		return genTimedChallenge(arch, ctx)
	case MethodIsoDynamic:
		return genIsoDynamic(arch, ctx)
	case MethodChipper:
		return genChipper(arch, ctx)
	case MethodTripleLadder:
		return genTripleLadder(arch, ctx)
	case MethodBackToBack:
		return genBackToBack(arch, ctx)
	case MethodMaxHold:
		return genMaxHold(arch, ctx)
	default:
		return genSplitVolume(arch, ctx)
	}
}

// movementName возвращает название движения с учётом регрессии для новичка
func movementName(ctx Context, m models.Movement) (string, bool) {
	reg := safety.RegressionFor(m, ctx.Capability.Get(m), ctx.Level)
	if reg == safety.NoRegression {
		return m.NameRu(), false
	}
	return reg, true
}

// mainExercise собирает основное упражнение с регрессией и пометкой.
// Для вертикальной тяги регрессия горизонтальная, поэтому объём
// масштабируется отдельным калькулятором.
func mainExercise(ctx Context, m models.Movement, method Method, sets, rest string) models.Exercise {
	name, regressed := movementName(ctx, m)
	ex := models.Exercise{
		Name:   name,
		Sets:   sets,
		Rest:   rest,
		Method: string(method),
		Type:   models.ExerciseMain,
	}
	if regressed {
		ex.Note = "Регрессия: базовое движение пока слишком тяжёлое, техника важнее"
	}
	return ex
}

// perSetTarget целевые повторения одного рабочего подхода для движения
func perSetTarget(ctx Context, m models.Movement) int {
	target := reps.SmartReps(ctx.Capability.Get(m), ctx.effectiveIntensity())
	// Горизонтальная регрессия тяги легче основного движения — объём выше
	if m == models.MovementPull && ctx.Level == models.LevelBeginner {
		if _, regressed := movementName(ctx, m); regressed {
			return reps.RegressionReps(target, ctx.WeekIndex)
		}
	}
	return target
}

// intervalTarget повторения для интервальных схем с учётом лимита целей
func intervalTarget(ctx Context, m models.Movement) int {
	r := reps.IntervalReps(ctx.Capability.Get(m))
	if ctx.Limits.CapIntervalIntensity && r > 1 {
		r--
	}
	return r
}

// setsCount количество рабочих подходов по доле объёма недели.
// Цель "техника" режет объём независимо от окна интенсивности:
// свежесть важнее тоннажа.
func setsCount(ctx Context) int {
	n := 3
	switch {
	case ctx.Volume >= 1.0:
		n = 5
	case ctx.Volume >= 0.7:
		n = 4
	}
	if ctx.Weights.Has(models.GoalSkill) && n > 3 {
		n--
	}
	return n
}

// restFor отдых между подходами по смещению целей
func restFor(ctx Context) string {
	switch goals.Rest(ctx.Weights) {
	case goals.RestLonger:
		return "2-3 мин"
	case goals.RestShorter:
		return "60 сек"
	default:
		return "90 сек"
	}
}

// === Генераторы методов ===

// genSplitVolume несколько подходов с убывающими целями на каждое движение
func genSplitVolume(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	sets := setsCount(ctx)
	for _, m := range archetypeMovements[arch] {
		top := perSetTarget(ctx, m)
		if top < 1 {
			continue
		}
		targets := make([]int, 0, sets)
		frac := 1.0
		for i := 0; i < sets; i++ {
			targets = append(targets, safety.Sanitize(float64(top)*frac, false))
			frac -= 0.15
		}
		out = append(out, mainExercise(ctx, m, MethodSplitVolume,
			fmt.Sprintf("%d подхода(ов): %s", sets, joinInts(targets)), restFor(ctx)))
	}
	return out
}

// genIntervalBlock два интервальных блока подряд с понижением повторений
func genIntervalBlock(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	for i, m := range archetypeMovements[arch] {
		if i >= 2 {
			break
		}
		r := intervalTarget(ctx, m)
		if r < 1 {
			continue
		}
		second := r - 1
		if second < 1 {
			second = 1
		}
		out = append(out, mainExercise(ctx, m, MethodIntervalBlock,
			fmt.Sprintf("Блок 1: каждые 30 сек по %d повт — 6 мин; сразу блок 2: по %d повт — 4 мин", r, second),
			"2 мин между упражнениями"))
	}
	return out
}

// LadderRounds строит убывающую лесенку от потолка к почти нулю.
// Последовательность строго невозрастающая и заканчивается до отрицательных.
func LadderRounds(top int) []int {
	if top < 1 {
		return nil
	}
	step := top / 5
	if step < 1 {
		step = 1
	}
	var rounds []int
	for v := top; v > 0; v -= step {
		rounds = append(rounds, v)
	}
	return rounds
}

// genDescendingLadder лесенка вниз от расчётного потолка
func genDescendingLadder(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	for i, m := range archetypeMovements[arch] {
		if i >= 2 {
			break
		}
		top := perSetTarget(ctx, m)
		rounds := LadderRounds(top)
		if len(rounds) == 0 {
			continue
		}
		out = append(out, mainExercise(ctx, m, MethodDescendingLadder,
			"Лесенка: "+joinInts(rounds), "Отдых по самочувствию, до полного дыхания"))
	}
	return out
}

// PyramidRounds строит пирамиду вверх до пика и обратно
func PyramidRounds(peak int) []int {
	if peak < 1 {
		return nil
	}
	step := peak / 4
	if step < 1 {
		step = 1
	}
	var up []int
	for v := step; v < peak; v += step {
		up = append(up, v)
	}
	rounds := append(up, peak)
	for i := len(up) - 1; i >= 0; i-- {
		rounds = append(rounds, up[i])
	}
	return rounds
}

// genPyramid пирамида вверх и вниз
func genPyramid(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	for i, m := range archetypeMovements[arch] {
		if i >= 2 {
			break
		}
		peak := perSetTarget(ctx, m)
		rounds := PyramidRounds(peak)
		if len(rounds) == 0 {
			continue
		}
		out = append(out, mainExercise(ctx, m, MethodPyramid,
			"Пирамида: "+joinInts(rounds), restFor(ctx)))
	}
	return out
}

// genSuperset пары упражнений раундами без паузы внутри раунда
func genSuperset(arch Archetype, ctx Context) []models.Exercise {
	movs := archetypeMovements[arch]
	if len(movs) < 2 {
		return genSplitVolume(arch, ctx)
	}
	a, b := movs[0], movs[1]
	ra := safety.Sanitize(float64(perSetTarget(ctx, a))*0.8, true)
	rb := safety.Sanitize(float64(perSetTarget(ctx, b))*0.8, true)
	if ra < 1 || rb < 1 {
		// Одно из движений атлету недоступно — пара не собирается
		return genSplitVolume(arch, ctx)
	}
	rounds := setsCount(ctx)

	nameA, _ := movementName(ctx, a)
	nameB, _ := movementName(ctx, b)
	return []models.Exercise{{
		Name:   fmt.Sprintf("Суперсет: %s + %s", nameA, nameB),
		Sets:   fmt.Sprintf("%d раунда(ов): %d + %d повт, без паузы внутри раунда", rounds, ra, rb),
		Rest:   restFor(ctx) + " между раундами",
		Method: string(MethodSuperset),
		Type:   models.ExerciseMain,
	}}
}

// genMiniSets кластеры: общий объём разбит на мини-подходы с микро-отдыхом
func genMiniSets(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	for i, m := range archetypeMovements[arch] {
		if i >= 2 {
			break
		}
		top := perSetTarget(ctx, m)
		if top < 1 {
			continue
		}
		mini := safety.Sanitize(float64(top)*0.4, false)
		clusters := 8 + setsCount(ctx)
		out = append(out, mainExercise(ctx, m, MethodMiniSets,
			fmt.Sprintf("%d мини-подходов по %d повт", clusters, mini),
			"20 сек между мини-подходами"))
	}
	return out
}

// genTimedChallenge максимум раундов за фиксированное время
func genTimedChallenge(arch Archetype, ctx Context) []models.Exercise {
	movs := archetypeMovements[arch]
	var parts []string
	for _, m := range movs {
		r := intervalTarget(ctx, m)
		if r < 1 {
			continue
		}
		name, _ := movementName(ctx, m)
		parts = append(parts, fmt.Sprintf("%d %s", r, strings.ToLower(name)))
	}
	if len(parts) == 0 {
		return nil
	}
	minutes := 10 + safety.Sanitize(ctx.Volume*4, true)
	return []models.Exercise{{
		Name:   "Челлендж: максимум раундов",
		Sets:   fmt.Sprintf("AMRAP %d мин: %s", minutes, strings.Join(parts, ", ")),
		Rest:   "Отдых внутри — только по необходимости",
		Note:   "Держать ровный темп с первого раунда, не выгорать на старте",
		Method: string(MethodTimedChallenge),
		Type:   models.ExerciseMain,
	}}
}

// genIsoDynamic изометрическое удержание с последующей динамикой
func genIsoDynamic(arch Archetype, ctx Context) []models.Exercise {
	var out []models.Exercise
	for i, m := range archetypeMovements[arch] {
		if i >= 2 {
			break
		}
		dyn := safety.Sanitize(float64(perSetTarget(ctx, m))*0.7, true)
		if dyn < 1 {
			continue
		}
		hold := 10 + safety.Sanitize(ctx.Intensity*10, true)
		name, regressed := movementName(ctx, m)
		ex := models.Exercise{
			Name:   name,
			Sets:   fmt.Sprintf("%d подхода(ов): удержание в нижней точке %d сек + %d повт", setsCount(ctx)-1, hold, dyn),
			Rest:   "2 мин",
			Method: string(MethodIsoDynamic),
			Type:   models.ExerciseMain,
		}
		if regressed {
			ex.Note = "Регрессия: базовое движение пока слишком тяжёлое, техника важнее"
		}
		out = append(out, ex)
	}
	return out
}

// genChipper один большой комплекс на время через все движения дня
func genChipper(arch Archetype, ctx Context) []models.Exercise {
	var parts []string
	for _, m := range archetypeMovements[arch] {
		r := reps.EnduranceReps(ctx.Capability.Get(m), ctx.WeekIndex, ctx.Level)
		if r < 1 {
			continue
		}
		name, _ := movementName(ctx, m)
		parts = append(parts, fmt.Sprintf("%d %s", r*2, strings.ToLower(name)))
	}
	if len(parts) == 0 {
		return nil
	}
	return []models.Exercise{{
		Name:   "Чиппер",
		Sets:   "Одним куском на время: " + strings.Join(parts, " → "),
		Rest:   "Разбивать подходы можно, порядок менять нельзя",
		Note:   "Записать общее время — ориентир для повторного прохождения",
		Method: string(MethodChipper),
		Type:   models.ExerciseMain,
	}}
}

// genTripleLadder фиксированные раунды с убыванием через три движения.
// База раунда — минимальный интервальный потолок из трёх движений,
// чтобы ни одно из них не вышло за свой кап. Если хотя бы одно движение
// атлету недоступно, метод уступает раздельному объёму.
func genTripleLadder(arch Archetype, ctx Context) []models.Exercise {
	movs := archetypeMovements[arch]
	if len(movs) < 3 {
		movs = append(movs, models.MovementBurpee)
	}
	movs = movs[:3]

	base := 0
	for i, m := range movs {
		r := intervalTarget(ctx, m)
		if r < 1 {
			return genSplitVolume(arch, ctx)
		}
		if i == 0 || r < base {
			base = r
		}
	}
	r1, r2, r3 := base, base*2/3, base/3
	if r2 < 1 {
		r2 = 1
	}
	if r3 < 1 {
		r3 = 1
	}
	var names []string
	for _, m := range movs {
		n, _ := movementName(ctx, m)
		names = append(names, strings.ToLower(n))
	}
	return []models.Exercise{{
		Name:   "Тройная лесенка",
		Sets:   fmt.Sprintf("3 раунда: %d-%d-%d повт (%s)", r1, r2, r3, strings.Join(names, " / ")),
		Rest:   "90 сек между раундами",
		Method: string(MethodTripleLadder),
		Type:   models.ExerciseMain,
	}}
}

// genBackToBack два упражнения подряд без отдыха
func genBackToBack(arch Archetype, ctx Context) []models.Exercise {
	movs := archetypeMovements[arch]
	if len(movs) < 2 {
		return genSplitVolume(arch, ctx)
	}
	a, b := movs[0], movs[1]
	ra := intervalTarget(ctx, a)
	rb := intervalTarget(ctx, b)
	if ra < 1 || rb < 1 {
		return genSplitVolume(arch, ctx)
	}
	rounds := setsCount(ctx) + 1
	nameA, _ := movementName(ctx, a)
	nameB, _ := movementName(ctx, b)
	return []models.Exercise{{
		Name:   fmt.Sprintf("Спина к спине: %s + %s", nameA, nameB),
		Sets:   fmt.Sprintf("%d раундов: %d + %d повт строго без отдыха", rounds, ra, rb),
		Rest:   "2 мин между раундами",
		Note:   "Второе упражнение начинать сразу, без паузы",
		Method: string(MethodBackToBack),
		Type:   models.ExerciseMain,
	}}
}

// genMaxHold длительные удержания
func genMaxHold(arch Archetype, ctx Context) []models.Exercise {
	holds := []struct {
		name string
		base int // Секунды для среднего уровня
	}{
		{"Вис на перекладине", 40},
		{"Планка", 60},
		{"Удержание в нижней точке приседа", 45},
	}

	lvlMult := map[models.Level]float64{
		models.LevelBeginner:     0.6,
		models.LevelIntermediate: 1.0,
		models.LevelAdvanced:     1.3,
	}[ctx.Level]

	var out []models.Exercise
	for _, h := range holds {
		sec := safety.Sanitize(float64(h.base)*lvlMult*ctx.Intensity, false)
		out = append(out, models.Exercise{
			Name:   h.name,
			Sets:   fmt.Sprintf("3 подхода по %d сек", sec),
			Rest:   "2 мин",
			Method: string(MethodMaxHold),
			Type:   models.ExerciseMain,
		})
	}
	return out
}

// === Навыковая работа ===

// skillBlock подбирает навыковую работу для малоутомительного слота.
// Выход силой ставится первым; новичку вместо него даётся парная
// горизонтальная тяга с масштабированным объёмом.
func skillBlock(ctx Context, method Method) []models.Exercise {
	// Навык с кондиционкой не смешиваем, если выбрана цель "техника"
	if ctx.Limits.NoSkillConditioning && IsHighFatigue(method) {
		return nil
	}

	if ctx.Capability.MuscleUp > 0 {
		name := models.MovementMuscleUp.NameRu()
		r := reps.SmartReps(ctx.Capability.MuscleUp, ctx.effectiveIntensity())
		sets := fmt.Sprintf("4 подхода по %d повт", r)
		if r < 1 {
			// Максимума хватает только на единичные попытки:
			// рабочие подходы заменяются негативами
			name = "Негативные выходы силой"
			sets = "4 подхода по 3 медленных негатива"
		}
		return []models.Exercise{{
			Name:   name,
			Sets:   sets,
			Rest:   "2-3 мин между попытками, работать свежим",
			Note:   "Навык делается первым, до любой утомительной работы",
			Method: string(method),
			Type:   models.ExerciseSkill,
		}}
	}

	if ctx.Level == models.LevelBeginner {
		// Подменять нечего, если основная тяга уже регрессировала в горизонтальную
		if reg := safety.RegressionFor(models.MovementPull, ctx.Capability.Pull, ctx.Level); reg == "Австралийские подтягивания" {
			return nil
		}
		base := reps.SmartReps(ctx.Capability.Pull, ctx.effectiveIntensity())
		if base < 1 {
			return nil
		}
		return []models.Exercise{{
			Name:   "Австралийские подтягивания",
			Sets:   fmt.Sprintf("3 подхода по %d повт", reps.RegressionReps(base, ctx.WeekIndex)),
			Rest:   "90 сек",
			Note:   "Подводящая работа к выходу силой вместо самого элемента",
			Method: string(method),
			Type:   models.ExerciseSkill,
		}}
	}

	// Продвинутые элементы по таблице допуска: день 1 берёт первый
	// открытый навык, день 5 — следующий. Выход силой исключается:
	// он ставится по максимуму атлета выше.
	var unlocked []goals.SkillRequirement
	for _, s := range goals.UnlockedSkills(ctx.Capability) {
		if s.Name != models.MovementMuscleUp.NameRu() {
			unlocked = append(unlocked, s)
		}
	}
	if len(unlocked) == 0 {
		return nil
	}
	idx := 0
	if ctx.DayIndex == 5 && len(unlocked) > 1 {
		idx = 1
	}
	sk := unlocked[idx]
	return []models.Exercise{{
		Name: sk.Name,
		Sets: "5 качественных попыток",
		Rest: sk.RestNote,
		Note: "Навык делается первым, до любой утомительной работы",
		Type: models.ExerciseSkill,
	}}
}

// === Вспомогательные элементы дня ===

func warmupExercise() models.Exercise {
	return models.Exercise{
		Name: "Разминка",
		Sets: "Суставная гимнастика + лёгкое кардио 5-7 мин",
		Type: models.ExerciseWarmup,
	}
}

func cooldownExercise() models.Exercise {
	return models.Exercise{
		Name: "Заминка",
		Sets: "Растяжка рабочих групп 5 мин",
		Type: models.ExerciseCooldown,
	}
}

// conditioningFinisher лёгкий кондиционный элемент в конец тренировки.
// Движение с нулевым интервальным потолком не назначается: сначала
// пробуем запасное, иначе финишера в этот день нет.
func conditioningFinisher(ctx Context, cardio goals.CardioDensity) (models.Exercise, bool) {
	m := models.MovementSquat
	if cardio.FavorBurpee {
		m = models.MovementBurpee
	}
	r := intervalTarget(ctx, m)
	if r < 1 && m != models.MovementSquat {
		m = models.MovementSquat
		r = intervalTarget(ctx, m)
	}
	if r < 1 {
		return models.Exercise{}, false
	}
	name, _ := movementName(ctx, m)
	return models.Exercise{
		Name: "Финишер: " + strings.ToLower(name),
		Sets: fmt.Sprintf("Каждые 45 сек по %d повт — 6 мин", r),
		Rest: "Остаток интервала",
		Note: "Лёгкая кондиционная добивка, не в отказ",
		Type: models.ExerciseMain,
	}, true
}

// dayNote заметка тренера ко дню. Выбор формулировки — единственное,
// на что влияет сид: косметика, не математика.
func dayNote(arch Archetype, ctx Context) string {
	notes := map[Archetype][]string{
		ArchetypePull: {
			"Тяга в полную амплитуду, без рывков.",
			"Лопатки вниз и назад в каждом повторении.",
			"Качество хвата важнее количества повторений.",
		},
		ArchetypePush: {
			"Корпус жёсткий, локти не разводить широко.",
			"Полная амплитуда в каждом повторении.",
			"Темп ровный, без отбива внизу.",
		},
		ArchetypeLegs: {
			"Колени по направлению носков.",
			"Кор держать в напряжении весь день.",
			"Дыхание не задерживать на усилии.",
		},
		ArchetypeEndurance: {
			"Темп, который можно удержать до конца.",
			"Ровное дыхание важнее скорости.",
			"Последний раунд должен быть не хуже первого.",
		},
		ArchetypeStrength: {
			"Каждое повторение как отдельный подход.",
			"Отдых не срезать — сила любит паузы.",
			"Техника прежде всего, отказ не нужен.",
		},
	}

	list := notes[arch]
	if len(list) == 0 {
		return ""
	}
	idx := int((ctx.Seed + int64(ctx.WeekNumber)*7 + int64(ctx.DayIndex))) % len(list)
	if idx < 0 {
		idx += len(list)
	}
	note := list[idx]

	// При конфликте целей день обслуживает ровно одну из них —
	// проговариваем это атлету
	switch {
	case ctx.Dominant == models.GoalWeightLoss && ctx.DayIndex == 3:
		note += " Сегодня работа на дефицит, силовые цели отдыхают."
	case ctx.Dominant == models.GoalMuscle && ctx.DayIndex == 5:
		note += " Сегодня приоритет силы и массы."
	}

	if ctx.Sport != "" {
		note += " Акцент под вид спорта: " + ctx.Sport + "."
	}
	return note
}

// joinInts форматирует последовательность раундов "8-6-4-2"
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "-")
}
