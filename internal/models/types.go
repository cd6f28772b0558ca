package models

// Level уровень подготовки атлета
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel разбирает уровень из строки (принимает англ. и рус. варианты)
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "beginner", "новичок":
		return LevelBeginner, true
	case "intermediate", "средний":
		return LevelIntermediate, true
	case "advanced", "продвинутый":
		return LevelAdvanced, true
	}
	return "", false
}

// NameRu возвращает название уровня на русском
func (l Level) NameRu() string {
	switch l {
	case LevelBeginner:
		return "Новичок"
	case LevelIntermediate:
		return "Средний"
	case LevelAdvanced:
		return "Продвинутый"
	default:
		return string(l)
	}
}

// Goal цель тренировок
type Goal string

const (
	GoalWeightLoss Goal = "weight_loss"
	GoalMuscle     Goal = "build_muscle"
	GoalEndurance  Goal = "endurance"
	GoalSkill      Goal = "skill"
)

// AllGoals все допустимые цели
var AllGoals = []Goal{GoalWeightLoss, GoalMuscle, GoalEndurance, GoalSkill}

// ParseGoal разбирает цель из строки
func ParseGoal(s string) (Goal, bool) {
	switch s {
	case "weight_loss", "похудение":
		return GoalWeightLoss, true
	case "build_muscle", "масса":
		return GoalMuscle, true
	case "endurance", "выносливость":
		return GoalEndurance, true
	case "skill", "техника":
		return GoalSkill, true
	}
	return "", false
}

// NameRu возвращает название цели на русском
func (g Goal) NameRu() string {
	switch g {
	case GoalWeightLoss:
		return "Похудение"
	case GoalMuscle:
		return "Набор массы"
	case GoalEndurance:
		return "Выносливость"
	case GoalSkill:
		return "Техника и навыки"
	default:
		return string(g)
	}
}

// Movement категория движения
type Movement string

const (
	MovementPull     Movement = "pull"      // Подтягивания
	MovementDip      Movement = "dip"       // Отжимания на брусьях
	MovementPush     Movement = "push"      // Отжимания от пола
	MovementSquat    Movement = "squat"     // Приседания
	MovementLegRaise Movement = "leg_raise" // Подъёмы ног
	MovementBurpee   Movement = "burpee"    // Бёрпи
	MovementMuscleUp Movement = "muscle_up" // Выход силой (только advanced)
)

// AllMovements все категории движений в порядке вывода
var AllMovements = []Movement{
	MovementPull, MovementDip, MovementPush, MovementSquat,
	MovementLegRaise, MovementBurpee, MovementMuscleUp,
}

// NameRu возвращает название движения на русском
func (m Movement) NameRu() string {
	switch m {
	case MovementPull:
		return "Подтягивания"
	case MovementDip:
		return "Отжимания на брусьях"
	case MovementPush:
		return "Отжимания"
	case MovementSquat:
		return "Приседания"
	case MovementLegRaise:
		return "Подъёмы ног в висе"
	case MovementBurpee:
		return "Бёрпи"
	case MovementMuscleUp:
		return "Выход силой"
	default:
		return string(m)
	}
}

// CapabilityVector максимальные повторения атлета по категориям движений
type CapabilityVector struct {
	Pull     int `json:"pull"`
	Dip      int `json:"dip"`
	Push     int `json:"push"`
	Squat    int `json:"squat"`
	LegRaise int `json:"leg_raise"`
	Burpee   int `json:"burpee"`
	MuscleUp int `json:"muscle_up"` // Учитывается только для advanced
}

// CapabilityCeilings реалистичные потолки по движениям (для валидации)
var CapabilityCeilings = map[Movement]int{
	MovementPull:     60,
	MovementDip:      80,
	MovementPush:     150,
	MovementSquat:    300,
	MovementLegRaise: 100,
	MovementBurpee:   120,
	MovementMuscleUp: 30,
}

// Get возвращает значение по категории движения
func (c CapabilityVector) Get(m Movement) int {
	switch m {
	case MovementPull:
		return c.Pull
	case MovementDip:
		return c.Dip
	case MovementPush:
		return c.Push
	case MovementSquat:
		return c.Squat
	case MovementLegRaise:
		return c.LegRaise
	case MovementBurpee:
		return c.Burpee
	case MovementMuscleUp:
		return c.MuscleUp
	default:
		return 0
	}
}
