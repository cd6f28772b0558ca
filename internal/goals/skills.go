package goals

import "calgen/internal/models"

// SkillRequirement пороговые максимумы, открывающие продвинутый элемент
type SkillRequirement struct {
	Name        string
	MinPull     int
	MinDip      int
	MinPush     int
	MinLegRaise int
	RestNote    string // Отдых между попытками — у навыков он длинный
}

// SkillTable фиксированная таблица допуска к элементам
var SkillTable = []SkillRequirement{
	{
		Name:     "Выход силой",
		MinPull:  10,
		MinDip:   8,
		RestNote: "Отдых 2-3 мин между попытками, работать свежим",
	},
	{
		Name:     "Стойка на руках у стены",
		MinPush:  20,
		RestNote: "Отдых 2 мин, сходить со стойки до потери формы",
	},
	{
		Name:        "Передний вис (прогрессии)",
		MinPull:     12,
		MinLegRaise: 15,
		RestNote:    "Отдых 2-3 мин, держать лопатки в напряжении",
	},
}

// UnlockedSkills фильтрует таблицу по максимумам атлета
func UnlockedSkills(capability models.CapabilityVector) []SkillRequirement {
	var unlocked []SkillRequirement
	for _, s := range SkillTable {
		if capability.Pull >= s.MinPull &&
			capability.Dip >= s.MinDip &&
			capability.Push >= s.MinPush &&
			capability.LegRaise >= s.MinLegRaise {
			unlocked = append(unlocked, s)
		}
	}
	return unlocked
}

// IsSkillSlot сообщает, допускается ли навыковая работа в этот день.
// Навыки ставятся только в наименее утомительные слоты недели —
// первый и последний день.
func IsSkillSlot(dayIndex int) bool {
	return dayIndex == 1 || dayIndex == 5
}
