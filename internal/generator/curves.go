package generator

// Setting параметры одной недели периодизации
type Setting struct {
	Volume    float64 // Доля объёма
	Intensity float64 // Доля интенсивности
	Label     string  // Название фазы
	Color     string  // Цвет для отображения
}

// sixWeekCurve классическая волна мезоцикла: втягивание, две развивающие
// недели, пик, разгрузка и подводка к контрольным замерам
var sixWeekCurve = []Setting{
	{Volume: 0.55, Intensity: 0.50, Label: "Втягивающая", Color: "🟢"},
	{Volume: 0.75, Intensity: 0.65, Label: "Развивающая", Color: "🟡"},
	{Volume: 0.85, Intensity: 0.75, Label: "Развивающая", Color: "🟡"},
	{Volume: 1.00, Intensity: 0.90, Label: "Пиковая", Color: "🔴"},
	{Volume: 0.60, Intensity: 0.55, Label: "Разгрузка", Color: "🟢"},
	{Volume: 0.70, Intensity: 0.80, Label: "Подводка", Color: "🟠"},
}

// fourWeekCurve короткая программа: объём, плотность, работа без пауз
// и соревновательная неделя
var fourWeekCurve = []Setting{
	{Volume: 0.60, Intensity: 0.55, Label: "Объёмная", Color: "🟢"},
	{Volume: 0.75, Intensity: 0.70, Label: "Плотность", Color: "🟡"},
	{Volume: 0.85, Intensity: 0.85, Label: "Без пауз", Color: "🟠"},
	{Volume: 1.00, Intensity: 0.95, Label: "Соревновательная", Color: "🔴"},
}

// SettingsFor возвращает недельные параметры программы.
// 12 недель — два одинаковых 6-недельных блока подряд.
func SettingsFor(totalWeeks int) []Setting {
	switch totalWeeks {
	case 4:
		out := make([]Setting, 4)
		copy(out, fourWeekCurve)
		return out
	case 12:
		out := make([]Setting, 0, 12)
		out = append(out, sixWeekCurve...)
		out = append(out, sixWeekCurve...)
		return out
	default:
		out := make([]Setting, 6)
		copy(out, sixWeekCurve)
		return out
	}
}
