package methods

// Недельные расписания методов. Литеральные таблицы вместо случайного
// выбора: каждый архетип получает свой метод на каждую неделю блока,
// повторы внутри блока исключены самой таблицей. Высокоутомительные
// методы расставлены так, что в одной тренировке встречается не более
// одного (второй в день не добавляется планировщиком).

// sixWeekSchedule расписание для 6-недельного блока (и половин 12 недель)
var sixWeekSchedule = map[Archetype][6]Method{
	ArchetypePull: {
		MethodSplitVolume, MethodIntervalBlock, MethodDescendingLadder,
		MethodPyramid, MethodMiniSets, MethodSuperset,
	},
	ArchetypePush: {
		MethodSuperset, MethodSplitVolume, MethodPyramid,
		MethodIntervalBlock, MethodDescendingLadder, MethodMiniSets,
	},
	ArchetypeLegs: {
		MethodIntervalBlock, MethodSuperset, MethodTimedChallenge,
		MethodChipper, MethodSplitVolume, MethodTripleLadder,
	},
	ArchetypeEndurance: {
		MethodTimedChallenge, MethodTripleLadder, MethodChipper,
		MethodIntervalBlock, MethodBackToBack, MethodSuperset,
	},
	ArchetypeStrength: {
		MethodIsoDynamic, MethodMaxHold, MethodSplitVolume,
		MethodDescendingLadder, MethodPyramid, MethodSuperset,
	},
}

// fourWeekSchedule расписание для короткой 4-недельной программы
var fourWeekSchedule = map[Archetype][4]Method{
	ArchetypePull: {
		MethodSplitVolume, MethodIntervalBlock, MethodPyramid, MethodDescendingLadder,
	},
	ArchetypePush: {
		MethodSuperset, MethodPyramid, MethodIntervalBlock, MethodSplitVolume,
	},
	ArchetypeLegs: {
		MethodIntervalBlock, MethodTimedChallenge, MethodSuperset, MethodChipper,
	},
	ArchetypeEndurance: {
		MethodTimedChallenge, MethodChipper, MethodBackToBack, MethodIntervalBlock,
	},
	ArchetypeStrength: {
		MethodIsoDynamic, MethodSplitVolume, MethodMaxHold, MethodDescendingLadder,
	},
}

// MethodFor возвращает метод для архетипа и недели программы.
// 12-недельная программа — два 6-недельных блока.
func MethodFor(arch Archetype, weekIndex, totalWeeks int) Method {
	switch totalWeeks {
	case 4:
		row := fourWeekSchedule[arch]
		return row[weekIndex%4]
	default:
		row := sixWeekSchedule[arch]
		return row[weekIndex%6]
	}
}
