package normalize

import (
	"strconv"
	"strings"
)

// GradeOrder is the display ordering of grade labels, kindergarten first.
var GradeOrder = []string{"K", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

var gradeIndex = func() map[string]int {
	idx := make(map[string]int, len(GradeOrder))
	for i, g := range GradeOrder {
		idx[g] = i
	}
	return idx
}()

// Grade canonicalizes a grade label to one of GradeOrder, mapping the
// kindergarten spellings to "K". Unrecognized input yields "".
func Grade(raw string) string {
	val := strings.ToUpper(strings.TrimSpace(raw))
	switch val {
	case "K", "KINDER", "KINDERGARTEN":
		return "K"
	}
	if _, ok := gradeIndex[val]; ok {
		return val
	}
	return ""
}

// GradeFromAge maps an age string to an approximate grade label. Start-of-
// range ages use a 5-year offset (5 is K, 6 is 1st, 17 is 12th); end-of-range
// ages use 6 because the end age reads as "through age N". The two offsets
// are intentionally different. Unparseable or out-of-range ages yield "".
func GradeFromAge(ageStr string, isStart bool) string {
	age, err := strconv.Atoi(strings.TrimSpace(ageStr))
	if err != nil {
		return ""
	}
	index := age - 6
	if isStart {
		index = age - 5
	}
	if index >= 0 && index < len(GradeOrder) {
		return GradeOrder[index]
	}
	return ""
}
