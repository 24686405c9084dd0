// Package validation содержит функции валидации входных данных.
package validation

// IsValidSlotLabel проверяет, что метка слота имеет вид "HH:MM-HH:MM"
// и описывает интервал ровно в один час.
func IsValidSlotLabel(label string) bool {
	if len(label) != 11 || label[5] != '-' {
		return false
	}

	startHour, startMin, ok := parseClock(label[:5])
	if !ok {
		return false
	}
	endHour, endMin, ok := parseClock(label[6:])
	if !ok {
		return false
	}

	return endHour == startHour+1 && endMin == startMin
}

func parseClock(s string) (hour, minute int, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
	}

	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
