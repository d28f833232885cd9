package value

// RecordWord возвращает форму слова «запись» для числа n:
// 1 запись, 3 записи, 5 записей, 11 записей, 21 запись.
func RecordWord(n int) string {
	if n < 0 {
		n = -n
	}

	lastDigit := n % 10
	lastTwoDigits := n % 100

	switch {
	case lastTwoDigits >= 11 && lastTwoDigits <= 19:
		return "записей"
	case lastDigit == 1:
		return "запись"
	case lastDigit >= 2 && lastDigit <= 4:
		return "записи"
	default:
		return "записей"
	}
}
