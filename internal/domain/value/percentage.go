package value

// Grade is the colour band of a match percentage.
type Grade string

const (
	GradeLow    Grade = "low"
	GradeMedium Grade = "medium"
	GradeHigh   Grade = "high"
)

const MaxPercentage = 100

func GradeOf(percentage int) Grade {
	switch {
	case percentage < 40: //nolint:mnd
		return GradeLow
	case percentage < 70: //nolint:mnd
		return GradeMedium
	default:
		return GradeHigh
	}
}
