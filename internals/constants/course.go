package constants

var CourseDurations = []string{
	"3 Months",
	"6 Months",
	"9 Months",
	"12 Months",
	"18 Months",
	"24 Months",
}

var CourseDifficulties = []string{"Beginner", "Intermediate", "Advanced"}

var CourseModes = []string{"Online", "Offline", "Both"}
