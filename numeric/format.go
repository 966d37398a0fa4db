package numeric

import "strconv"

func formatInt64(a int64) string {
	return strconv.FormatInt(a, 10)
}

func formatFloat64(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
