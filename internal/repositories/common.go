package repositories

import "strings"

// isUniqueViolation распознает нарушение уникального индекса
// и у postgres (SQLSTATE 23505), и у sqlite (UNIQUE constraint failed)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
