package model

import "strings"

// DefaultTextInputClasses are the widget classes whose key presses are worth
// recording.
var DefaultTextInputClasses = []string{"QLineEdit", "QTextEdit", "QPlainTextEdit", "QComboBox"}

// MessageBoxClasses are classes treated as alert dialogs.
var MessageBoxClasses = map[string]bool{
	"QMessageBox": true,
}

// DialogClasses are classes treated as dialogs when looking for error titles.
var DialogClasses = map[string]bool{
	"QDialog":         true,
	"QMessageBox":     true,
	"QFileDialog":     true,
	"QInputDialog":    true,
	"QProgressDialog": true,
}

// ErrorKeywords flag a dialog title as reporting a problem.
var ErrorKeywords = []string{"error", "warning", "failed", "exception"}

// HasErrorKeyword reports whether title mentions one of ErrorKeywords.
func HasErrorKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range ErrorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ClassSet builds a lookup set from class names.
func ClassSet(classes []string) map[string]bool {
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	return set
}
