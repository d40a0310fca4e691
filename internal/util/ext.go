package util

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SafeExt извлекает расширение из клиентского имени файла и приводит его к
// безопасному виду: нижний регистр, только буквы/цифры, не длиннее 10 символов
func SafeExt(name string) string {
	ext := filepath.Ext(strings.TrimSpace(name))
	if ext == "" || ext == "." {
		return ""
	}
	var b strings.Builder
	for _, r := range ext[1:] {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 || b.Len() > 10 {
		return ""
	}
	return "." + b.String()
}
