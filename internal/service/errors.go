package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avdgaag/publishable/pkg/publication"
)

// ValidationError は入力検証の失敗を表す。フィールド名ごとのメッセージを保持する。
type ValidationError struct {
	Fields publication.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
