package publication

import (
	"strings"
	"time"
)

// FieldErrors はフィールド名 → エラーメッセージの検証エラー集合。
type FieldErrors map[string]string

// FieldErrors のキー。永続化カラム名と揃えてある。
const (
	FieldPublishAt   = "publish_at"
	FieldUnpublishAt = "unpublish_at"
)

// msgInvalid は解析に失敗したフィールドへ記録されるメッセージ。
const msgInvalid = "is invalid"

// textLayouts は Form が受け付ける日時フォーマット（上から順に試す）。
// タイムゾーンを含まないフォーマットは UTC として解釈される。
var textLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Form は人間が入力した日時文字列を Window に反映する。
// 解析に失敗してもエラーは返さず、フィールド単位の検証エラーとして記録する。
// 失敗したフィールドの元のタイムスタンプは変更されない。
type Form struct {
	window *Window
	errs   FieldErrors
}

// NewForm は w を編集する Form を生成する。
func NewForm(w *Window) *Form {
	return &Form{window: w}
}

// SetPublishAt は公開開始日時をテキストから設定する。空文字列は下限なしに戻す。
func (f *Form) SetPublishAt(text string) {
	f.set(FieldPublishAt, text, &f.window.PublishAt)
}

// SetUnpublishAt は公開終了日時をテキストから設定する。空文字列は上限なしに戻す。
func (f *Form) SetUnpublishAt(text string) {
	f.set(FieldUnpublishAt, text, &f.window.UnpublishAt)
}

func (f *Form) set(field, text string, dst **time.Time) {
	text = strings.TrimSpace(text)
	if text == "" {
		*dst = nil
		delete(f.errs, field)
		return
	}
	t, ok := parseText(text)
	if !ok {
		if f.errs == nil {
			f.errs = FieldErrors{}
		}
		f.errs[field] = msgInvalid
		return
	}
	*dst = &t
	delete(f.errs, field)
}

// Valid は全フィールドが解析できているかどうかを返す。
func (f *Form) Valid() bool { return len(f.errs) == 0 }

// Errors は記録された検証エラーを返す。エラーがなければ nil。
func (f *Form) Errors() FieldErrors {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs
}

func parseText(s string) (time.Time, bool) {
	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
