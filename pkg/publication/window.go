// Package publication provides a publication-window value type that record
// structs embed to gain time-based visibility, plus the SQL predicates the
// repository layer uses to filter by it.
package publication

import "time"

// unpublishSkew は非公開化時に unpublish_at を now より手前に置くオフセット。
// サーバー間のクロックずれがあっても直後の読み取りで非公開側に入る余裕を持たせる。
const unpublishSkew = time.Minute

// Window は公開期間を表す値。公開制御したいレコード型に埋め込んで使う。
// PublishAt が nil なら下限なし（常に公開開始済み）、UnpublishAt が nil なら
// 上限なし（期限切れしない）。UnpublishAt が PublishAt より前でも不正とは
// 扱わない。その組み合わせは常に非公開のレコードになるだけ。
type Window struct {
	PublishAt   *time.Time `json:"publish_at,omitempty"`
	UnpublishAt *time.Time `json:"unpublish_at,omitempty"`
}

// IsPublished は now 時点で公開中かどうかを返す。
// publish_at <= now かつ now < unpublish_at（unpublish_at ちょうどの瞬間は非公開）。
func (w Window) IsPublished(now time.Time) bool {
	if w.PublishAt != nil && w.PublishAt.After(now) {
		return false
	}
	if w.UnpublishAt != nil && !w.UnpublishAt.After(now) {
		return false
	}
	return true
}

// MatchesUnpublished は非公開フィルタの述語。IsPublished の単純な否定ではなく、
// インデックスの効く形に分解した SQL 条件（Columns.Unpublished）と同じ判定:
// publish_at > now または unpublish_at < now。
// now == UnpublishAt ちょうどの瞬間は IsPublished も MatchesUnpublished も
// false になり、レコードはどちらの一覧にも現れない。
func (w Window) MatchesUnpublished(now time.Time) bool {
	if w.PublishAt != nil && w.PublishAt.After(now) {
		return true
	}
	if w.UnpublishAt != nil && w.UnpublishAt.Before(now) {
		return true
	}
	return false
}

// Publish は now から無条件公開になるよう期間を書き換える。
// すでに公開中なら何もせず false を返す（冪等）。永続化は呼び出し側の責務。
func (w *Window) Publish(now time.Time) bool {
	if w.IsPublished(now) {
		return false
	}
	t := now
	w.PublishAt = &t
	w.UnpublishAt = nil
	return true
}

// Unpublish は now 時点で非公開になるよう unpublish_at を過去に設定する。
// すでに非公開なら何もせず false を返す（冪等）。永続化は呼び出し側の責務。
func (w *Window) Unpublish(now time.Time) bool {
	if !w.IsPublished(now) {
		return false
	}
	t := now.Add(-unpublishSkew)
	w.UnpublishAt = &t
	return true
}
