package publication

import "time"

// Policy はレコード作成時の公開期間デフォルトを制御する。
type Policy struct {
	// PublishByDefault が true の場合、作成時に publish_at が未設定なら
	// レコードの作成日時で埋める（新規レコードが即座に公開される）。
	PublishByDefault bool
}

// ApplyCreationDefault は作成直後のレコードへデフォルト公開日時を適用する。
// 期間を変更した場合は true を返し、永続化は呼び出し側が行う。
// 作成日時は永続化後に確定するため、リポジトリの作成処理の最後で呼ぶこと。
func (p Policy) ApplyCreationDefault(w *Window, createdAt time.Time) bool {
	if !p.PublishByDefault || w.PublishAt != nil {
		return false
	}
	t := createdAt
	w.PublishAt = &t
	return true
}
