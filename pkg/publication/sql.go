package publication

import (
	"fmt"
	"time"
)

// Columns は SQL 述語を組み立てる際の公開期間カラム名。
type Columns struct {
	PublishAt   string
	UnpublishAt string
}

// DefaultColumns は規定のカラム名（publish_at / unpublish_at）。
var DefaultColumns = Columns{PublishAt: "publish_at", UnpublishAt: "unpublish_at"}

// Published は now 時点で公開中の行を選ぶ SQL 条件と引数を返す。
// プレースホルダは $firstArg（引数は now の 1 個のみで、条件内で 2 回参照される）。
func (c Columns) Published(now time.Time, firstArg int) (string, []any) {
	cond := fmt.Sprintf(
		"(%s IS NULL OR %s <= $%d) AND (%s IS NULL OR %s > $%d)",
		c.PublishAt, c.PublishAt, firstArg, c.UnpublishAt, c.UnpublishAt, firstArg,
	)
	return cond, []any{now}
}

// Unpublished は now 時点で非公開の行を選ぶ SQL 条件と引数を返す。
// NOT(...) で包まず、各カラムの B-tree インデックスが効く形に分解してある。
// unpublish_at = now ちょうどの行は Published / Unpublished のどちらにも
// 一致しない（Window 側の境界挙動と一致）。他の条件と AND で組み合わせる
// 場合は呼び出し側で括弧に包むこと。
func (c Columns) Unpublished(now time.Time, firstArg int) (string, []any) {
	cond := fmt.Sprintf(
		"(%s IS NOT NULL AND %s > $%d) OR (%s IS NOT NULL AND %s < $%d)",
		c.PublishAt, c.PublishAt, firstArg, c.UnpublishAt, c.UnpublishAt, firstArg,
	)
	return cond, []any{now}
}
