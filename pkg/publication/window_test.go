package publication

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// mustTime parses "2006-01-02 15:04:05" as UTC for test fixtures.
func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		t.Fatalf("parse test time %q: %v", s, err)
	}
	return parsed
}

func tp(t time.Time) *time.Time { return &t }

// ---------------------------------------------------------------------------
// IsPublished
// ---------------------------------------------------------------------------

func TestWindow_IsPublished_NoBounds(t *testing.T) {
	w := Window{}
	for _, s := range []string{"1970-01-01 00:00:00", "2006-05-23 12:00:00", "2099-12-31 23:59:59"} {
		if !w.IsPublished(mustTime(t, s)) {
			t.Errorf("window without bounds should be published at %s", s)
		}
	}
}

func TestWindow_IsPublished_WithinWindow(t *testing.T) {
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-23 08:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00")),
	}
	if !w.IsPublished(mustTime(t, "2006-05-23 12:00:00")) {
		t.Error("expected published inside the window")
	}
}

func TestWindow_IsPublished_AtPublishInstant(t *testing.T) {
	at := mustTime(t, "2006-05-23 08:00:00")
	w := Window{PublishAt: tp(at)}
	if !w.IsPublished(at) {
		t.Error("expected published at the publish instant (publish_at <= now)")
	}
}

func TestWindow_IsPublished_AtUnpublishInstant(t *testing.T) {
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-23 08:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00")),
	}
	// The unpublish instant itself is already unpublished.
	if w.IsPublished(mustTime(t, "2006-05-24 09:00:00")) {
		t.Error("expected unpublished at the unpublish instant")
	}
}

func TestWindow_IsPublished_BeforePublishAt(t *testing.T) {
	w := Window{PublishAt: tp(mustTime(t, "2006-05-23 08:00:00"))}
	if w.IsPublished(mustTime(t, "2006-05-23 07:59:59")) {
		t.Error("expected unpublished before publish_at")
	}
}

func TestWindow_IsPublished_AfterUnpublishAt(t *testing.T) {
	w := Window{UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00"))}
	if w.IsPublished(mustTime(t, "2006-05-24 09:00:01")) {
		t.Error("expected unpublished after unpublish_at")
	}
}

func TestWindow_IsPublished_OnlyLowerBound(t *testing.T) {
	w := Window{PublishAt: tp(mustTime(t, "2006-05-23 08:00:00"))}
	if !w.IsPublished(mustTime(t, "2099-01-01 00:00:00")) {
		t.Error("window without unpublish_at should never expire")
	}
}

func TestWindow_IsPublished_OnlyUpperBound(t *testing.T) {
	w := Window{UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00"))}
	if !w.IsPublished(mustTime(t, "1970-01-01 00:00:00")) {
		t.Error("window without publish_at should already be visible")
	}
}

func TestWindow_IsPublished_InvertedWindow(t *testing.T) {
	// unpublish_at before publish_at is legal and yields an always-unpublished
	// record; no cross-field validation happens.
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-24 09:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-23 08:00:00")),
	}
	for _, s := range []string{"2006-05-23 00:00:00", "2006-05-23 12:00:00", "2006-05-25 00:00:00"} {
		if w.IsPublished(mustTime(t, s)) {
			t.Errorf("inverted window should never be published, but was at %s", s)
		}
	}
}

// ---------------------------------------------------------------------------
// Publish
// ---------------------------------------------------------------------------

func TestWindow_Publish_FromUnpublished(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	w := Window{PublishAt: tp(mustTime(t, "2006-06-01 00:00:00"))}

	if !w.Publish(now) {
		t.Fatal("expected Publish to report a change")
	}
	if !w.IsPublished(now) {
		t.Error("expected published after Publish")
	}
	if w.PublishAt == nil || !w.PublishAt.Equal(now) {
		t.Errorf("expected publish_at=now, got %v", w.PublishAt)
	}
	if w.UnpublishAt != nil {
		t.Errorf("expected unpublish_at cleared, got %v", w.UnpublishAt)
	}
}

func TestWindow_Publish_ClearsExpiry(t *testing.T) {
	// Re-publishing an expired record must drop the old upper bound.
	now := mustTime(t, "2006-05-25 00:00:00")
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-23 08:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00")),
	}

	if !w.Publish(now) {
		t.Fatal("expected Publish to report a change")
	}
	if w.UnpublishAt != nil {
		t.Errorf("expected unpublish_at cleared, got %v", w.UnpublishAt)
	}
	if !w.IsPublished(mustTime(t, "2099-01-01 00:00:00")) {
		t.Error("expected unconditionally published from now on")
	}
}

func TestWindow_Publish_NoopWhenPublished(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	publishAt := mustTime(t, "2006-05-23 08:00:00")
	unpublishAt := mustTime(t, "2006-05-24 09:00:00")
	w := Window{PublishAt: tp(publishAt), UnpublishAt: tp(unpublishAt)}

	if w.Publish(now) {
		t.Error("expected Publish to be a no-op on a published window")
	}
	if !w.PublishAt.Equal(publishAt) || !w.UnpublishAt.Equal(unpublishAt) {
		t.Error("expected no-op Publish to leave the window untouched")
	}
}

func TestWindow_Publish_Idempotent(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	w := Window{PublishAt: tp(mustTime(t, "2006-06-01 00:00:00"))}

	if !w.Publish(now) {
		t.Fatal("expected first Publish to change the window")
	}
	after := w
	if w.Publish(now) {
		t.Error("expected second Publish to report no change")
	}
	if !w.PublishAt.Equal(*after.PublishAt) || w.UnpublishAt != nil {
		t.Error("expected second Publish to leave the window as the first left it")
	}
}

// ---------------------------------------------------------------------------
// Unpublish
// ---------------------------------------------------------------------------

func TestWindow_Unpublish_FromPublished(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	w := Window{PublishAt: tp(mustTime(t, "2006-05-23 08:00:00"))}

	if !w.Unpublish(now) {
		t.Fatal("expected Unpublish to report a change")
	}
	if w.IsPublished(now) {
		t.Error("expected unpublished after Unpublish")
	}
	want := now.Add(-time.Minute)
	if w.UnpublishAt == nil || !w.UnpublishAt.Equal(want) {
		t.Errorf("expected unpublish_at=%v (one minute before now), got %v", want, w.UnpublishAt)
	}
}

func TestWindow_Unpublish_LeavesPublishAt(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	publishAt := mustTime(t, "2006-05-23 08:00:00")
	w := Window{PublishAt: tp(publishAt)}

	w.Unpublish(now)
	if w.PublishAt == nil || !w.PublishAt.Equal(publishAt) {
		t.Errorf("expected publish_at untouched, got %v", w.PublishAt)
	}
}

func TestWindow_Unpublish_NoopWhenNotYetPublished(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	w := Window{PublishAt: tp(mustTime(t, "2006-06-01 00:00:00"))}

	if w.Unpublish(now) {
		t.Error("expected Unpublish to be a no-op on an unpublished window")
	}
	if w.UnpublishAt != nil {
		t.Errorf("expected unpublish_at untouched, got %v", w.UnpublishAt)
	}
}

func TestWindow_Unpublish_Idempotent(t *testing.T) {
	now := mustTime(t, "2006-05-23 12:00:00")
	w := Window{}

	if !w.Unpublish(now) {
		t.Fatal("expected first Unpublish to change the window")
	}
	first := *w.UnpublishAt
	if w.Unpublish(now) {
		t.Error("expected second Unpublish to report no change")
	}
	if !w.UnpublishAt.Equal(first) {
		t.Errorf("expected unpublish_at unchanged by second call, got %v", w.UnpublishAt)
	}
}

// ---------------------------------------------------------------------------
// Filter predicate boundary behavior
// ---------------------------------------------------------------------------

func TestWindow_FilterPredicates_MutuallyExclusive(t *testing.T) {
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-23 08:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-24 09:00:00")),
	}
	for _, s := range []string{
		"2006-05-23 07:00:00",
		"2006-05-23 08:00:00",
		"2006-05-23 12:00:00",
		"2006-05-24 09:00:01",
		"2006-05-25 00:00:00",
	} {
		now := mustTime(t, s)
		pub, unpub := w.IsPublished(now), w.MatchesUnpublished(now)
		if pub == unpub {
			t.Errorf("at %s expected exactly one predicate to match, got published=%v unpublished=%v", s, pub, unpub)
		}
	}
}

func TestWindow_FilterPredicates_BothFalseAtUnpublishInstant(t *testing.T) {
	// Known boundary quirk: the published filter uses unpublish_at > now, the
	// unpublished filter uses unpublish_at < now, so the instant exactly equal
	// to unpublish_at matches neither.
	at := mustTime(t, "2006-05-24 09:00:00")
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-23 08:00:00")),
		UnpublishAt: tp(at),
	}
	if w.IsPublished(at) {
		t.Error("expected published filter not to match at the unpublish instant")
	}
	if w.MatchesUnpublished(at) {
		t.Error("expected unpublished filter not to match at the unpublish instant")
	}
}

func TestWindow_MatchesUnpublished_InvertedWindow(t *testing.T) {
	// An inverted window matches the unpublished filter at every instant,
	// including the unpublish boundary (the future publish_at clause catches it).
	w := Window{
		PublishAt:   tp(mustTime(t, "2006-05-24 09:00:00")),
		UnpublishAt: tp(mustTime(t, "2006-05-23 08:00:00")),
	}
	for _, s := range []string{"2006-05-23 00:00:00", "2006-05-23 08:00:00", "2006-05-23 12:00:00", "2006-05-25 00:00:00"} {
		if !w.MatchesUnpublished(mustTime(t, s)) {
			t.Errorf("inverted window should match the unpublished filter at %s", s)
		}
	}
}
