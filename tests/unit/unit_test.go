package unit

import (
	"strings"
	"testing"
	"time"
)

// =====================
// 共通ヘルパー
// =====================

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got %q", substr, err.Error())
	}
}

// 固定時刻
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

// 固定ID
type fixedIDGen struct {
	id string
}

func (g *fixedIDGen) NewID() string {
	return g.id
}

// 固定コード
type fixedCodeGen struct {
	code string
}

func (g *fixedCodeGen) NewCode() (string, error) {
	return g.code, nil
}
