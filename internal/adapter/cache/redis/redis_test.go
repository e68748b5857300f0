package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, time.Hour), mr
}

func sampleSet(q string) domain.QuestionSet {
	return domain.QuestionSet{
		Q1: domain.QuestionSlot{Type: "공통 질문", Question: q},
		Q4: domain.QuestionSlot{Type: "인재상/가치", Question: "가치 질문", ValueMeta: "안전|배려"},
	}
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "k1")
	assert.False(t, ok)

	c.Put(ctx, "k1", sampleSet("질문입니다"))
	got, ok := c.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "질문입니다", got.Q1.Question)
	assert.Equal(t, "안전|배려", got.Q4.ValueMeta)
}

func TestTTLApplied(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, "k1", sampleSet("q"))
	mr.FastForward(2 * time.Hour)
	_, ok := c.Get(ctx, "k1")
	assert.False(t, ok)
}

func TestCorruptEntryDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(keyNamespace+"bad", "{not json"))
	_, ok := c.Get(ctx, "bad")
	assert.False(t, ok)
	assert.False(t, mr.Exists(keyNamespace+"bad"))
}

func TestInvalidatePrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, "v3|aaa|1", sampleSet("one"))
	c.Put(ctx, "v3|aaa|2", sampleSet("two"))
	c.Put(ctx, "v3|bbb|1", sampleSet("other"))

	c.Invalidate(ctx, "v3|aaa|")
	_, ok := c.Get(ctx, "v3|aaa|1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "v3|aaa|2")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "v3|bbb|1")
	assert.True(t, ok)
}
