package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompleteSentence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want bool
	}{
		{"열심히 하겠습니다.", true},
		{"팀을 향한", false},
		{"고객의 불만을 해결하기 위해 노력했습니다.", true},
		{"소통하는", false},
		{"짧다", false},                      // under minimum length
		{"『승무원이라는 꿈』", false},             // bracketed title
		{"동료들과 함께 만들어 간 소중한 경험", false}, // bare-noun fragment
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsCompleteSentence(c.text), c.text)
	}
}

func TestIsContextDependent(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want bool
	}{
		{"그 사태 이후로 저는", true},
		{"이번에 맡게 된 일이었습니다", true},   // pronoun-only event reference
		{"동료들과 함께 문제를 해결했습니다", false},
		{"점점 나아지는 모습과", true}, // conjunction ending
		{"승객의 안전을 최우선으로 생각하며 행동했습니다", false},
		// a trailing period must not hide the sentence-final ending
		{"혼자서 결정하는 습관이 남아 있다는 점을 알고 있습니다.", false},
		{"고객을 먼저 생각하는 승무원이 되려고 준비해 왔습니다.", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsContextDependent(c.text), c.text)
	}
}

func TestIsDreamSentence(t *testing.T) {
	t.Parallel()
	assert.True(t, IsDreamSentence("승무원이 되고 싶습니다"))
	assert.True(t, IsDreamSentence("최고의 서비스를 하겠다는 다짐으로 지원했습니다"))
	assert.False(t, IsDreamSentence("동료들과 함께 문제를 해결했습니다"))
}

func TestIsAbstractSentence(t *testing.T) {
	t.Parallel()
	assert.True(t, IsAbstractSentence("살보다 뼈를 깎는 노력을 했습니다"))
	assert.True(t, IsAbstractSentence("그 경험은 제 인생의 전환점이 되었습니다"))
	assert.False(t, IsAbstractSentence("재고 오류를 30% 줄였습니다"))
}

func TestUsableFragment(t *testing.T) {
	t.Parallel()
	assert.True(t, usableFragment("동료들과 함께 문제를 해결했습니다."))
	assert.False(t, usableFragment(""))
	assert.False(t, usableFragment("팀을 향한"))
	assert.False(t, usableFragment("그 사태 이후로 저는 달라졌습니다")) // event marker
}
