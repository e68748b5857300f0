package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/domain"
)

func lccProfile() ValueProfile {
	return ValueProfile{
		DisplayName: "제주항공",
		Type:        domain.AirlineLCC,
		Keywords:    []string{"도전", "유연함", "실행력", "소통"},
		Desc:        "빠른 실행과 유연한 현장 대응을 중시합니다",
	}
}

func sampleInput(version int) Input {
	item := domain.EssayItem{
		Index:     1,
		Prompt:    "지원 동기를 기술하시오",
		Answer:    sampleAnswer,
		Type:      domain.QuestionExperience,
		Situation: "고객 불만이 접수된 상황",
		BasisA:    domain.Basis{Text: "동료들과 함께 문제를 해결했습니다", Kind: domain.BasisAction},
		BasisB:    domain.Basis{Text: "고객의 불만을 해결하기 위해 노력했습니다", Kind: domain.BasisResult},
		ActionSents: []string{
			"상황을 정리해 동료들과 역할을 나누어 대응했습니다.",
		},
		ResultSents: []string{
			"불만 접수가 30% 감소하는 성과로 이어졌습니다.",
		},
	}
	return Input{
		Essay:   sampleAnswer,
		Items:   []domain.EssayItem{item},
		Profile: lccProfile(),
		Version: version,
	}
}

func TestBuildSet_Deterministic(t *testing.T) {
	t.Parallel()
	a := BuildSet(sampleInput(1))
	b := BuildSet(sampleInput(1))
	assert.Equal(t, a, b)
}

func TestBuildSet_NonEmptyInvariant(t *testing.T) {
	t.Parallel()
	inputs := []Input{
		sampleInput(1),
		{Essay: "", Items: nil, Profile: lccProfile(), Version: 3},                             // empty essay, dummy item path
		{Essay: "짧음", Items: []domain.EssayItem{{Index: 1}}, Profile: lccProfile(), Version: 2}, // empty answer
	}
	for _, in := range inputs {
		set := BuildSet(in)
		for i, slot := range set.Slots() {
			assert.NotEmpty(t, slot.Question, "slot %d, version %d", i+1, in.Version)
			assert.NotEmpty(t, slot.Type)
			assert.NotEmpty(t, slot.Basis)
		}
	}
}

func TestBuildSet_VersionVariety(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for v := 1; v <= 6; v++ {
		seen[BuildSet(sampleInput(v)).Q2.Question] = true
	}
	assert.GreaterOrEqual(t, len(seen), 3, "q2 must vary across versions 1..6")
}

func TestBuildSet_AnchorFromActionSentence(t *testing.T) {
	t.Parallel()
	set := BuildSet(sampleInput(1))
	assert.Contains(t, set.Q2.Anchor, "역할을 나누어")
	assert.Equal(t, set.Q2.Anchor, set.Q3.Anchor)
	assert.Empty(t, set.Q1.Anchor)
	assert.Empty(t, set.Q5.Anchor)
}

func TestBuildSet_ValueMetaOnQ4Only(t *testing.T) {
	t.Parallel()
	set := BuildSet(sampleInput(1))
	require.NotEmpty(t, set.Q4.ValueMeta)
	assert.Contains(t, set.Q4.ValueMeta, "|")
	assert.Empty(t, set.Q2.ValueMeta)
}

func TestBuildSet_LocalFallbackEndToEnd(t *testing.T) {
	t.Parallel()
	// No extraction supplied: Q2 must come from the local scan of the answer
	// and still differ between adjacent versions.
	v1 := BuildSet(sampleInput(1))
	v2 := BuildSet(sampleInput(2))
	require.NotEmpty(t, v1.Q2.Question)
	require.NotEmpty(t, v2.Q2.Question)
	assert.NotEqual(t, v1.Q2.Question, v2.Q2.Question)
}

func TestBuildSet_ExtractionChangesQ2(t *testing.T) {
	t.Parallel()
	plain := BuildSet(sampleInput(1))

	withRec := sampleInput(1)
	withRec.Extraction = []*domain.AttackPointRecord{{
		RejectedAlternatives: []string{"다른 부서의 도움을 받는 방법은 선택하지 않았습니다."},
	}}
	set := BuildSet(withRec)
	require.NotEmpty(t, set.Q2.Question)
	assert.NotEqual(t, plain.Q2.Question, set.Q2.Question)
}

func TestStableSeed_CrossCallStability(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StableSeed("제주항공"), StableSeed("제주항공"))
	assert.NotEqual(t, StableSeed("제주항공"), StableSeed("진에어"))
}

func TestEssayHash_EmptyEssay(t *testing.T) {
	t.Parallel()
	assert.Empty(t, EssayHash(""))
	assert.Len(t, EssayHash("자소서"), 64)
}
