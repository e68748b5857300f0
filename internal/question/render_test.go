package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/domain"
)

func TestRenderQ1_PoolEntryVerbatim(t *testing.T) {
	t.Parallel()
	for v := 1; v <= 6; v++ {
		q := RenderQ1(12345, v, domain.AirlineFSC)
		assert.Contains(t, q1Pool(domain.AirlineFSC, isSoft(v)), q, "version %d", v)
	}
}

func TestRenderQ2_ToneRotation(t *testing.T) {
	t.Parallel()
	ap := AttackPoint{
		Point:    "저는 동료들과 함께 문제를 해결했습니다",
		Category: CategoryIdealized,
		Tier:     1,
	}
	sharp := RenderQ2(777, 1, ap, "", domain.AirlineLCC)
	soft := RenderQ2(777, 2, ap, "", domain.AirlineLCC)
	assert.NotEqual(t, sharp, soft)

	// sharp/soft pools genuinely differ, so the assertion above is not
	// accidental index luck
	for _, tpl := range q2AttackTemplatesSharp {
		assert.NotContains(t, q2AttackTemplatesSoft, tpl)
	}
}

func TestRenderQ2_EmptyAttackPointGoesGeneric(t *testing.T) {
	t.Parallel()
	q := RenderQ2(777, 1, AttackPoint{}, "", domain.AirlineLCC)
	assert.Contains(t, defaultDeepQuestions, q)
}

func TestRenderQ2_RiskCategoryUsesRiskTemplates(t *testing.T) {
	t.Parallel()
	ap := AttackPoint{
		Point:    "혼자서 결정하는 습관이 남아 있다는 점을 알고 있습니다",
		Category: CategoryRisk,
		Tier:     1,
	}
	q := RenderQ2(777, 1, ap, "", domain.AirlineLCC)
	assert.Contains(t, q, "혼자서 결정하는 습관")
	assert.NotContains(t, q, "{") // no unresolved placeholders
}

func TestRenderQ2_DreamSentenceRouting(t *testing.T) {
	t.Parallel()
	ap := AttackPoint{
		Point:    "어릴 때부터 승무원이 되고 싶다는 꿈을 키워 왔습니다",
		Category: CategoryIdealized,
		Tier:     2,
	}
	q := RenderQ2(777, 1, ap, "", domain.AirlineLCC)
	require.NotEmpty(t, q)
	assert.NotContains(t, q, "{")
}

func TestRenderQ3_FamilyRotation(t *testing.T) {
	t.Parallel()
	ap := AttackPoint{Point: "저는 동료들과 함께 문제를 해결했습니다", Category: CategoryIdealized}
	seen := map[string]bool{}
	for v := 1; v <= 6; v++ {
		q := RenderQ3(1000, v, ap, domain.AirlineLCC)
		require.NotEmpty(t, q)
		assert.NotContains(t, q, "{")
		seen[q] = true
	}
	assert.GreaterOrEqual(t, len(seen), 3)
}

func TestRenderQ4_KeywordsDistinct(t *testing.T) {
	t.Parallel()
	p := ValueProfile{
		DisplayName: "대한항공",
		Type:        domain.AirlineFSC,
		Keywords:    []string{"품격", "정성", "안전", "전문성"},
		Desc:        "최고 수준의 서비스 품질을 지향합니다",
	}
	for v := 1; v <= 6; v++ {
		q, kw1, kw2, _ := RenderQ4(2026, v, p)
		require.NotEmpty(t, q, "version %d", v)
		assert.NotContains(t, q, "{")
		assert.NotEqual(t, kw1, kw2, "version %d", v)
		assert.Contains(t, q, "대한항공")
	}
}

func TestRenderQ4_MergerCarrierEveryThirdVersion(t *testing.T) {
	t.Parallel()
	p := ValueProfile{
		DisplayName: "진에어",
		Type:        domain.AirlineLCC,
		Keywords:    []string{"실용", "즐거움"},
		Desc:        "실용적인 즐거움을 제공합니다",
		Integrated:  true,
	}
	q3, kw1, kw2, _ := RenderQ4(2026, 3, p)
	assert.Contains(t, integratedLCCTemplates, q3)
	assert.Empty(t, kw1)
	assert.Empty(t, kw2)

	q4, kw1, kw2, _ := RenderQ4(2026, 4, p)
	assert.NotContains(t, integratedLCCTemplates, q4)
	assert.NotEmpty(t, kw1)
	assert.NotEmpty(t, kw2)
}

func TestRenderQ5_ForbiddenWordScreen(t *testing.T) {
	t.Parallel()
	for _, atype := range []domain.AirlineType{domain.AirlineFSC, domain.AirlineLCC, domain.AirlineHSC} {
		for v := 1; v <= 6; v++ {
			q := RenderQ5(999, v, atype)
			require.NotEmpty(t, q)
			for _, f := range q5ForbiddenWords {
				assert.False(t, strings.Contains(q, f), "%s v%d picked a forbidden entry", atype, v)
			}
		}
	}
}

func TestFormatTemplate_UnresolvedPlaceholderFails(t *testing.T) {
	t.Parallel()
	_, err := formatTemplate("'{point}'에 대해 {judgment}라고 하셨습니다", map[string]string{"point": "x"})
	assert.Error(t, err)

	got, err := formatTemplate("'{point}'라고 하셨습니다", map[string]string{"point": "소통"})
	require.NoError(t, err)
	assert.Equal(t, "'소통'라고 하셨습니다", got)
}
