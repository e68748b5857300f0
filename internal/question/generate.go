package question

import (
	"fmt"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// Slot type labels shown to the interviewee.
const (
	typeCommon   = "공통 질문"
	typeDeep     = "심층(자소서 기반)"
	typeFollowup = "꼬리 질문"
	typeValues   = "인재상/가치"
	typeSurprise = "돌발/확장"
)

const (
	intentQ1       = "기본 역량과 현장 대응을 확인하기 위한 공통 질문입니다."
	intentQ2Attack = "자소서의 이상적 표현이나 취약 지점을 공격하여 지원자의 신념을 검증하는 질문입니다."
	intentQ2Plain  = "문항 질문과 답변의 쌍을 근거로, 평가자가 보는 포인트를 다른 각도에서 검증하기 위한 질문입니다."
	intentQ3       = "Q2의 답변을 전제하지 않고, 재현성과 판단 기준을 독립적으로 검증하는 꼬리 질문입니다."
	intentQ5       = "압박 상황에서의 사고 정리와 실행 우선순위를 확인하기 위한 질문입니다."

	defaultSituation = "현장에서 변수가 발생한 상황"
	defaultBasisText = "자기소개서 답변 내용"
)

// Input bundles everything one generation call needs. Extraction is
// positional per item and may be nil entirely or per entry.
type Input struct {
	Essay      string
	Items      []domain.EssayItem
	Extraction []*domain.AttackPointRecord
	Profile    ValueProfile
	Version    int
}

// BuildSet renders the 5-slot set for one (essay, airline, version). It is a
// pure function of its input: same input, byte-identical output. It never
// fails; every degradation path ends in static pool or literal text.
func BuildSet(in Input) domain.QuestionSet {
	items := in.Items
	if len(items) == 0 {
		items = []domain.EssayItem{dummyItem()}
	}
	base := BaseSeed(in.Essay, in.Profile.DisplayName, in.Profile.Type, len(in.Items))

	pick := pickItemIndex(base, in.Version, len(items))
	item := items[pick]

	var rec *domain.AttackPointRecord
	if pick < len(in.Extraction) {
		rec = in.Extraction[pick]
	}

	set := buildSlots(base, in.Version, item, rec, in.Profile)
	for _, slot := range set.Slots() {
		if slot.Question == "" {
			// All-or-fallback: one empty slot discards the whole set and
			// rebuilds on the pure pool path.
			set = buildSlots(base, in.Version, item, nil, in.Profile)
			break
		}
	}
	return set
}

func dummyItem() domain.EssayItem {
	return domain.EssayItem{
		Index:     1,
		Type:      domain.QuestionExperience,
		Situation: defaultSituation,
		BasisA:    domain.Basis{Text: defaultBasisText},
		BasisB:    domain.Basis{Text: defaultBasisText},
	}
}

func pickSlotBasis(base uint64, version int, item domain.EssayItem) string {
	basis := item.BasisA.Text
	if pickBasisAB(base, version) == 1 {
		basis = item.BasisB.Text
	}
	if basis == "" {
		if item.Answer != "" {
			r := []rune(item.Answer)
			if len(r) > 80 {
				r = r[:80]
			}
			basis = string(r)
		} else {
			basis = "자기소개서 답변에서 언급한 내용"
		}
	}
	basis = textkor.AutoFixParticles(textkor.SanityEndings(textkor.StripEllipsis(basis)))
	return textkor.TrimNoEllipsis(basis, 120)
}

func buildSlots(base uint64, version int, item domain.EssayItem, rec *domain.AttackPointRecord, p ValueProfile) domain.QuestionSet {
	situation := item.Situation
	if situation == "" {
		situation = defaultSituation
	}
	basis := pickSlotBasis(base, version, item)

	q1 := RenderQ1(base, version, p.Type)

	ap := ResolveAttackPoint(rec, item.Answer, base, version)
	q2 := RenderQ2(base, version, ap, item.Answer, p.Type)
	q3 := RenderQ3(base, version, ap, p.Type)
	q4, kw1, kw2, desc := RenderQ4(base, version, p)
	q5 := RenderQ5(base, version, p.Type)

	anchor := textkor.FormatAnchor(PickAnchor(item.ActionSents, item.ResultSents))

	var q2Summary, q2Intent string
	if ap.Point != "" {
		q2Summary = textkor.TrimNoEllipsis(
			fmt.Sprintf("문항 %d / %s", item.Index, textkor.TrimNoEllipsis("공격 포인트: "+ap.Point, 100)), 180)
		q2Intent = intentQ2Attack
	} else {
		q2Summary = textkor.TrimNoEllipsis(
			fmt.Sprintf("문항 %d 유형(%s) / 근거 후보: %s", item.Index, item.Type, basis), 180)
		q2Intent = intentQ2Plain
	}

	q4Summary := fmt.Sprintf("[%s] 핵심가치: %s, %s", p.DisplayName, kw1, kw2)
	q4Intent := "항공사 인재상과의 정합성 확인. " + desc
	valueMeta := kw1 + "|" + kw2
	if kw1 == "" { // merger-themed question carries no keyword pair
		q4Summary = fmt.Sprintf("[%s] 통합 조직 적합성 확인", p.DisplayName)
		q4Intent = "통합 항공사 환경에서의 조직 적응력을 확인하는 질문입니다."
		valueMeta = ""
	}

	return domain.QuestionSet{
		Q1: domain.QuestionSlot{
			Type:     typeCommon,
			Question: q1,
			Basis:    textkor.BuildBasis(q1, intentQ1),
		},
		Q2: domain.QuestionSlot{
			Type:     typeDeep,
			Question: q2,
			Basis:    textkor.BuildBasis(q2Summary, q2Intent),
			Anchor:   anchor,
		},
		Q3: domain.QuestionSlot{
			Type:     typeFollowup,
			Question: q3,
			Basis: textkor.BuildBasis(
				textkor.TrimNoEllipsis(fmt.Sprintf("문항 %d 평가 주제 유지 / 상황: %s", item.Index, situation), 180),
				intentQ3),
			Anchor: anchor,
		},
		Q4: domain.QuestionSlot{
			Type:      typeValues,
			Question:  q4,
			Basis:     textkor.BuildBasis(q4Summary, q4Intent),
			ValueMeta: valueMeta,
		},
		Q5: domain.QuestionSlot{
			Type:     typeSurprise,
			Question: q5,
			Basis:    textkor.BuildBasis(q5, intentQ5),
		},
	}
}
