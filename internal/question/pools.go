package question

import (
	"fmt"
	"strings"

	"github.com/flyready/question-engine/internal/domain"
)

// Static question pools and template families. Pool entries for Q1/Q5 are
// curated text used verbatim; no rewording happens after selection. Pools are
// keyed by airline type and tone; tone follows version parity.

// -------- Q1: common opening questions --------

var q1PoolCommonSharp = []string{
	"승무원에게 필요한 자질 중 본인에게 가장 부족한 것은 무엇이고, 그 상태로 현장에 서도 된다고 판단하는 근거는 무엇입니까?",
	"서비스와 안전이 충돌하는 순간 무엇을 포기하겠습니까? 포기한 쪽에 대한 책임은 어떻게 지겠습니까?",
	"지금까지의 경험 중 승무원 직무와 직접 연결된다고 증명할 수 있는 것을 하나만 말해 보십시오.",
	"본인이 오늘 면접에서 탈락한다면 가장 설득력 있는 탈락 사유는 무엇이라고 생각합니까?",
	"체력, 감정노동, 불규칙한 스케줄 중 본인이 가장 먼저 무너질 요소는 무엇입니까?",
	"다른 지원자가 아니라 본인을 뽑아야 하는 이유를 수치나 사실로 말해 보십시오.",
}

var q1PoolCommonSoft = []string{
	"승무원이라는 직무를 준비하면서 스스로 가장 성장했다고 느낀 부분은 무엇인가요?",
	"서비스와 안전이 동시에 요구되는 상황을 상상해 보셨다면, 어떤 순서로 움직이실 것 같나요?",
	"지금까지의 경험 중 승무원 직무와 가장 맞닿아 있다고 생각하는 경험을 들려주세요.",
	"본인을 한 문장으로 소개한다면 어떻게 표현하고 싶으신가요?",
	"불규칙한 근무 환경을 버티기 위해 본인만의 준비가 있다면 말씀해 주세요.",
	"함께 일하고 싶은 동료의 모습이 있다면, 본인은 그 모습에 얼마나 가까운가요?",
}

var q1PoolFSCSharp = []string{
	"프리미엄 서비스를 표방하는 항공사에서 '정중함'과 '신속함'이 충돌하면 무엇이 우선입니까? 기준을 말해 보십시오.",
	"장거리 노선에서 12시간 이상 같은 표정을 유지해야 합니다. 가능하다고 판단하는 근거가 있습니까?",
	"규정상 안 되는 요청을 상위 고객이 반복합니다. 어디까지 거절할 수 있습니까?",
	"격식 있는 서비스 경험이 없다면, 무엇으로 그 공백을 증명하겠습니까?",
}

var q1PoolFSCSoft = []string{
	"품격 있는 서비스란 무엇이라고 생각하시는지, 본인의 언어로 말씀해 주세요.",
	"장거리 비행에서 체력과 표정을 함께 관리해야 한다면 어떤 준비가 필요할까요?",
	"상위 클래스 고객 응대에서 가장 중요하게 지켜야 할 것은 무엇이라고 보시나요?",
	"정중함을 유지하면서도 단호해야 했던 경험이 있다면 들려주세요.",
}

var q1PoolLCCSharp = []string{
	"짧은 턴어라운드에 기내 정리가 밀렸습니다. 무엇부터 버리고 무엇부터 잡겠습니까?",
	"최소 인원으로 운영되는 기내에서 동료가 실수를 반복합니다. 현장에서 바로 어떻게 하겠습니까?",
	"가격으로 선택받는 항공사에서 서비스로 기억에 남겠다는 말은 모순 아닙니까?",
	"유료 서비스 안내에 고객이 불쾌해합니다. 매출과 기분 중 무엇을 선택하겠습니까?",
}

var q1PoolLCCSoft = []string{
	"빠른 탑승 회전 속에서도 놓치지 말아야 할 서비스가 있다면 무엇일까요?",
	"적은 인원으로 움직이는 팀에서 본인이 잘할 수 있는 역할은 무엇인가요?",
	"실용적인 서비스와 따뜻한 서비스, 두 가지를 어떻게 함께 가져가실 건가요?",
	"기내 판매나 유료 서비스 안내를 해야 한다면 어떤 마음가짐으로 하시겠어요?",
}

var q1PoolHSCSharp = []string{
	"중장거리 노선을 저비용 구조로 운영하는 회사입니다. 서비스 기대와 비용 통제 사이에서 본인은 어느 쪽 사람입니까?",
	"하이브리드라는 말은 애매하다는 뜻이기도 합니다. 본인이 생각하는 이 회사의 정체성을 한 문장으로 정리해 보십시오.",
	"장거리 피로와 낮은 운임 고객의 높은 기대가 겹칩니다. 무엇으로 버티겠습니까?",
}

var q1PoolHSCSoft = []string{
	"합리적인 가격과 장거리 서비스 품질을 함께 잡으려는 회사입니다. 본인이 기여할 수 있는 지점은 어디일까요?",
	"새로운 형태의 항공사에 지원하면서 기대하는 점과 걱정되는 점을 각각 말씀해 주세요.",
	"장거리 노선에서 고객이 기억할 만한 순간을 만든다면 어떤 모습일까요?",
}

// -------- Q5: surprise questions --------

var q5PoolCommonSharp = []string{
	"지금 이 면접장에서 비상 상황이 발생하면 본인이 가장 먼저 할 행동은 무엇입니까? 3초 안에 답하십시오.",
	"방금 답변 중 과장이 섞인 부분이 있다면 스스로 짚어 보십시오.",
	"오늘 면접에서 떨어지면 내일 무엇을 하겠습니까?",
	"상사가 규정에 어긋난 지시를 합니다. 그 자리에서 어떻게 말하겠습니까?",
	"승객이 본인에게 인격적인 모욕을 했습니다. 표정을 유지할 수 있습니까? 그 다음 행동은 무엇입니까?",
}

var q5PoolCommonSoft = []string{
	"면접을 준비하며 버리게 된 습관이 있다면 무엇인가요?",
	"오늘 면접장에 오기까지의 과정에서 가장 기억에 남는 장면은 무엇인가요?",
	"본인을 색깔로 표현한다면 무엇이고, 그 이유는 무엇인가요?",
	"실수를 한 날, 스스로를 다시 일으키는 본인만의 방법이 있나요?",
	"10년 뒤의 본인이 지금의 본인에게 한마디를 건넨다면 어떤 말일까요?",
}

var q5PoolFSCSharp = []string{
	"일등석 고객이 승무원 교체를 요구합니다. 본인이 그 대상입니다. 어떻게 하겠습니까?",
	"회사의 프리미엄 이미지와 본인의 이미지가 어울린다고 생각합니까? 근거를 말해 보십시오.",
	"기내에서 동료의 서비스 품질이 기준 이하입니다. 보고하겠습니까, 덮겠습니까?",
}

var q5PoolFSCSoft = []string{
	"최고의 서비스를 받았던 경험이 있다면, 그 순간 무엇이 달랐나요?",
	"품격이라는 단어를 행동 하나로 보여 준다면 어떤 행동일까요?",
	"장거리 비행 후 가장 하고 싶은 일은 무엇인가요?",
}

var q5PoolLCCSharp = []string{
	"기내 판매 실적이 꼴찌입니다. 다음 비행에서 무엇을 바꾸겠습니까?",
	"지연으로 화가 난 승객 앞에서 회사 사정을 설명하는 것이 의미가 있다고 봅니까?",
	"저비용 항공사 승무원은 멀티플레이어여야 합니다. 본인이 못 하는 것부터 말해 보십시오.",
}

var q5PoolLCCSoft = []string{
	"짧은 비행에서도 고객이 웃게 되는 순간을 만든다면 어떤 방법일까요?",
	"여러 역할을 동시에 해야 할 때 본인만의 우선순위 정리법이 있나요?",
	"가장 최근에 받았던 작지만 기분 좋은 서비스는 무엇이었나요?",
}

// HSC surprise pool has no sharp/soft split yet; both tones draw from the
// same base pool on top of the common one.
var q5PoolHSC = []string{
	"장거리 노선 기내에서 10시간째, 서 있을 힘도 없습니다. 고객 호출이 울리면 어떻게 하겠습니까?",
	"신생 항공사라 절차가 계속 바뀝니다. 본인은 규칙이 불완전한 조직에서 일할 수 있는 사람입니까?",
	"하이브리드 항공사를 친구에게 한 문장으로 설명한다면 어떻게 말하겠습니까?",
}

// Experience-demanding phrasings are banned in Q5: surprise questions test
// on-the-spot thinking, not resume recall.
var q5ForbiddenWords = []string{"경험을 말해", "경험이 있다면 말해", "사례를 들어 설명"}

// -------- Q2: deep/attack template families --------
// Placeholders: {point} {premise} {premise_broken} {judgment} {who}
// {short_point} {risk} {alt}

var q2AttackTemplatesSharp = []string{
	"자소서에 '{point}'라고 쓰셨습니다. 그 말은 {premise}을 전제로 합니다. {premise_broken} 그래도 {judgment}고 말할 수 있습니까?",
	"'{point}' 이 문장에서 본인은 {who}이 협조한다는 가정 위에 서 있습니다. {premise_broken} 그때도 같은 선택을 하겠습니까?",
	"{premise_broken} '{point}'라는 본인의 말은 어디까지 유효합니까?",
	"'{point}'라고 하셨는데, {who}가 그 노력을 전혀 알아주지 않는다면 {judgment}는 판단을 유지할 이유가 남습니까?",
}

var q2AttackTemplatesSoft = []string{
	"자소서에 '{point}'라고 적어 주셨어요. 다만 {premise_broken} 그때는 어떻게 하실 것 같나요?",
	"'{point}'라는 문장이 인상적이었습니다. 그 선택은 {premise}을 전제로 하는데, 전제가 무너진 상황이라면 어떤 기준으로 움직이실까요?",
	"{premise_broken} 그래도 {judgment}는 마음을 유지할 수 있을까요? 이유를 들려주세요.",
}

var q2RiskTemplatesSharp = []string{
	"자소서에서 '{risk}'라는 지점이 읽힙니다. 이것이 현장에서 실제 문제로 번지면 누구에게 가장 먼저 피해가 갑니까?",
	"'{risk}' — 본인도 이 부분이 약점인 것을 알고 있었습니까? 알았다면 왜 그대로 두었습니까?",
	"'{risk}'라는 위험 요소를 면접관이 짚기 전에 본인이 먼저 해명해 보십시오.",
}

var q2RiskTemplatesSoft = []string{
	"자소서를 읽으며 '{risk}' 부분이 조금 걱정스러웠습니다. 본인은 이 지점을 어떻게 보완해 오셨나요?",
	"'{risk}'라는 지점이 현장에서 반복될 수도 있을 텐데, 미리 준비해 둔 대응이 있나요?",
	"'{risk}'에 대해 스스로 평가해 본다면 어느 정도 단계라고 생각하세요?",
}

var q2AlternativeTemplatesSharp = []string{
	"'{alt}'라는 선택지를 버리셨습니다. 그 선택이 틀렸다는 것이 지금 증명된다면 무엇이라고 답하겠습니까?",
	"'{alt}'를 택하지 않은 이유를 한 문장으로 정리해 보십시오. 그 기준은 지금도 유효합니까?",
	"당시 '{alt}'를 권한 사람에게 본인의 결정을 어떻게 설득했습니까? 설득하지 못했다면 왜입니까?",
}

var q2AlternativeTemplatesSoft = []string{
	"'{alt}'라는 다른 길도 있었는데 지금의 선택을 하셨네요. 갈림길에서 무엇이 결정적이었나요?",
	"'{alt}'를 선택했다면 지금과 무엇이 달랐을 것 같으세요?",
	"그 결정을 다시 하게 된다면, '{alt}' 쪽으로 기울 가능성도 있을까요?",
}

var q2AbstractTemplatesSharp = []string{
	"'{short_point}'라는 표현을 쓰셨습니다. 비유를 빼고, 실제로 무엇을 했는지 사실만 말해 보십시오.",
	"'{point}' — 듣기 좋은 문장입니다만, 이 문장에서 검증 가능한 사실은 무엇입니까?",
	"'{short_point}'를 숫자나 행동으로 바꿔서 다시 설명해 보십시오.",
}

var q2AbstractTemplatesSoft = []string{
	"'{short_point}'라는 표현이 눈에 띄었어요. 그 비유 뒤에 있었던 실제 장면을 조금 더 구체적으로 들려주실래요?",
	"'{point}'라는 문장을 사실 위주로 다시 풀어 주신다면 어떤 이야기인가요?",
	"'{short_point}'라고 느끼게 된 가장 결정적인 하루를 꼽는다면 언제인가요?",
}

var q2DreamTemplatesSharp = []string{
	"'{point}'라고 쓰셨습니다. 꿈은 {premise}을 전제로 합니다. {premise_broken} 그 꿈은 어떻게 됩니까?",
	"'{point}' — 원하는 마음과 할 수 있는 능력은 다른 문제입니다. 능력 쪽의 근거를 말해 보십시오.",
	"그 꿈이 5년째 이루어지지 않고 있다면, 6년째에도 같은 문장을 쓸 수 있습니까?",
}

var q2DreamTemplatesSoft = []string{
	"'{point}'라는 마음이 잘 전해졌습니다. 다만 {premise_broken} 그때의 본인은 어떤 선택을 할 것 같나요?",
	"그 꿈을 품게 된 가장 처음의 장면이 있다면 들려주세요. 그 장면은 지금도 유효한가요?",
	"꿈이 현실과 부딪힐 때 본인을 붙잡아 줄 구체적인 것이 있다면 무엇인가요?",
}

// -------- Q3: follow-up template families --------

var q3ConditionChange = []string{
	"{premise_broken} 그 상황에서도 같은 판단을 하시겠습니까?",
	"전제가 하나 바뀐다면 — {premise_broken} — 어디까지 양보할 수 있습니까?",
	"조건이 달라져도 유지할 단 하나의 기준을 꼽는다면 무엇입니까?",
}

var q3PriorityConflict = []string{
	"그 가치와 안전 규정이 정면으로 충돌하면 무엇을 먼저 선택하겠습니까?",
	"고객 만족과 팀의 운영 효율이 부딪힌다면 어느 쪽에 서겠습니까?",
	"두 가지를 모두 지킬 수 없는 순간, 포기할 쪽을 정하는 본인의 기준은 무엇입니까?",
}

var q3LimitRecognition = []string{
	"그 방식이 통하지 않는 사람을 만난 적이 있습니까? 그때는 어떻게 했습니까?",
	"본인의 그 강점이 오히려 단점이 되는 상황을 스스로 말해 보십시오.",
	"지금의 방식이 한계에 부딪힌다면 가장 먼저 무엇을 바꾸겠습니까?",
}

var q3Repeatability = []string{
	"같은 상황이 다시 온다면, 운이 아니라 실력으로 같은 결과를 낼 수 있습니까? 무엇이 재현을 보장합니까?",
	"그 성공에서 본인이 통제한 부분과 운이었던 부분을 나눠서 말해 보십시오.",
	"다른 팀, 다른 고객, 다른 환경에서도 같은 결과가 나온다고 보는 근거는 무엇입니까?",
}

var q3DreamCondition = []string{
	"{premise_broken} 그래도 그 꿈을 계속 밀고 가시겠습니까?",
	"꿈을 이루는 데 필요한 조건이 하나 사라진다면 — {premise_broken} — 계획은 어떻게 달라집니까?",
	"그 꿈의 전제 조건이 바뀌어도 흔들리지 않을 이유가 있다면 무엇입니까?",
}

var q3DreamPriority = []string{
	"그 꿈과 현실적인 생계가 충돌한다면 무엇을 먼저 선택하겠습니까?",
	"꿈을 위해 포기해 본 것이 있습니까? 다음에 포기할 수 있는 것은 무엇입니까?",
	"꿈과 가족의 반대가 부딪힌다면 어떻게 정리하시겠습니까?",
}

var q3DreamLimit = []string{
	"그 꿈이 본인에게 맞지 않는다는 신호를 받는다면 무엇을 보고 판단하겠습니까?",
	"꿈을 내려놓아야 하는 순간이 온다면, 그 기준선을 미리 정해 두었습니까?",
	"간절함만으로 채워지지 않는 부분이 있다면 무엇이라고 생각합니까?",
}

var q3DreamRepeat = []string{
	"그 다짐을 오늘까지 며칠째 지키고 있습니까? 증명할 수 있는 행동이 있습니까?",
	"결심이 흐려졌던 시기가 있었다면 무엇으로 다시 돌아왔습니까?",
	"입사 후 3년 뒤에도 같은 다짐을 말할 수 있게 하는 장치가 본인에게 있습니까?",
}

// -------- Q4: values-fit templates --------
// Placeholders: {airline} {kw1} {kw2} {desc}

var valueTemplatesFSCSharp = []string{
	"{airline}는 {kw1}과 {kw2}를 말합니다. 본인의 경험 중 이 두 가지를 동시에 증명하는 것을 하나만 대십시오. 없다면 없다고 말하십시오.",
	"{airline}는 '{desc}'라고 말합니다. 이 문장과 본인의 실제 모습 사이의 거리를 스스로 평가해 보십시오. {kw1}부터 말해 보십시오.",
	"{airline}의 {kw1}라는 가치가 현장에서 비용과 충돌하면 어떻게 판단하겠습니까?",
}

var valueTemplatesFSCSoft = []string{
	"{airline}가 중요하게 여기는 {kw1}과 {kw2} 중 본인과 더 닮은 가치는 무엇인가요? 그렇게 생각한 계기를 들려주세요.",
	"{airline}는 '{desc}'라는 방향을 갖고 있습니다. 여기에 본인의 어떤 경험이 보탬이 될 수 있을까요?",
	"{airline}의 인재상 중 {kw1}를 본인의 일상에서 실천해 본 적이 있다면 말씀해 주세요.",
}

var valueTemplatesLCCSharp = []string{
	"{airline}는 {kw1}과 {kw2}로 움직이는 회사입니다. 본인이 이 속도에 맞는 사람이라는 증거를 대십시오.",
	"{airline}는 '{desc}'라고 말합니다. 말은 좋습니다. 본인의 어떤 행동이 {kw1}에 해당합니까? 구체적인 장면으로 답하십시오.",
	"{kw1}이 부족한 동료와 한 팀이 된다면 {airline}의 현장에서 어떻게 하겠습니까?",
}

var valueTemplatesLCCSoft = []string{
	"{airline}가 추구하는 {kw1}과 {kw2}, 본인에게 더 자연스러운 쪽은 어느 것인가요?",
	"{airline}가 말하는 '{desc}', 이 방향과 맞닿아 있는 본인의 경험이 있다면 가볍게 들려주세요.",
	"{airline}에서 일하게 된다면 {kw1}를 어떤 모습으로 보여 주고 싶으세요?",
}

// Merger-group carriers get integration-themed questions on every third version.
var integratedLCCTemplates = []string{
	"통합 항공사 출범으로 조직 문화가 섞이게 됩니다. 서로 다른 방식이 충돌하는 팀에서 본인은 어떤 역할을 하겠습니까?",
	"통합 과정에서 기존 구성원과 새 구성원 사이에 온도 차가 있을 수 있습니다. 본인이 먼저 할 수 있는 일은 무엇입니까?",
	"두 회사의 서비스 기준이 다를 때, 현장에서 본인은 어느 기준을 따르고 그 이유를 고객에게 어떻게 설명하겠습니까?",
}

// -------- fixed fallbacks --------

// Generic always-safe questions used when no attack point survives filtering.
var defaultDeepQuestions = []string{
	"자소서에 적어주신 경험 중 가장 기억에 남는 것은 무엇인가요?",
	"본인이 생각하는 가장 큰 강점은 무엇인가요? 구체적으로 말씀해 주세요.",
	"그 경험을 통해 얻은 가장 큰 교훈이 있다면 무엇인가요?",
	"자소서 내용 중 가장 자신 있게 말씀하실 수 있는 부분은 어디인가요?",
}

const defaultQ1 = "승무원으로서 안전과 서비스가 동시에 요구되는 상황에서 무엇을 먼저 선택하고 어떤 행동으로 마무리하겠습니까?"

const defaultQ5 = "압박이 큰 상황에서 설명을 짧게 정리해야 할 때, 어떤 순서로 말하고 어떤 행동부터 실행하겠습니까?"

// q1Pool assembles the Q1 candidate pool for an airline type and tone.
func q1Pool(atype domain.AirlineType, soft bool) []string {
	var common, typed []string
	if soft {
		common = q1PoolCommonSoft
	} else {
		common = q1PoolCommonSharp
	}
	switch atype {
	case domain.AirlineFSC:
		if soft {
			typed = q1PoolFSCSoft
		} else {
			typed = q1PoolFSCSharp
		}
	case domain.AirlineHSC:
		if soft {
			typed = q1PoolHSCSoft
		} else {
			typed = q1PoolHSCSharp
		}
	default:
		if soft {
			typed = q1PoolLCCSoft
		} else {
			typed = q1PoolLCCSharp
		}
	}
	return append(append([]string{}, common...), typed...)
}

// q5Pool assembles the Q5 candidate pool for an airline type and tone.
func q5Pool(atype domain.AirlineType, soft bool) []string {
	var common, typed []string
	if soft {
		common = q5PoolCommonSoft
	} else {
		common = q5PoolCommonSharp
	}
	switch atype {
	case domain.AirlineFSC:
		if soft {
			typed = q5PoolFSCSoft
		} else {
			typed = q5PoolFSCSharp
		}
	case domain.AirlineHSC:
		typed = q5PoolHSC
	default:
		if soft {
			typed = q5PoolLCCSoft
		} else {
			typed = q5PoolLCCSharp
		}
	}
	return append(append([]string{}, common...), typed...)
}

// formatTemplate substitutes {name} placeholders. A placeholder with no value
// supplied is a formatting failure; callers degrade to a generic question
// rather than emit a partially formatted string.
func formatTemplate(tpl string, vars map[string]string) (string, error) {
	out := tpl
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	if i := strings.IndexByte(out, '{'); i >= 0 && strings.IndexByte(out[i:], '}') > 0 {
		return "", fmt.Errorf("%w: unresolved placeholder in template", domain.ErrInternal)
	}
	return out, nil
}
