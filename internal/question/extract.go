package question

import (
	"regexp"
	"strings"

	"github.com/flyready/question-engine/pkg/textkor"
)

// Heuristic extraction of the entities templates are parameterized with: the
// hidden premise behind an idealized claim, the counterfactual that breaks it,
// the judgment the applicant committed to, and the addressee of the scene.

type sentenceTopic string

const (
	topicCustomer sentenceTopic = "customer"
	topicTeam     sentenceTopic = "team"
	topicSenior   sentenceTopic = "senior"
	topicSafety   sentenceTopic = "safety"
	topicGrowth   sentenceTopic = "growth"
	topicGeneral  sentenceTopic = "general"
)

func containsAny(s string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// sentenceTopicOf routes a fragment to its subject area so premise selection
// does not attach, say, a cold-customer counterfactual to a teamwork sentence.
func sentenceTopicOf(point string) sentenceTopic {
	p := strings.ToLower(point)
	switch {
	case containsAny(p, []string{"고객", "손님", "승객", "탑승객", "서비스"}):
		return topicCustomer
	case containsAny(p, []string{"팀", "동료", "협력", "협동", "함께", "우리"}):
		return topicTeam
	case containsAny(p, []string{"상사", "사무장", "선배", "기장"}):
		return topicSenior
	case containsAny(p, []string{"안전", "규정", "절차", "매뉴얼"}):
		return topicSafety
	case containsAny(p, []string{"성장", "발전", "노력", "도전"}):
		return topicGrowth
	}
	return topicGeneral
}

type premiseRule struct {
	keywords      []string
	premise       string
	premiseBroken string
	topics        []sentenceTopic // nil means any topic
}

// Ordered premise table: dream rules first, then concrete situations, then
// generic keywords. Topic gating keeps the counterfactual on-subject.
var premiseRules = []premiseRule{
	{[]string{"되고 싶", "싶다는 꿈", "꿈을 품", "꿈을 갖"}, "그 꿈을 이룰 기회가 있다는 것", "현실적인 제약으로 그 꿈을 이루기 어려운 상황이라면", nil},
	{[]string{"꿈", "목표", "비전"}, "그 꿈을 향해 나아갈 수 있다는 것", "현실의 벽에 부딪혀 꿈이 흔들리는 상황이라면", nil},

	{[]string{"함께", "같이", "협력", "협동", "공동체"}, "주변 사람들이 협조적이라는 것", "주변 사람들이 비협조적인 상황이라면", []sentenceTopic{topicTeam, topicGeneral}},
	{[]string{"극복", "이겨", "해결", "넘"}, "문제가 해결될 수 있다는 것", "아무리 노력해도 해결되지 않는 상황이라면", nil},
	{[]string{"소통", "대화", "커뮤니케이션", "이야기"}, "상대방이 대화에 응한다는 것", "상대방이 대화 자체를 거부하는 상황이라면", nil},
	{[]string{"팀워크", "팀", "우리"}, "팀원들이 같은 방향을 보고 있다는 것", "팀원들 간 목표가 충돌하는 상황이라면", []sentenceTopic{topicTeam, topicGeneral}},
	{[]string{"고객", "손님", "승객", "탑승객"}, "고객이 합리적이라는 것", "고객이 무리한 요구를 계속하는 상황이라면", []sentenceTopic{topicCustomer}},
	{[]string{"서비스"}, "서비스가 환영받는다는 것", "서비스에 대해 무관심하거나 불만족하는 상황이라면", []sentenceTopic{topicCustomer, topicGeneral}},
	{[]string{"신뢰", "믿음", "믿"}, "서로 신뢰할 수 있다는 것", "상대방이 약속을 어기거나 배신하는 상황이라면", nil},
	{[]string{"도전", "새로운", "시도"}, "새로운 시도가 환영받는다는 것", "변화를 거부하는 보수적인 환경이라면", nil},
	{[]string{"의지", "지지", "응원", "도움"}, "누군가 옆에서 도와준다는 것", "아무도 도와주지 않고 혼자인 상황이라면", nil},
	{[]string{"외로", "타지", "낯선", "혼자"}, "함께할 사람이 있다는 것", "완전히 혼자이고 의지할 사람이 없는 상황이라면", nil},
	{[]string{"첫", "처음", "시작"}, "첫 경험이 긍정적이라는 것", "첫 경험이 매우 부정적인 상황이라면", nil},

	{[]string{"웃", "즐거", "긍정", "밝"}, "분위기가 좋다는 것", "분위기가 험악하거나 갈등이 심한 상황이라면", nil},
	{[]string{"미소", "친절", "배려", "따뜻", "반겨", "맞이"}, "그런 태도가 환영받는다는 것", "상대방이 그런 태도에 냉담하거나 무관심한 상황이라면", []sentenceTopic{topicGeneral, topicTeam, topicGrowth}},
	{[]string{"미소", "친절", "배려", "따뜻", "반겨", "맞이"}, "고객이 그런 서비스에 만족한다는 것", "고객이 그런 서비스에 냉담하거나 무관심한 상황이라면", []sentenceTopic{topicCustomer}},
	{[]string{"성장", "발전", "성공", "이루"}, "노력하면 성과가 나온다는 것", "노력해도 성과가 전혀 나오지 않는 상황이라면", nil},
	{[]string{"최선", "노력", "열심"}, "노력이 인정받는다는 것", "아무리 열심히 해도 인정받지 못하는 상황이라면", nil},
	{[]string{"안정", "평화", "안전"}, "환경이 안정적이라는 것", "환경이 불안정하고 예측 불가능한 상황이라면", []sentenceTopic{topicSafety, topicGeneral}},
	{[]string{"감동", "감사", "고마"}, "상대방도 감사함을 느낀다는 것", "내 노력이 당연하게 여겨지는 상황이라면", nil},
	{[]string{"기억", "잊지", "마음"}, "그 기억이 힘이 된다는 것", "그 기억이 오히려 부담이 되는 상황이라면", nil},
	{[]string{"차별", "공정", "평등", "모두를"}, "모든 사람을 동등하게 대할 수 있다는 것", "현실적으로 차별 없이 대하기 어려운 상황이라면", nil},
}

// extractPremise returns the hidden premise behind point and the
// counterfactual framing that breaks it.
func extractPremise(point string) (premise, premiseBroken string) {
	topic := sentenceTopicOf(point)
	p := strings.ToLower(point)
	for _, rule := range premiseRules {
		if rule.topics != nil {
			allowed := false
			for _, t := range rule.topics {
				if t == topic {
					allowed = true
					break
				}
			}
			if !allowed {
				continue
			}
		}
		if containsAny(p, rule.keywords) {
			return rule.premise, rule.premiseBroken
		}
	}
	if strings.Contains(p, "수 있") || strings.Contains(p, "할 수") {
		return "그것이 가능하다는 것", "그것이 불가능한 상황이라면"
	}
	if strings.Contains(p, "되었") || strings.Contains(p, "됐") {
		return "긍정적인 결과가 나온다는 것", "결과가 부정적인 상황이라면"
	}
	short := point
	if runeLen(short) > 20 {
		short = string([]rune(short)[:20]) + "..."
	}
	return "'" + short + "'가 가능하다는 것", "그것이 불가능한 상황이라면"
}

type judgmentRule struct {
	keywords []string
	judgment string
}

var judgmentRules = []judgmentRule{
	{[]string{"함께", "같이", "협력"}, "함께 해결하겠다"},
	{[]string{"극복", "이겨", "해결"}, "극복하겠다"},
	{[]string{"소통", "대화"}, "소통하겠다"},
	{[]string{"의지", "지지", "도움"}, "서로 의지하겠다"},
	{[]string{"성장", "발전", "성공"}, "성장하겠다"},
	{[]string{"노력", "열심", "최선"}, "노력하겠다"},
	{[]string{"도전", "시도"}, "도전하겠다"},
	{[]string{"배려", "친절", "미소"}, "배려하겠다"},
	{[]string{"믿음", "신뢰"}, "신뢰하겠다"},
	{[]string{"포기", "버티"}, "포기하지 않겠다"},
	{[]string{"꿈", "목표"}, "꿈을 이루겠다"},
	{[]string{"감사", "감동"}, "감사하겠다"},
}

var judgmentVerbRe = regexp.MustCompile(`([가-힣]+(?:했|겠|하겠|할 수 있))`)

// extractJudgment paraphrases the commitment the applicant makes in point.
func extractJudgment(point string) string {
	p := strings.ToLower(point)
	for _, rule := range judgmentRules {
		if containsAny(p, rule.keywords) {
			return rule.judgment
		}
	}
	if m := judgmentVerbRe.FindStringSubmatch(point); m != nil {
		return m[1]
	}
	return "같은 선택을 하겠다"
}

// extractAddressee infers who the applicant was dealing with, falling back to
// a neutral counterpart when nothing in the text says.
func extractAddressee(point, rawAnswer string) string {
	combined := strings.ToLower(point + " " + rawAnswer)
	switch {
	case containsAny(combined, []string{"고객", "손님", "승객", "탑승객", "여행객"}):
		return "고객"
	case containsAny(combined, []string{"동료", "팀원", "선배", "후배", "크루", "승무원"}):
		return "동료"
	case containsAny(combined, []string{"상사", "팀장", "사무장", "기장"}):
		return "상사"
	case containsAny(combined, []string{"가족", "부모", "친구"}):
		return "주변 사람들"
	}
	return "상대방"
}

var (
	quotedRe     = regexp.MustCompile(`['"]([^'"]{10,40})['"]`)
	verbPhraseRe = regexp.MustCompile(`([가-힣]{2,8}(?:하는|하다|되는|되다|되었|였다|했다|싶다|싶은))`)
)

// extractShortPoint pulls a compact quotable phrase out of a long figurative
// sentence so abstract templates do not quote the whole blob back.
func extractShortPoint(point string) string {
	if m := quotedRe.FindStringSubmatch(point); m != nil {
		return m[1]
	}
	if m := verbPhraseRe.FindStringSubmatch(point); m != nil {
		if n := runeLen(m[1]); n >= 6 && n <= 20 {
			return m[1]
		}
	}
	if runeLen(point) > 35 {
		return textkor.TrimNoEllipsis(point, 24)
	}
	return point
}
