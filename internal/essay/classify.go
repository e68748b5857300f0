package essay

import (
	"regexp"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// Classification looks only at what an evaluator would grade the item on,
// not at surface verbs. Motivation markers outrank value markers outrank
// experience markers: a 지원동기 prompt mentioning 고객 is still a motivation
// item.
var (
	motivationRe = regexp.MustCompile(
		`(지원\s*동기|왜\s*지원|왜\s*승무원|승무원\s*지원|직무\s*이해|입사\s*후\s*포부|장기|지속|커리어|꿈|목표|정체성|가치관|나를\s*설명|어떤\s*사람|어떤\s*지원자)`)
	valueRe = regexp.MustCompile(
		`(가치|태도|고객|서비스|안전|규정|원칙|윤리|책임감|협업|소통|팀워크|배려|정직|성실|리더십|갈등|민원|클레임|CS|불만|우선순위|트레이드오프)`)
	experienceRe = regexp.MustCompile(
		`(경험|사례|에피소드|프로젝트|활동|대회|알바|근무|수업|동아리|문제\s*해결|성과|개선|갈등\s*해결|위기\s*대응|실패|성공)`)
)

// ClassifyPrompt routes an essay prompt to its question type. Unclassifiable
// prompts default to experience, the broadest follow-up space.
func ClassifyPrompt(prompt string) domain.QuestionType {
	p := textkor.NormalizeSpace(prompt)
	if p == "" {
		return domain.QuestionExperience
	}
	switch {
	case motivationRe.MatchString(p):
		return domain.QuestionMotivation
	case valueRe.MatchString(p):
		return domain.QuestionValueFit
	default:
		return domain.QuestionExperience
	}
}
