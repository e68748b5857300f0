package question

import (
	"strings"

	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/pkg/textkor"
)

// ValueProfile is the airline identity a values-fit question is rendered
// against. The airline catalog supplies it; the renderer never looks the
// airline up itself.
type ValueProfile struct {
	DisplayName string
	Type        domain.AirlineType
	Keywords    []string
	Desc        string
	Integrated  bool // merger-group carrier (진에어, 에어부산, 에어서울)
}

// RenderQ1 picks the common opener for the version. Pool entries are used
// verbatim: curated text beats any substitution.
func RenderQ1(base uint64, version int, atype domain.AirlineType) string {
	pool := q1Pool(atype, isSoft(version))
	if len(pool) == 0 {
		return defaultQ1
	}
	idx := int((base + uint64(version)*multQ1 + saltQ1) % uint64(len(pool)))
	return textkor.NormalizeSpace(pool[idx])
}

// fscSofteners are filler openers stripped for full-service carriers, whose
// register is short and reserved.
var fscSofteners = []string{"혹시 ", "아마 ", "그런데요, ", "그러면요, ", "그럼요, "}

func applyAirlineTone(q string, atype domain.AirlineType) string {
	if atype == domain.AirlineFSC {
		for _, s := range fscSofteners {
			q = strings.ReplaceAll(q, s, "")
		}
	}
	return textkor.NormalizeSpace(q)
}

func defaultDeepQuestion(base uint64, version int) string {
	return defaultDeepQuestions[(base+uint64(version))%uint64(len(defaultDeepQuestions))]
}

// RenderQ2 builds the deep question around a resolved attack point. A
// formatting failure or empty attack point degrades to a generic question;
// the slot never comes back empty.
func RenderQ2(base uint64, version int, ap AttackPoint, rawAnswer string, atype domain.AirlineType) string {
	if ap.Point == "" || !IsCompleteSentence(ap.Point) {
		return defaultDeepQuestion(base, version)
	}
	soft := isSoft(version)

	var tpls []string
	vars := map[string]string{}
	switch ap.Category {
	case CategoryRisk:
		if soft {
			tpls = q2RiskTemplatesSoft
		} else {
			tpls = q2RiskTemplatesSharp
		}
		vars["risk"] = ap.Point
	case CategoryAlternative:
		if soft {
			tpls = q2AlternativeTemplatesSoft
		} else {
			tpls = q2AlternativeTemplatesSharp
		}
		vars["alt"] = ap.Point
	default: // idealized
		premise, premiseBroken := extractPremise(ap.Point)
		switch {
		case IsDreamSentence(ap.Point):
			if soft {
				tpls = q2DreamTemplatesSoft
			} else {
				tpls = q2DreamTemplatesSharp
			}
			vars["point"] = ap.Point
			vars["premise"] = premise
			vars["premise_broken"] = premiseBroken
		case IsAbstractSentence(ap.Point):
			if soft {
				tpls = q2AbstractTemplatesSoft
			} else {
				tpls = q2AbstractTemplatesSharp
			}
			vars["point"] = ap.Point
			vars["short_point"] = extractShortPoint(ap.Point)
		default:
			if soft {
				tpls = q2AttackTemplatesSoft
			} else {
				tpls = q2AttackTemplatesSharp
			}
			vars["point"] = ap.Point
			vars["premise"] = premise
			vars["premise_broken"] = premiseBroken
			vars["judgment"] = extractJudgment(ap.Point)
			vars["who"] = extractAddressee(ap.Point, rawAnswer)
		}
	}

	idx := PickIndex(base, version, multTemplate, 0, len(tpls))
	q, err := formatTemplate(tpls[idx], vars)
	if err != nil {
		return defaultDeepQuestion(base, version)
	}
	q = textkor.SanitizeQuestion(textkor.FixParticles(q))
	return applyAirlineTone(q, atype)
}

// RenderQ3 builds the follow-up: one of four probing families, rotated by
// version, staying on the subject Q2 opened without presuming its answer.
func RenderQ3(base uint64, version int, ap AttackPoint, atype domain.AirlineType) string {
	families := [4][]string{q3ConditionChange, q3PriorityConflict, q3LimitRecognition, q3Repeatability}
	if IsDreamSentence(ap.Point) {
		families = [4][]string{q3DreamCondition, q3DreamPriority, q3DreamLimit, q3DreamRepeat}
	}
	family := int((base + uint64(version)) % 4)
	tpls := families[family]
	idx := PickIndex(base, version, q3FamilyMults[family], 0, len(tpls))

	_, premiseBroken := extractPremise(ap.Point)
	q, err := formatTemplate(tpls[idx], map[string]string{"premise_broken": premiseBroken})
	if err != nil {
		return defaultDeepQuestion(base, version)
	}
	q = textkor.SanitizeQuestion(textkor.FixParticles(q))
	return applyAirlineTone(q, atype)
}

// RenderQ4 builds the values-fit question. Merger-group carriers get an
// integration-themed question on every third version; otherwise a value
// template is formatted with two distinct keywords from the airline's list.
// Returns the question plus the kw1|kw2 metadata (empty on the merger path).
func RenderQ4(base uint64, version int, p ValueProfile) (q, kw1, kw2, desc string) {
	if p.Integrated && version%3 == 0 {
		idx := (base + uint64(version)) % uint64(len(integratedLCCTemplates))
		return textkor.SanitizeQuestion(integratedLCCTemplates[idx]), "", "", ""
	}

	soft := isSoft(version)
	var tpls []string
	if p.Type == domain.AirlineFSC {
		if soft {
			tpls = valueTemplatesFSCSoft
		} else {
			tpls = valueTemplatesFSCSharp
		}
	} else {
		// HSC shares the LCC register: long-haul focus on a low-cost structure.
		if soft {
			tpls = valueTemplatesLCCSoft
		} else {
			tpls = valueTemplatesLCCSharp
		}
	}

	kw := p.Keywords
	if len(kw) == 0 {
		kw = []string{"서비스 마인드", "팀워크"}
	}
	kw1 = kw[(base+uint64(version))%uint64(len(kw))]
	kw2 = kw[(base+uint64(version)*3+1)%uint64(len(kw))]
	if kw2 == kw1 && len(kw) > 1 {
		kw2 = kw[(base+uint64(version)*3+2)%uint64(len(kw))]
	}
	desc = textkor.AutoFixParticles(textkor.SanityEndings(textkor.StripEllipsis(p.Desc)))

	idx := PickIndex(base, version, multAny, saltQ4, len(tpls))
	out, err := formatTemplate(tpls[idx], map[string]string{
		"airline": p.DisplayName,
		"kw1":     kw1,
		"kw2":     kw2,
		"desc":    desc,
	})
	if err != nil {
		return textkor.SanitizeQuestion(defaultDeepQuestion(base, version)), kw1, kw2, desc
	}
	return textkor.SanitizeQuestion(textkor.FixParticles(out)), kw1, kw2, desc
}

// RenderQ5 picks the surprise closer, skipping forward past any pool entry
// that reads like an experience prompt. Pool text is used verbatim.
func RenderQ5(base uint64, version int, atype domain.AirlineType) string {
	pool := q5Pool(atype, isSoft(version))
	if len(pool) == 0 {
		return defaultQ5
	}
	idx := PickIndex(base, version, multAny, saltQ5, len(pool))
	q := pool[idx]
	if containsAny(q, q5ForbiddenWords) {
		for off := 1; off <= len(pool); off++ {
			alt := pool[(idx+off)%len(pool)]
			if !containsAny(alt, q5ForbiddenWords) {
				q = alt
				break
			}
		}
	}
	return textkor.NormalizeSpace(q)
}
