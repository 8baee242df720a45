// Package merger gives partners a shared score.
package merger

import "github.com/nonsonwune/canvas_grades/models"

// ActionKind says what Merge did for one student that declared a partner.
type ActionKind string

const (
	Filled      ActionKind = "filled"  // partner had no score and got the student's
	Minimum     ActionKind = "minimum" // both submitted, both got the lower score
	Agreed      ActionKind = "agreed"  // both submitted the same score
	SelfPartner ActionKind = "self"    // student named themselves, left alone
)

type Action struct {
	Kind    ActionKind
	Student string
	Partner string

	// Score is the partner's score after this step.
	Score float64

	// Reciprocal is false when the partner did not name the student back.
	Reciprocal bool
}

type Report struct {
	Actions []Action
}

func (r *Report) Count(kind ActionKind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Merge returns scores closed under partners. Students are visited in the
// order of the original record, every one of them, including the second
// member of a pair.
//
// A partner who did not submit is added with the student's score. When
// several students name the same non-submitting partner, that partner keeps
// the lowest of the filled scores; the students themselves are not touched.
//
// A partner who did submit is set, along with the student, to the lower of
// the student's original score and the partner's current score.
//
// Declarations are applied one pair at a time. Chains such as a->b, b->c are
// not resolved and their result depends on record order.
//
// With no partners the input record itself is returned.
func Merge(scores *models.ScoreRecord, partners *models.PartnerRelation) (*models.ScoreRecord, *Report) {
	report := &Report{}
	if partners.Len() == 0 {
		return scores, report
	}

	merged := scores.Clone()
	for _, student := range scores.Students() {
		partner, ok := partners.Get(student)
		if !ok {
			continue
		}
		studentScore, _ := scores.Get(student)

		action := Action{
			Student:    student,
			Partner:    partner,
			Reciprocal: partners.Reciprocal(student, partner),
		}

		switch {
		case partner == student:
			action.Kind = SelfPartner
			action.Score, _ = merged.Get(student)
		case !scores.Has(partner):
			fill := studentScore
			if filled, ok := merged.Get(partner); ok {
				fill = min(fill, filled)
			}
			merged.Set(partner, fill)
			action.Kind = Filled
			action.Score = fill
		default:
			partnerScore, _ := merged.Get(partner)
			m := min(studentScore, partnerScore)
			merged.Set(student, m)
			merged.Set(partner, m)
			action.Kind = Minimum
			if studentScore == partnerScore {
				action.Kind = Agreed
			}
			action.Score = m
		}
		report.Actions = append(report.Actions, action)
	}

	return merged, report
}
