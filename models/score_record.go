package models

// ScoreRecord maps a student to a numeric score, preserving the order in
// which students were first added.
type ScoreRecord struct {
	order []string
	score map[string]float64
}

func NewScoreRecord() *ScoreRecord {
	return &ScoreRecord{
		score: make(map[string]float64),
	}
}

// Set overwrites the score of an existing student in place or appends a new
// one at the end.
func (s *ScoreRecord) Set(student string, score float64) {
	if _, ok := s.score[student]; !ok {
		s.order = append(s.order, student)
	}
	s.score[student] = score
}

func (s *ScoreRecord) Get(student string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.score[student]
	return v, ok
}

func (s *ScoreRecord) Has(student string) bool {
	_, ok := s.Get(student)
	return ok
}

func (s *ScoreRecord) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Students returns a copy of the student ids in record order.
func (s *ScoreRecord) Students() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *ScoreRecord) Clone() *ScoreRecord {
	c := NewScoreRecord()
	for _, student := range s.Students() {
		c.Set(student, s.score[student])
	}
	return c
}

// Equal reports whether both records hold the same students, in the same
// order, with the same scores.
func (s *ScoreRecord) Equal(other *ScoreRecord) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, student := range s.Students() {
		if other.order[i] != student || other.score[student] != s.score[student] {
			return false
		}
	}
	return true
}
