package models

// PartnerRelation maps a student to the partner they declared. Iteration
// follows the order students were first seen.
type PartnerRelation struct {
	order   []string
	partner map[string]string
}

func NewPartnerRelation() *PartnerRelation {
	return &PartnerRelation{
		partner: make(map[string]string),
	}
}

// Set records student -> partner. A student seen again keeps its original
// position and takes the new partner.
func (r *PartnerRelation) Set(student, partner string) {
	if _, ok := r.partner[student]; !ok {
		r.order = append(r.order, student)
	}
	r.partner[student] = partner
}

func (r *PartnerRelation) Get(student string) (string, bool) {
	if r == nil {
		return "", false
	}
	p, ok := r.partner[student]
	return p, ok
}

func (r *PartnerRelation) Has(student string) bool {
	_, ok := r.Get(student)
	return ok
}

func (r *PartnerRelation) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Students returns the declaring students in insertion order.
func (r *PartnerRelation) Students() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Asymmetric returns every declaration a -> b where b either declared no one
// or declared someone other than a.
func (r *PartnerRelation) Asymmetric() []Pair {
	var pairs []Pair
	for _, student := range r.Students() {
		partner := r.partner[student]
		back, ok := r.partner[partner]
		if !ok || back != student {
			pairs = append(pairs, Pair{Student: student, Partner: partner})
		}
	}
	return pairs
}

// Reciprocal reports whether a and b name each other.
func (r *PartnerRelation) Reciprocal(a, b string) bool {
	pa, okA := r.Get(a)
	pb, okB := r.Get(b)
	return okA && okB && pa == b && pb == a
}
