package domain

// Trend is an educational practice a teacher can adopt.
type Trend struct {
	ID                       int      `json:"id"`
	Title                    string   `json:"title"`
	Category                 string   `json:"category"`
	AdoptionRate             int      `json:"adoption_rate"`
	ImpactScore              float64  `json:"impact_score"`
	Description              string   `json:"description"`
	ImplementationDifficulty string   `json:"implementation_difficulty"`
	ResourcesRequired        []string `json:"resources_required"`
	Adopted                  bool     `json:"adopted"`
}

// clone returns a copy that shares no slices with t.
func (t Trend) clone() Trend {
	t.ResourcesRequired = append([]string(nil), t.ResourcesRequired...)
	return t
}
