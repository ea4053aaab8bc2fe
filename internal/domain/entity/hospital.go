package entity

// Hospital is a facility doctors declare slots at. A hospital cannot be
// removed while any department still references its id.
type Hospital struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Department belongs to exactly one hospital. The (name, hospitalId) pair
// is unique, case-insensitive on name; the same name may repeat across
// different hospitals.
type Department struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HospitalID string `json:"hospitalId"`
}
