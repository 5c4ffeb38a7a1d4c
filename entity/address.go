package entity

// Address is embedded wherever a street address is stored (user profile,
// restaurant location, order delivery snapshot).
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Complete reports whether every field is filled in.
func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != ""
}
