package domain

// Contact is an address-book entry. A firstname+lastname+mobile combination
// is treated as unique among active contacts.
type Contact struct {
	Base
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Gender      string `json:"gender,omitempty"`
	Mobile      string `json:"mobile"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	Designation string `json:"designation,omitempty"`
}
