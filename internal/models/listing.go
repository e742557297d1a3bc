package models

// Listing is the normalized job entry assembled from a source.
// Company and role are required; everything else may be empty.
type Listing struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Location  string `json:"location,omitempty"`
	ApplyLink string `json:"apply_link,omitempty"`
	Age       string `json:"age,omitempty"`
	JobType   string `json:"job_type,omitempty"`
	Source    string `json:"source,omitempty"`
}
