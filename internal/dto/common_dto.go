package dto

// WebResponse is the uniform success envelope.
type WebResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Errors carries either a
// plain message or a list of field violations.
type ErrorResponse struct {
	Errors interface{} `json:"errors"`
}

// Paging describes a filtered result set.
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
