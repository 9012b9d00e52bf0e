package dto

// ErrorResponse is the JSON body returned for every failed request.
//
// Feed failures only set Message. Middleware-level failures (panics,
// rate limiting) may carry the underlying cause in ErrorDetails.
type ErrorResponse struct {
	Message      string `json:"error" example:"No data received from MISO API"`
	ErrorDetails string `json:"details,omitempty"`
}

// Error implements the error interface so the response can travel through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text into ErrorDetails when present.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
