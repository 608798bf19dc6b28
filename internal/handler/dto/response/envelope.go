package response

// Envelope wraps every successful cleanup response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
