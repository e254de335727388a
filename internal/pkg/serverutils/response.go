package serverutils

// ErrorBody is the JSON shape of every error response.
func ErrorBody(service string, e *AppError) map[string]interface{} {
	body := make(map[string]interface{}, len(e.Fields)+4)
	for k, v := range e.Fields {
		body[k] = v
	}
	body["error"] = e.Message
	body["service"] = service
	if e.Details != "" {
		body["details"] = e.Details
		if e.Code >= 500 {
			body["message"] = e.Details
		}
	}
	return body
}
