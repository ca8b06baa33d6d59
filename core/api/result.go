package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Result is the uniform shape handed to presentation code.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	// Message is the body's "message"; non-string values are carried as JSON text.
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  int             `json:"status"`
}

// FormatResponse normalizes a successful response. Data is the body's "data"
// field when it is present and truthy, otherwise the whole body. Non-JSON
// bodies (CSV exports) are carried as a JSON string.
func FormatResponse(resp *Response) Result {
	res := Result{Success: true, Status: resp.Status}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return res
	}
	if !json.Valid(body) {
		raw, _ := json.Marshal(string(resp.Body))
		res.Data = raw
		return res
	}

	res.Data = json.RawMessage(body)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return res
	}
	if data, ok := envelope["data"]; ok && truthy(data) {
		res.Data = data
	}
	if msg, ok := envelope["message"]; ok {
		res.Message = messageText(msg)
	}
	return res
}

// messageText returns a string message as is and any other non-null value as its JSON text.
func messageText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

// HandleError normalizes a failed call:
//   - *HTTPError: message from the body, HTTP status
//   - *NetworkError: fixed network message, status 0
//   - anything else: the error text, status 0
func HandleError(err error) Result {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return Result{Error: httpErr.Message, Status: httpErr.Status}
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return Result{Error: networkErrorMessage, Status: 0}
	}
	if err == nil || err.Error() == "" {
		return Result{Error: unknownErrorMessage, Status: 0}
	}
	return Result{Error: err.Error(), Status: 0}
}

// Normalize folds a call's outcome into a Result.
func Normalize(resp *Response, err error) Result {
	if err != nil || resp == nil {
		return HandleError(err)
	}
	return FormatResponse(resp)
}

// truthy mirrors loose JSON truthiness: null, false, 0 and "" are falsy.
func truthy(raw json.RawMessage) bool {
	switch s := string(bytes.TrimSpace(raw)); s {
	case "null", "false", `""`, "":
		return false
	default:
		var n float64
		if json.Unmarshal(raw, &n) == nil {
			return n != 0
		}
		return true
	}
}
