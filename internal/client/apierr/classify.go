package apierr

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// FromResponse classifies a non-2xx response. body may be empty or non-JSON.
func FromResponse(status int, header http.Header, body []byte) *Error {
	parsed := parseBody(body)

	e := &Error{
		Status: status,
		Code:   parsed.code,
	}

	switch status {
	case http.StatusBadRequest:
		e.Kind = KindValidation
		e.Message = orDefault(parsed.message, MsgValidation)
		e.Details = parsed.details
	case http.StatusUnauthorized:
		e.Kind = KindAuthentication
		e.Message = orDefault(parsed.message, MsgAuthentication)
	case http.StatusForbidden:
		e.Kind = KindAuthorization
		e.Message = orDefault(parsed.message, MsgAuthorization)
	case http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = orDefault(parsed.message, MsgNotFound)
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.Message = orDefault(parsed.message, MsgRateLimited)
		e.RetryAfter = retryAfter(header)
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.Kind = KindServer
		e.Message = orDefault(parsed.message, MsgServer)
	default:
		e.Kind = KindGeneric
		e.Message = orDefault(parsed.message, MsgGeneric)
	}

	return e
}

type errorBody struct {
	message string
	code    string
	details map[string]string
}

func parseBody(body []byte) errorBody {
	var out errorBody

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return out
	}

	for _, key := range []string{"message", "msg"} {
		if s, ok := asString(fields[key]); ok && s != "" {
			out.message = s
			break
		}
	}
	if out.message == "" {
		out.message = errorFieldMessage(fields["error"])
	}
	if out.message == "" {
		if s, ok := asString(fields["detail"]); ok {
			out.message = s
		}
	}

	if raw, ok := fields["code"]; ok {
		if s, ok := asString(raw); ok {
			out.code = s
		} else {
			var n json.Number
			if json.Unmarshal(raw, &n) == nil {
				out.code = n.String()
			}
		}
	}

	for _, key := range []string{"errors", "details", "detail"} {
		if d := fieldDetails(fields[key]); len(d) > 0 {
			out.details = d
			break
		}
	}

	return out
}

// errorFieldMessage accepts both {"error": "msg"} and {"error": {"message": "msg"}}.
func errorFieldMessage(raw json.RawMessage) string {
	if s, ok := asString(raw); ok {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil {
		return nested.Message
	}
	return ""
}

func fieldDetails(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) == nil {
		out := make(map[string]string, len(obj))
		for field, v := range obj {
			out[field] = flatten(v)
		}
		return out
	}

	// FastAPI style: [{"loc": ["body", "mobile_no"], "msg": "..."}]
	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if json.Unmarshal(raw, &items) == nil {
		out := make(map[string]string, len(items))
		for _, it := range items {
			field := ""
			for i := len(it.Loc) - 1; i >= 0; i-- {
				if s, ok := it.Loc[i].(string); ok && s != "body" && s != "query" {
					field = s
					break
				}
			}
			if field == "" {
				continue
			}
			out[field] = it.Msg
		}
		return out
	}

	return nil
}

func flatten(raw json.RawMessage) string {
	if s, ok := asString(raw); ok {
		return s
	}
	var list []json.RawMessage
	if json.Unmarshal(raw, &list) == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, flatten(item))
		}
		return strings.Join(parts, "; ")
	}
	return string(raw)
}

func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func retryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}
	v := header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return 0
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
