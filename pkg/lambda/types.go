package lambda

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(req *Request) (*Response, error)

// FromAPIGateway converts an API Gateway proxy event into a generic request.
// Base64-encoded bodies are decoded before handing off to handlers.
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			body = decoded
		}
	}

	method := event.HTTPMethod
	if method == "" {
		method = event.RequestContext.HTTPMethod
	}

	return &Request{
		Method:      strings.ToUpper(method),
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
	}
}

// ToAPIGateway converts a generic response back into an API Gateway proxy response.
func ToAPIGateway(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// PathParam returns the first non-empty path parameter among names, falling back
// to the trailing path segment when the gateway did not populate path parameters.
func (r *Request) PathParam(names ...string) string {
	for _, name := range names {
		if v := r.PathParams[name]; v != "" {
			return v
		}
	}
	trimmed := strings.Trim(r.Path, "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	return parts[len(parts)-1]
}

// QueryParam returns the first non-empty query parameter among names.
func (r *Request) QueryParam(names ...string) string {
	for _, name := range names {
		if v := r.QueryParams[name]; v != "" {
			return v
		}
	}
	return ""
}

// IsPreflight reports whether the request is a CORS preflight.
func (r *Request) IsPreflight() bool {
	return strings.EqualFold(r.Method, "OPTIONS")
}

// corsHeaders is the permissive header set every endpoint returns. The allowed
// methods vary per endpoint group and are supplied by the caller.
func corsHeaders(allowMethods string) map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json; charset=utf-8",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "content-type,authorization,x-api-key",
		"Access-Control-Allow-Methods": allowMethods,
	}
}

// JSON builds a JSON response with the standard content type and CORS headers.
func JSON(statusCode int, allowMethods string, body interface{}) *Response {
	payload, err := json.Marshal(body)
	if err != nil {
		payload = []byte(`{"ok":false,"error":"response serialization failed"}`)
		statusCode = 500
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    corsHeaders(allowMethods),
		Body:       payload,
	}
}

// NoContent builds an empty response, used for OPTIONS preflights.
func NoContent(allowMethods string) *Response {
	return &Response{
		StatusCode: 204,
		Headers:    corsHeaders(allowMethods),
	}
}
