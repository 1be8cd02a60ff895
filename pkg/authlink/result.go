package authlink

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/samvad-hq/authlink-go/pkg/httpclient"
	"golang.org/x/oauth2"
)

const jsonContentType = "application/json"

var timeNow = time.Now

// Result is the unwrapped response of an Authlink call. Its shape is whatever
// the API returned; no schema validation is performed.
//
// A 204 response yields an empty JSON object. A response declared as
// application/json carries the decoded value in Data. Anything else is kept
// as an opaque payload in Body with a nil Data.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Data       any

	json bool
}

func newResult(resp httpclient.Response) (*Result, error) {
	res := &Result{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
	}
	if res.Header == nil {
		res.Header = http.Header{}
	}

	if res.StatusCode == http.StatusNoContent {
		res.Body = []byte("{}")
		res.Data = map[string]any{}
		res.json = true
		return res, nil
	}

	res.Body = resp.Body()
	if !isJSONContentType(res.Header.Get("Content-Type")) {
		return res, nil
	}

	var data any
	if err := json.Unmarshal(res.Body, &data); err != nil {
		return nil, fmt.Errorf("decode json response: %w", err)
	}
	res.Data = data
	res.json = true
	return res, nil
}

// isJSONContentType reports whether the declared media type is application/json.
// Parameters such as charset are ignored.
func isJSONContentType(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}
	return mediaType == jsonContentType
}

// IsJSON reports whether Data holds a decoded JSON value.
func (r *Result) IsJSON() bool { return r != nil && r.json }

// Object returns Data as a JSON object, or nil when it is not one.
func (r *Result) Object() map[string]any {
	if r == nil {
		return nil
	}
	obj, _ := r.Data.(map[string]any)
	return obj
}

// Text returns the raw payload as a string.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Decode unmarshals a JSON result into v.
func (r *Result) Decode(v any) error {
	if r == nil {
		return errors.New("authlink: nil result")
	}
	if !r.json {
		return fmt.Errorf("authlink: response is not json (content type %q)", r.Header.Get("Content-Type"))
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("authlink: decode result: %w", err)
	}
	return nil
}

type tokenPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Token maps a token endpoint result onto an oauth2.Token. The full response
// object is attached as the token's extra data.
func (r *Result) Token() (*oauth2.Token, error) {
	var payload tokenPayload
	if err := r.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.AccessToken == "" {
		if apiErr := r.Err(); apiErr != nil {
			return nil, apiErr
		}
		return nil, errors.New("authlink: response has no access_token")
	}

	tok := &oauth2.Token{
		AccessToken:  payload.AccessToken,
		TokenType:    payload.TokenType,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}
	if payload.ExpiresIn > 0 {
		tok.Expiry = timeNow().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}
	if obj := r.Object(); obj != nil {
		tok = tok.WithExtra(obj)
	}
	return tok, nil
}

// Err reports an API-level error carried by the result: a non-2xx status or a
// JSON object with an "error" field. It returns nil otherwise.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}

	code, message := errorFields(r.Object())
	if code == "" && r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	if message == "" && !r.json {
		message = strings.TrimSpace(r.Text())
	}
	return &APIError{
		StatusCode: r.StatusCode,
		Code:       code,
		Message:    message,
		Body:       r.Body,
	}
}

func errorFields(obj map[string]any) (code, message string) {
	if obj == nil {
		return "", ""
	}
	switch v := obj["error"].(type) {
	case string:
		code = v
	case map[string]any:
		code, _ = v["code"].(string)
		message, _ = v["message"].(string)
	}
	if message == "" {
		message, _ = obj["error_description"].(string)
	}
	if message == "" {
		message, _ = obj["message"].(string)
	}
	return code, message
}
