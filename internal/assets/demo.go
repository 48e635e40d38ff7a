package assets

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/pretty"
)

// Sample input shown in the formatter panel.
const demoJSON = `{"name":"test","age":25,"items":[1,2,3]}`

const (
	demoJWTHeader  = `{"alg":"HS256","typ":"JWT"}`
	demoJWTPayload = `{"sub":"1234567890","name":"Test User","exp":1772337600}`
	demoJWTSecret  = "your-256-bit-secret"
)

// Expiry times are shown in China Standard Time.
var demoZone = time.FixedZone("CST", 8*60*60)

// FormatJSON validates src and pretty prints it with two-space indentation.
// Short arrays stay on one line.
func FormatJSON(src string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return strings.TrimRight(string(pretty.Pretty([]byte(src))), "\n"), nil
}

// DemoToken returns the HS256 token shown in the JWT panel.
func DemoToken() string {
	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString([]byte(demoJWTHeader)) + "." + enc.EncodeToString([]byte(demoJWTPayload))

	mac := hmac.New(sha256.New, []byte(demoJWTSecret))
	mac.Write([]byte(signingInput))
	return signingInput + "." + enc.EncodeToString(mac.Sum(nil))
}

// TokenPreview shortens a token to its header segment followed by "...".
func TokenPreview(token string) string {
	header, _, found := strings.Cut(token, ".")
	if !found {
		return token
	}
	return header + "..."
}

// JWTSummary is what the JWT panel displays for a token.
type JWTSummary struct {
	Header  string
	Payload string
	// ExpiresAt is zero when the token has no numeric exp claim.
	ExpiresAt time.Time
}

// DecodeJWT splits token into its three segments and decodes header and
// payload. The signature is not verified. A positive numeric exp claim is
// reported through ExpiresAt and left out of the printed payload; every other
// claim is printed in its original order.
func DecodeJWT(token string) (JWTSummary, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return JWTSummary{}, fmt.Errorf("invalid JWT: want 3 segments, got %d", len(parts))
	}

	header, err := decodeSegment(parts[0])
	if err != nil {
		return JWTSummary{}, fmt.Errorf("invalid JWT header: %w", err)
	}
	headerJSON, err := FormatJSON(string(header))
	if err != nil {
		return JWTSummary{}, fmt.Errorf("invalid JWT header: %w", err)
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return JWTSummary{}, fmt.Errorf("invalid JWT payload: %w", err)
	}
	claims, err := objectMembers(payload)
	if err != nil {
		return JWTSummary{}, fmt.Errorf("invalid JWT payload: %w", err)
	}

	var s JWTSummary
	if exp, ok := expiry(claims); ok {
		s.ExpiresAt = exp
		claims = slices.DeleteFunc(claims, func(m member) bool { return m.name == "exp" })
	}
	body, err := encodeObject(claims)
	if err != nil {
		return JWTSummary{}, err
	}
	s.Header = headerJSON
	s.Payload = strings.TrimRight(string(pretty.Pretty(body)), "\n")
	return s, nil
}

// String renders the summary the way the result box shows it.
func (s JWTSummary) String() string {
	var b strings.Builder
	b.WriteString("Header:\n")
	b.WriteString(s.Header)
	b.WriteString("\n\nPayload:\n")
	b.WriteString(s.Payload)
	if !s.ExpiresAt.IsZero() {
		b.WriteString("\n\n✅ 有效期至: ")
		b.WriteString(s.ExpiresAt.Format(time.DateTime))
	}
	return b.String()
}

// expiry reads the last exp member as seconds since the epoch. Fractional
// seconds are kept.
func expiry(claims []member) (time.Time, bool) {
	var raw json.RawMessage
	for _, m := range claims {
		if m.name == "exp" {
			raw = m.value
		}
	}
	if raw == nil {
		return time.Time{}, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return time.Time{}, false
	}
	f, err := n.Float64()
	if err != nil || f <= 0 {
		return time.Time{}, false
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).In(demoZone), true
}

type member struct {
	name  string
	value json.RawMessage
}

// objectMembers splits a JSON object into its members in document order.
func objectMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("not a JSON object")
	}

	var out []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		out = append(out, member{name: name, value: value})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return out, nil
}

func encodeObject(members []member) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	var out bytes.Buffer
	out.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			out.WriteByte(',')
		}
		b.Reset()
		if err := enc.Encode(m.name); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(b.Bytes(), "\n"))
		out.WriteByte(':')
		out.Write(m.value)
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
}
