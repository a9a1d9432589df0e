package respond

import (
	"strconv"
	"strings"
)

// selectFormat picks the error body encoding for an Accept header. JSON wins unless
// CBOR is preferred by quality, or ties on quality while being named more specifically.
func selectFormat(accept string) string {
	var jsonQ, cborQ float64
	var jsonSpec, cborSpec int
	if strings.TrimSpace(accept) == "" {
		return contentTypeJSON
	}
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q, ok := parseMediaRange(part)
		if !ok {
			continue
		}
		if spec := matchSpecificity(mediaType, contentTypeJSON); spec > jsonSpec {
			jsonSpec, jsonQ = spec, q
		}
		if spec := matchSpecificity(mediaType, contentTypeCBOR); spec > cborSpec {
			cborSpec, cborQ = spec, q
		}
	}
	if cborQ > jsonQ || (cborQ == jsonQ && cborQ > 0 && cborSpec > jsonSpec) {
		return contentTypeCBOR
	}
	return contentTypeJSON
}

// parseMediaRange splits "type/subtype;q=0.5" into its lowercase media type and quality.
func parseMediaRange(part string) (string, float64, bool) {
	fields := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(fields[0]))
	if mediaType == "" || !strings.Contains(mediaType, "/") {
		return "", 0, false
	}
	q := 1.0
	for _, param := range fields[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || strings.TrimSpace(key) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return "", 0, false
		}
		q = parsed
	}
	return mediaType, q, true
}

// matchSpecificity returns 3 for an exact match, 2 for a structured suffix match
// (application/problem+json against JSON), 1 for type/* or */*, and 0 otherwise.
func matchSpecificity(mediaType, target string) int {
	if mediaType == target {
		return 3
	}
	targetType, targetSub, _ := strings.Cut(target, "/")
	typ, sub, _ := strings.Cut(mediaType, "/")
	if typ == targetType && strings.HasSuffix(sub, "+"+targetSub) {
		return 2
	}
	if mediaType == "*/*" || (typ == targetType && sub == "*") {
		return 1
	}
	return 0
}
