package gemini

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidResponse = errors.New("gemini returned an invalid JSON answer")

// parseJSON recorta o primeiro objeto JSON da resposta, que pode vir cercado de
// texto ou de blocos de código.
func parseJSON(text string) (gjson.Result, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return gjson.Result{}, ErrInvalidResponse
	}

	raw := text[start : end+1]
	if !gjson.Valid(raw) {
		return gjson.Result{}, ErrInvalidResponse
	}

	return gjson.Parse(raw), nil
}

func stringList(result gjson.Result) []string {
	values := make([]string, 0)
	for _, item := range result.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			values = append(values, s)
		}
	}
	return values
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
