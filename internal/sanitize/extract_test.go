package sanitize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject_ObjectWithSurroundingProse(t *testing.T) {
	raw := `เข้าใจค่ะ {"ai_message": "ok", "nested": {"a": 1}} ลองเล่าต่อนะคะ`

	got := ExtractJSONObject(raw)

	assert.Equal(t, `{"ai_message": "ok", "nested": {"a": 1}}`, got)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
}

func TestExtractJSONObject_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, ExtractJSONObject(raw))
}

func TestExtractJSONObject_NoBrace(t *testing.T) {
	// not JSON-shaped: returns fence-stripped input unchanged
	assert.Equal(t, "ไม่มี JSON ในข้อความนี้", ExtractJSONObject("ไม่มี JSON ในข้อความนี้"))
	assert.Equal(t, "plain text", ExtractJSONObject("```\nplain text\n```"))
}

func TestExtractJSONObject_UnbalancedBraces(t *testing.T) {
	raw := `prefix {"a": {"b": 1}`
	assert.Equal(t, raw, ExtractJSONObject(raw))
}

func TestExtractJSONObject_DeepNesting(t *testing.T) {
	raw := `x {"a":{"b":{"c":{"d":[1,2]}}}} y`
	assert.Equal(t, `{"a":{"b":{"c":{"d":[1,2]}}}}`, ExtractJSONObject(raw))
}

func TestExtractLooseJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, ExtractLooseJSON(`noise {"a": 1} noise`))
	assert.Equal(t, "", ExtractLooseJSON("no json here"))
	assert.Equal(t, "", ExtractLooseJSON("} reversed {"))
}
