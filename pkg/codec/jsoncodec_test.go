package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	URL       string         `json:"url"`
	Parameter map[string]any `json:"parameter"`
}

func TestMarshalKeepsHTMLAndDropsNewline(t *testing.T) {
	b, err := JSONStrict.Marshal(map[string]string{"url": "app://a?x=<1>&y=2"})
	require.NoError(t, err)
	assert.Equal(t, `{"url":"app://a?x=<1>&y=2"}`, string(b))
	assert.Equal(t, "application/json", JSONStrict.ContentType())
}

func TestUnmarshalStrict(t *testing.T) {
	var b body
	require.NoError(t, JSONStrict.Unmarshal([]byte(`{"url":"app://a","parameter":{"n":1}}`), &b))
	assert.Equal(t, "app://a", b.URL)
	assert.Equal(t, float64(1), b.Parameter["n"])

	err := JSONStrict.Unmarshal([]byte(`{"url":"app://a","extra":true}`), &b)
	assert.ErrorContains(t, err, "json decode")

	err = JSONStrict.Unmarshal([]byte(`{"url":"app://a"} {}`), &b)
	assert.ErrorIs(t, err, ErrTrailing)
}

func TestUnmarshalParamsKeepsNumbers(t *testing.T) {
	var b body
	require.NoError(t, JSONParams.Unmarshal([]byte(`{"url":"app://a","parameter":{"id":9007199254740993}}`), &b))
	assert.Equal(t, json.Number("9007199254740993"), b.Parameter["id"])
}
