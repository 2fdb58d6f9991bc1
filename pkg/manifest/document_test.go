// pkg/manifest/document_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test manifest parsing and lossless re-encoding

package manifest_test

import (
	"testing"

	"github.com/arthur-debert/ccsync/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KeepsKeyOrder(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"domain": "hoymiles_dtu_pro", "name": "Hoymiles", "version": "1.0.0", "codeowners": ["@me"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"domain", "name", "version", "codeowners"}, doc.Keys())

	v, ok := doc.Version()
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", v)
}

func TestParse_RejectsNonObjects(t *testing.T) {
	for _, in := range []string{`[1, 2]`, `"1.0.0"`, `{"version": `, ``, `{"a": 1} {"b": 2}`, `{"a": 1`} {
		t.Run(in, func(t *testing.T) {
			_, err := manifest.Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestDocument_MarshalIndented(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"domain":"x","version":"1.0.0","requirements":["a==1"],"iot_class":"local_polling"}`))
	require.NoError(t, err)

	require.NoError(t, doc.SetVersion("1.1.0"))
	out, err := doc.Marshal()
	require.NoError(t, err)

	expected := `{
  "domain": "x",
  "version": "1.1.0",
  "requirements": [
    "a==1"
  ],
  "iot_class": "local_polling"
}`
	assert.Equal(t, expected, string(out))
}

func TestDocument_SetVersionAppendsWhenMissing(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"domain":"x"}`))
	require.NoError(t, err)

	_, ok := doc.Version()
	assert.False(t, ok)

	require.NoError(t, doc.SetVersion("2.0.0"))

	assert.Equal(t, []string{"domain", "version"}, doc.Keys())
	v, ok := doc.Get("version")
	assert.True(t, ok)
	assert.Equal(t, "2.0.0", v)
}

func TestDocument_MarshalKeepsUntouchedValues(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"version":"1","zeroconf":[{"type":"_hm._tcp.local.","name":"dtu*"}],"ratio":1.0,"big":12345678901234567891,"empty":{},"url":"https://x/?a=1&b=<2>"}`))
	require.NoError(t, err)

	require.NoError(t, doc.SetVersion("2"))
	out, err := doc.Marshal()
	require.NoError(t, err)

	expected := `{
  "version": "2",
  "zeroconf": [
    {
      "type": "_hm._tcp.local.",
      "name": "dtu*"
    }
  ],
  "ratio": 1.0,
  "big": 12345678901234567891,
  "empty": {},
  "url": "https://x/?a=1&b=<2>"
}`
	assert.Equal(t, expected, string(out))
}

func TestDocument_MarshalEscapesNonASCII(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"name":"Hoymiles Café","icon":"🔋","version":"1"}`))
	require.NoError(t, err)

	out, err := doc.Marshal()
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"Hoymiles Caf\\u00e9\",\n  \"icon\": \"\\ud83d\\udd0b\",\n  \"version\": \"1\"\n}", string(out))

	again, err := manifest.Parse(out)
	require.NoError(t, err)
	name, _ := again.Get("name")
	assert.Equal(t, "Hoymiles Café", name)
}

func TestDocument_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	doc, err := manifest.Parse([]byte(`{"version":"1","domain":"x","version":"2"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"version", "domain"}, doc.Keys())
	v, _ := doc.Version()
	assert.Equal(t, "2", v)
}
