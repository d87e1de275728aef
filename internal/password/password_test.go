package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundtrip(t *testing.T) {
	record, err := Hash("secret123")
	require.NoError(t, err)

	assert.True(t, Verify(record, "secret123"))
	assert.False(t, Verify(record, "secret124"))
	assert.False(t, Verify(record, ""))
}

func TestHashRecordFormat(t *testing.T) {
	record, err := Hash("secret123")
	require.NoError(t, err)

	parts := strings.Split(record, ":")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltLen*2, "hex salt length")
	assert.Len(t, parts[1], keyLen*2, "hex digest length")
}

func TestHashSaltsAreRandom(t *testing.T) {
	first, err := Hash("secret123")
	require.NoError(t, err)
	second, err := Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	firstSalt := strings.Split(first, ":")[0]
	secondSalt := strings.Split(second, ":")[0]
	assert.NotEqual(t, firstSalt, secondSalt)

	// Both independently derived records still verify.
	assert.True(t, Verify(first, "secret123"))
	assert.True(t, Verify(second, "secret123"))
}

func TestVerifyMalformedRecord(t *testing.T) {
	cases := []string{
		"",
		"no-delimiter",
		"a:b:c",
		"zzzz:abcd",
		"abcd:zzzz",
	}
	for _, record := range cases {
		assert.False(t, Verify(record, "secret123"), "record %q", record)
	}
}
