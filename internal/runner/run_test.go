package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SingleChunk(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`print 1 + 2;`, &buf)
	require.NoError(t, err)
	assert.Equal(t, "3\n", buf.String())
}

func TestRun_SyntaxErrorIsReturned(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`@;`, &buf)
	require.Error(t, err)
}

func TestRunner_PersistsStateAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Run(`var count = 0;`))
	require.NoError(t, r.Run(`count = count + 1;`))
	require.NoError(t, r.Run(`print count;`))

	assert.Equal(t, "1", strings.TrimSpace(buf.String()))
}

func TestRunner_ClosureStatePersistsAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Run(`fun makeCounter() { var n = 0; fun next() { n = n + 1; return n; } return next; }`))
	require.NoError(t, r.Run(`var counter = makeCounter();`))
	require.NoError(t, r.Run(`print counter();`))
	require.NoError(t, r.Run(`print counter();`))

	assert.Equal(t, []string{"1", "2"}, strings.Split(strings.TrimSpace(buf.String()), "\n"))
}
