package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `codec:"name"`
	Count int    `codec:"count"`
}

func TestJson(t *testing.T) {
	a := require.New(t)

	out := map[string]sample{}
	a.NoError(UnmarshalJson([]byte(`{"a": {"name": "x", "count": 2}, "b": {"name": "y", "extra": true}}`), &out))
	a.Equal("x", out["a"].Name)
	a.Equal(2, out["a"].Count)
	a.Equal("y", out["b"].Name)

	var buf bytes.Buffer
	a.NoError(MarshalJsonIntoWriter(map[string]int{"k": 3}, &buf))
	back := map[string]int{}
	a.NoError(UnmarshalJson(buf.Bytes(), &back))
	a.Equal(3, back["k"])

	a.Error(UnmarshalJson([]byte(`{"a": `), &out))
}
