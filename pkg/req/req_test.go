package req_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lucky_wheel/pkg/req"
)

type payload struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func TestDecode(t *testing.T) {
	got, err := req.Decode[payload](strings.NewReader(`{"label":"Cap","color":"#FF0000"}`))
	require.NoError(t, err)
	require.Equal(t, payload{Label: "Cap", Color: "#FF0000"}, got)
}

func TestDecode_Rejects(t *testing.T) {
	for _, body := range []string{``, `{`, `{"label":"Cap","size":3}`, `[]`} {
		_, err := req.Decode[payload](strings.NewReader(body))
		require.Error(t, err, body)
	}
}
