package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemReport(t *testing.T) {
	t.Parallel()
	r := MemReport{
		Name:       "codec",
		TotalBytes: 1024,
		Children: []MemReport{
			{Name: "buffer", TotalBytes: 1000},
			{Name: "header", TotalBytes: 24},
		},
	}

	require.Equal(t, 2048, r.Sum())

	s := r.String()
	require.Contains(t, s, "codec")
	require.Contains(t, s, "buffer")
	require.Equal(t, 3, strings.Count(s, "\n"))

	require.Contains(t, r.JSON(), `"total_bytes":1024`)
}
