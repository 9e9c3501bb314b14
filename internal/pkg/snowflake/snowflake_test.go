package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultiAppGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		apps        uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:        "正常创建",
			nodeId:      1,
			apps:        3,
			wantErrFunc: require.NoError,
		},
		{
			name:        "node 超限",
			nodeId:      32,
			apps:        3,
			wantErrFunc: require.Error,
		},
		{
			name:        "app 超限",
			nodeId:      1,
			apps:        33,
			wantErrFunc: require.Error,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMultiAppGenerator(tc.nodeId, tc.apps)
			tc.wantErrFunc(t, err)
		})
	}
}

func TestGenerate(t *testing.T) {
	gen, err := NewMultiAppGenerator(1, 3)
	require.NoError(t, err)

	id, err := gen.Generate(AppShortlist)
	require.NoError(t, err)
	assert.Equal(t, AppShortlist, id.AppID())
	assert.True(t, id.Int64() > 0)

	_, err = gen.Generate(10)
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestGenerateUnique(t *testing.T) {
	gen, err := NewMultiAppGenerator(0, 3)
	require.NoError(t, err)
	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id, err := gen.Generate(AppShortlist)
		require.NoError(t, err)
		_, ok := seen[id.Int64()]
		require.False(t, ok)
		seen[id.Int64()] = struct{}{}
	}
}
