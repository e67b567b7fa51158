package scan

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	lineOpts := DefaultLineOptions()
	require.Empty(t, lineOpts.Delimiters)
	require.Zero(t, lineOpts.MaxPartitions)
	require.Zero(t, lineOpts.Comment)
	require.NotNil(t, lineOpts.Logger)
	require.NoError(t, lineOpts.Validate())

	tokOpts := DefaultTokenizeOptions()
	require.False(t, tokOpts.KeepSpace)
	require.NotNil(t, tokOpts.Logger)
}

func TestLineOptionsValidate(t *testing.T) {
	require.NoError(t, LineOptions{Delimiters: ","}.Validate())
	require.NoError(t, LineOptions{MaxPartitions: 3}.Validate())
	require.ErrorIs(t, LineOptions{Delimiters: ",", MaxPartitions: 3}.Validate(), ErrConflictingOptions)
}

func TestParseLines(t *testing.T) {
	opts := DefaultLineOptions()
	opts.MaxPartitions = 2
	opts.Comment = '#'

	node, err := ParseLines("# script\necho hello world\n\nexit", opts)
	require.NoError(t, err)

	arr, ok := node.(*ast.ArrayDataNode)
	require.True(t, ok, "expected *ast.ArrayDataNode, got %T", node)
	require.Equal(t, 2, arr.Len())

	var got [][]string
	for i := 0; i < arr.Len(); i++ {
		rec := arr.Get(i).(*ast.ArrayDataNode)
		var fields []string
		for j := 0; j < rec.Len(); j++ {
			fields = append(fields, rec.Get(j).(*ast.LiteralNode).Value().(string))
		}
		got = append(got, fields)
	}
	require.Equal(t, [][]string{{"echo", "hello world"}, {"exit"}}, got)
}

func TestParseLinesConflictingOptions(t *testing.T) {
	_, err := ParseLines("a", LineOptions{Delimiters: " ", MaxPartitions: 1})
	require.ErrorIs(t, err, ErrConflictingOptions)
}
