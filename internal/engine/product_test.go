package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProduct_NestedOrder(t *testing.T) {
	lists := [][]string{{"AAA", "BBB", "CCC"}, {"XXX", "YYY"}}
	got := slices.Collect(Product(lists, ","))
	require.Equal(t, []string{
		"AAA,XXX", "AAA,YYY",
		"BBB,XXX", "BBB,YYY",
		"CCC,XXX", "CCC,YYY",
	}, got)
}

func TestProduct_SingleList(t *testing.T) {
	got := slices.Collect(Product([][]string{{"bar", "baz", "foo"}}, "\t"))
	require.Equal(t, []string{"bar", "baz", "foo"}, got)
}

func TestProduct_EmptyInputs(t *testing.T) {
	require.Empty(t, slices.Collect(Product(nil, "\t")))
	require.Empty(t, slices.Collect(Product([][]string{{"a"}, {}}, "\t")))
}

func TestProduct_Cardinality(t *testing.T) {
	lists := [][]string{{"a", "b"}, {"c", "d", "e"}, {"f", "g"}}
	got := slices.Collect(Product(lists, ":"))
	require.Len(t, got, ProductSize(lists))
	require.Len(t, got, 12)
	require.Equal(t, "a:c:f", got[0])
	require.Equal(t, "a:c:g", got[1])
	require.Equal(t, "b:e:g", got[11])
}

func TestProduct_Restartable(t *testing.T) {
	seq := Product([][]string{{"a", "b"}, {"c"}}, "-")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second)
}

func TestProduct_EarlyStop(t *testing.T) {
	seq := Product([][]string{{"a", "b", "c"}, {"x", "y"}}, "")
	var got []string
	for line := range seq {
		got = append(got, line)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []string{"ax", "ay", "bx"}, got)
}

func TestProductSize(t *testing.T) {
	require.Equal(t, 0, ProductSize(nil))
	require.Equal(t, 0, ProductSize([][]string{{"a"}, nil}))
	require.Equal(t, 6, ProductSize([][]string{{"a", "b", "c"}, {"x", "y"}}))
}
