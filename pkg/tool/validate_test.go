package tool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDomains(t *testing.T) {
	result := NormalizeDomains([]string{"  Foo.com ", "", "BAR.org"})
	require.Equal(t, []string{"foo.com", "bar.org"}, result)

	require.Nil(t, NormalizeDomains([]string{"", "   "}))
}

func TestNormalizePhrases(t *testing.T) {
	result := NormalizePhrases([]string{" machine learning ", "", "golang"})
	require.Equal(t, []string{"machine learning", "golang"}, result)
}

func TestNormalizeURL(t *testing.T) {
	val, err := NormalizeURL("example.com")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", val)

	val, err = NormalizeURL("  https://example.com/page ")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/page", val)

	val, err = NormalizeURL("http://example.com")
	require.NoError(t, err)
	require.Equal(t, "http://example.com", val)

	_, err = NormalizeURL("")
	require.Error(t, err)

	_, err = NormalizeURL("notaurl")
	require.Error(t, err)
}

func TestNormalizeID(t *testing.T) {
	val, err := NormalizeID("doc_123abc")
	require.NoError(t, err)
	require.Equal(t, "doc_123abc", val)

	val, err = NormalizeID("example.com/article")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/article", val)

	val, err = NormalizeID("   ")
	require.NoError(t, err)
	require.Empty(t, val)
}

func TestCheckRange(t *testing.T) {
	require.NoError(t, CheckRange("num_results", 1, 1, 100))
	require.NoError(t, CheckRange("num_results", 100, 1, 100))

	require.Error(t, CheckRange("num_results", 0, 1, 100))
	require.Error(t, CheckRange("num_results", 101, 1, 100))
}

func TestCheckLength(t *testing.T) {
	require.NoError(t, CheckLength("query", "hello", 10))

	require.Error(t, CheckLength("query", "", 10))
	require.Error(t, CheckLength("query", "   ", 10))
	require.Error(t, CheckLength("query", "this is too long", 10))
}
