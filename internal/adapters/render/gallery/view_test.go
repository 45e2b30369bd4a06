package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGalleryListsEntriesInOrder(t *testing.T) {
	output, err := Render([]string{"Это начало", "Так держать", "Ещё шаг"}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Галерея")
	assert.Contains(t, output, "entries: 3")
	assert.Contains(t, output, "1. Это начало")
	assert.Contains(t, output, "2. Так держать")
	assert.Contains(t, output, "3. Ещё шаг")
	assert.Less(t, strings.Index(output, "Это начало"), strings.Index(output, "Ещё шаг"))
}

func TestRenderGalleryEmptyState(t *testing.T) {
	output, err := Render(nil, RenderOptions{Title: "History"})

	require.NoError(t, err)
	assert.Contains(t, output, "History")
	assert.Contains(t, output, "entries: 0")
	assert.Contains(t, output, "No messages yet.")
}

func TestRenderGalleryLimitKeepsNewestEntries(t *testing.T) {
	entries := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven"}

	output, err := Render(entries, RenderOptions{Limit: 2})

	require.NoError(t, err)
	assert.Contains(t, output, "entries: 11")
	assert.Contains(t, output, "10. ten")
	assert.Contains(t, output, "11. eleven")
	assert.NotContains(t, output, "nine")
}

func TestRenderGalleryStripsControlCharacters(t *testing.T) {
	output, err := Render([]string{"bad\x1b[31mred\x07"}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "bad[31mred")
	assert.NotContains(t, output, "\x07")
}

func TestViewMatchesRender(t *testing.T) {
	entries := []string{"a", "b"}

	rendered, err := Render(entries, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, rendered, View(entries, RenderOptions{}))
}

func TestNewPageWindowsNewestEntries(t *testing.T) {
	p := newPage([]string{"a", "b\x07", "c", "d"}, RenderOptions{Limit: 2, Title: "  "})

	assert.Equal(t, "Галерея", p.title)
	assert.Equal(t, 4, p.total)
	assert.Equal(t, []string{"c", "d"}, p.entries)
	assert.Equal(t, 3, p.number(0))
	assert.False(t, p.latest(0))
	assert.True(t, p.latest(1))
	assert.False(t, p.empty())

	all := newPage([]string{"a", "b\x07"}, RenderOptions{Limit: 5})
	assert.Equal(t, []string{"a", "b"}, all.entries)
	assert.Equal(t, 1, all.number(0))

	assert.True(t, newPage(nil, RenderOptions{}).empty())
}
