package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Secondary)
	assert.NotEmpty(t, theme.Foreground)
	assert.NotEmpty(t, theme.Muted)
	assert.NotEmpty(t, theme.Success)
	assert.NotEmpty(t, theme.Warning)
	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.Border)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := &Theme{
		Primary:    lipgloss.Color("#FF0000"),
		Foreground: lipgloss.Color("#FFFFFF"),
	}

	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_DoomedIsStruckThrough(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Doomed.GetStrikethrough())
}

func TestStyles_TitleIsBold(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Subtitle.GetBold())
	assert.True(t, s.Selected.GetBold())
}
