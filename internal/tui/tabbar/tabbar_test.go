package tabbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBar() *Model {
	m := New()
	m.SetItems([]Item{{Title: "overview"}, {Title: "logs", Badge: "3"}, {Title: "settings"}})
	m.SetWidth(80)
	return m
}

func TestParsePosition(t *testing.T) {
	for s, want := range map[string]Position{
		"":            Unspecified,
		"unspecified": Unspecified,
		"top":         Top,
		"bottom":      Bottom,
	} {
		got, err := ParsePosition(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePosition("left")
	assert.Error(t, err)
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "unspecified", Unspecified.String())
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "bottom", Bottom.String())
	assert.Equal(t, "Position(7)", Position(7).String())
	assert.Equal(t, "Position(-1)", Position(-1).String())
}

func TestModel_SetSelected(t *testing.T) {
	m := newBar()
	assert.Equal(t, -1, m.Selected())

	m.SetSelected(1)
	assert.Equal(t, 1, m.Selected())

	m.SetSelected(5)
	assert.Equal(t, -1, m.Selected())

	m.SetSelected(2)
	m.SetItems([]Item{{Title: "overview"}})
	assert.Equal(t, -1, m.Selected(), "selection out of range after items shrink")
}

func TestModel_ItemAt(t *testing.T) {
	m := newBar()

	// " overview " occupies columns 0-9, " logs 3 " 10-17, " settings " 18-27.
	tests := []struct {
		x     int
		want  int
		found bool
	}{
		{x: 0, want: 0, found: true},
		{x: 9, want: 0, found: true},
		{x: 10, want: 1, found: true},
		{x: 17, want: 1, found: true},
		{x: 18, want: 2, found: true},
		{x: 27, want: 2, found: true},
		{x: 28, found: false},
		{x: -1, found: false},
	}
	for _, tt := range tests {
		got, ok := m.ItemAt(tt.x)
		assert.Equal(t, tt.found, ok, "x=%d", tt.x)
		if tt.found {
			assert.Equal(t, tt.want, got, "x=%d", tt.x)
		}
	}
}

func TestModel_ItemAt_Truncated(t *testing.T) {
	m := New()
	m.SetItems([]Item{{Title: strings.Repeat("x", 40)}, {Title: "next"}})

	i, ok := m.ItemAt(MaxTitleWidth + 2)
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestModel_SetHidden(t *testing.T) {
	m := newBar()

	cmd := m.SetHidden(true, false)
	assert.Nil(t, cmd)
	assert.True(t, m.Hidden())
	assert.Equal(t, 0, m.Height())
	assert.Equal(t, "", m.View())

	cmd = m.SetHidden(false, false)
	assert.Nil(t, cmd)
	assert.False(t, m.Hidden())
	assert.Equal(t, Rows, m.Height())
}

func TestModel_SetHiddenAnimated(t *testing.T) {
	m := newBar()

	cmd := m.SetHidden(true, true)
	require.NotNil(t, cmd)
	assert.True(t, m.Hidden())
	assert.True(t, m.Animating())
	assert.Equal(t, Rows, m.Height(), "animation starts from the current height")

	frame := FrameMsg{id: m.id, tag: m.tag}

	cmd = m.Update(frame)
	assert.Equal(t, 1, m.Height())
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, len(strings.Split(m.View(), "\n")))

	cmd = m.Update(frame)
	assert.Equal(t, 0, m.Height())
	assert.Nil(t, cmd, "animation finished")
	assert.False(t, m.Animating())

	// and back again
	require.NotNil(t, m.SetHidden(false, true))
	frame = FrameMsg{id: m.id, tag: m.tag}
	m.Update(frame)
	m.Update(frame)
	assert.Equal(t, Rows, m.Height())
	assert.False(t, m.Hidden())
}

func TestModel_StaleFrames(t *testing.T) {
	m := newBar()
	other := newBar()

	m.SetHidden(true, true)
	stale := FrameMsg{id: m.id, tag: m.tag}

	// superseded by showing again before the first frame arrives
	m.SetHidden(false, true)
	assert.Nil(t, m.Update(stale))
	assert.Equal(t, Rows, m.Height())

	// frames for another bar are ignored
	other.SetHidden(true, true)
	m.Update(FrameMsg{id: other.id, tag: other.tag})
	assert.Equal(t, Rows, m.Height())
}

func TestModel_View(t *testing.T) {
	m := newBar()
	m.SetSelected(0)

	top := strings.Split(m.View(), "\n")
	require.Len(t, top, 2)
	assert.Contains(t, top[0], "overview")
	assert.Contains(t, top[1], "━")

	m.SetPosition(Bottom)
	bottom := strings.Split(m.View(), "\n")
	require.Len(t, bottom, 2)
	assert.Contains(t, bottom[0], "━")
	assert.Contains(t, bottom[1], "overview")
}
