package swipeback

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var body = Surface{ID: "body", X: 0, Y: 3, Width: 80, Height: 20}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

// swipe feeds a press, motion and release to r, returning the command from
// the release.
func swipe(t *testing.T, r *Recognizer, fromX, toX, y int) (bool, tea.Cmd) {
	t.Helper()

	r.Handle(press(fromX, y))
	r.Handle(motion((fromX+toX)/2, y))
	return r.Handle(release(toX, y))
}

func TestRecognizer_Swipe(t *testing.T) {
	owner := &Toggle{}
	r := New(owner)
	require.True(t, r.Attach(body))

	handled, cmd := swipe(t, r, 0, 20, 10)
	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, PopMsg{}, cmd())
}

func TestRecognizer_ConsumesTrackedEvents(t *testing.T) {
	r := New(&Toggle{})
	r.Attach(body)

	handled, _ := r.Handle(press(1, 10))
	assert.True(t, handled)
	handled, _ = r.Handle(motion(5, 10))
	assert.True(t, handled)
}

func TestRecognizer_ShortSwipe(t *testing.T) {
	r := New(&Toggle{})
	r.Attach(body)

	handled, cmd := swipe(t, r, 0, DefaultThreshold-1, 10)
	assert.True(t, handled)
	assert.Nil(t, cmd)
}

func TestRecognizer_NotFromEdge(t *testing.T) {
	r := New(&Toggle{})
	r.Attach(body)

	handled, cmd := swipe(t, r, 10, 40, 10)
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestRecognizer_OutsideSurface(t *testing.T) {
	r := New(&Toggle{})
	r.Attach(body)

	// header rows lie above the surface
	handled, cmd := swipe(t, r, 0, 40, 1)
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestRecognizer_NoSurface(t *testing.T) {
	r := New(&Toggle{})

	_, cmd := swipe(t, r, 0, 40, 10)
	assert.Nil(t, cmd)
}

func TestRecognizer_Disabled(t *testing.T) {
	owner := &Toggle{}
	owner.SetInteractivePopDisabled(true)
	r := New(owner)
	r.Attach(body)

	handled, cmd := swipe(t, r, 0, 40, 10)
	assert.False(t, handled, "disabled recognizer must not consume events")
	assert.Nil(t, cmd)

	// re-enabling makes it active again
	owner.SetInteractivePopDisabled(false)
	_, cmd = swipe(t, r, 0, 40, 10)
	assert.NotNil(t, cmd)
}

func TestRecognizer_DisabledMidSwipe(t *testing.T) {
	owner := &Toggle{}
	r := New(owner)
	r.Attach(body)

	r.Handle(press(0, 10))
	owner.SetInteractivePopDisabled(true)
	handled, cmd := r.Handle(release(40, 10))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestRecognizer_AttachIdempotent(t *testing.T) {
	r := New(&Toggle{})

	assert.True(t, r.Attach(body))
	moved := body
	moved.Y = 5
	assert.False(t, r.Attach(moved))
	assert.Len(t, r.surfaces, 1)

	// bounds were updated: y=4 is no longer within the surface
	handled, _ := r.Handle(press(0, 4))
	assert.False(t, handled)

	r.Detach(body.ID)
	assert.False(t, r.Attached(body.ID))
}

func TestRecognizer_Options(t *testing.T) {
	r := New(&Toggle{}, WithEdgeWidth(5), WithThreshold(2))
	r.Attach(body)

	_, cmd := swipe(t, r, 4, 6, 10)
	assert.NotNil(t, cmd)
}
