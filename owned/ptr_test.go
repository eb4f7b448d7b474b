//go:build unit

package owned_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-owned/owned"
)

// widget counts its own destructions through a caller-provided counter, so
// tests stay parallel-safe while the deleter stays stateless.
type widget struct {
	deletes *int
	id      int
}

type widgetDelete struct{}

func (widgetDelete) Delete(w *widget) { *w.deletes++ }

func newWidget(counter *int, id int) *widget {
	return &widget{deletes: counter, id: id}
}

var (
	_ owned.Deleter[widget] = widgetDelete{}
	_ io.Closer             = (*owned.Ptr[widget, widgetDelete])(nil)
)

func TestNew_OwnsAndDestroysExactlyOnce(t *testing.T) {
	t.Parallel()

	deletes := 0
	w := newWidget(&deletes, 1)

	h := owned.New[widget, widgetDelete](w)

	require.True(t, h.Valid())
	assert.Same(t, w, h.Get())
	assert.Equal(t, 0, deletes)

	require.NoError(t, h.Close())

	assert.False(t, h.Valid())
	assert.Nil(t, h.Get())
	assert.Equal(t, 1, deletes)

	// Closing an already-empty handle destroys nothing.
	require.NoError(t, h.Close())
	assert.Equal(t, 1, deletes)
}

func TestPtr_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var h owned.Ptr[widget, widgetDelete]

	assert.False(t, h.Valid())
	assert.Nil(t, h.Get())
	require.NoError(t, h.Close())
}

func TestNew_NilAddress(t *testing.T) {
	t.Parallel()

	h := owned.New[widget, widgetDelete](nil)

	assert.False(t, h.Valid())
	assert.Nil(t, h.Release())
	require.NoError(t, h.Close())
}

func TestReset_ReplacesAndDestroysPrevious(t *testing.T) {
	t.Parallel()

	firstDeletes, secondDeletes := 0, 0
	first := newWidget(&firstDeletes, 1)
	second := newWidget(&secondDeletes, 2)

	h := owned.New[widget, widgetDelete](first)
	h.Reset(second)

	assert.Equal(t, 1, firstDeletes)
	assert.Equal(t, 0, secondDeletes)
	assert.Same(t, second, h.Get())

	require.NoError(t, h.Close())
	assert.Equal(t, 1, firstDeletes)
	assert.Equal(t, 1, secondDeletes)
}

func TestReset_SameAddressIsNoOp(t *testing.T) {
	t.Parallel()

	deletes := 0
	w := newWidget(&deletes, 1)

	h := owned.New[widget, widgetDelete](w)
	h.Reset(w)

	assert.Equal(t, 0, deletes)
	assert.Same(t, w, h.Get())

	require.NoError(t, h.Close())
	assert.Equal(t, 1, deletes)
}

func TestReset_NilOnEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	var h owned.Ptr[widget, widgetDelete]

	h.Reset(nil)

	assert.False(t, h.Valid())
}

func TestRelease_TransfersToCaller(t *testing.T) {
	t.Parallel()

	deletes := 0
	w := newWidget(&deletes, 1)

	h := owned.New[widget, widgetDelete](w)
	released := h.Release()

	assert.Same(t, w, released)
	assert.False(t, h.Valid())

	require.NoError(t, h.Close())
	assert.Equal(t, 0, deletes)
}

func TestPtr_Equal(t *testing.T) {
	t.Parallel()

	deletes := 0
	w := newWidget(&deletes, 1)

	h := owned.New[widget, widgetDelete](w)
	defer h.Close()

	assert.True(t, h.Equal(w))
	assert.False(t, h.Equal(nil))
	assert.False(t, h.Equal(newWidget(&deletes, 2)))
}

type closeRecorder struct {
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++

	return nil
}

func TestNewClosing_DestroyCallsClose(t *testing.T) {
	t.Parallel()

	rec := &closeRecorder{}

	h := owned.NewClosing(rec)

	require.True(t, h.Valid())
	assert.Same(t, rec, h.Get())

	require.NoError(t, h.Close())
	assert.Equal(t, 1, rec.closed)
}

func TestNewClosing_ReleaseSkipsClose(t *testing.T) {
	t.Parallel()

	rec := &closeRecorder{}

	h := owned.NewClosing(rec)

	assert.Same(t, rec, h.Release())

	require.NoError(t, h.Close())
	assert.Equal(t, 0, rec.closed)
}

func TestNewValue_DiscardPolicy(t *testing.T) {
	t.Parallel()

	h := owned.NewValue(&widget{id: 1})

	require.True(t, h.Valid())
	require.NoError(t, h.Close())
	assert.False(t, h.Valid())
}
