//go:build unit

package loading_test

import (
	"net/http"
	"testing"

	"seva-console/internal/client/loading"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SetAndRead(t *testing.T) {
	r := loading.NewRegistry()
	key := loading.Key(http.MethodGet, "/book-seva")

	assert.False(t, r.IsLoading(key), "absent key reads false")

	r.SetLoading(key, true)
	assert.True(t, r.IsLoading(key))
	assert.True(t, r.AnyLoading())

	r.SetLoading(key, false)
	assert.False(t, r.IsLoading(key))
	assert.False(t, r.AnyLoading())
}

func TestRegistry_KeysAreIndependent(t *testing.T) {
	r := loading.NewRegistry()
	get := loading.Key(http.MethodGet, "/expenses")
	post := loading.Key(http.MethodPost, "/expenses")

	r.SetLoading(get, true)
	assert.True(t, r.IsLoading(get))
	assert.False(t, r.IsLoading(post))
	assert.Equal(t, "GET /expenses", loading.Key("", "/expenses"))
}

func TestRegistry_SubscribeReceivesSnapshotsInOrder(t *testing.T) {
	r := loading.NewRegistry()

	var order []string
	var last map[string]bool
	unsubA := r.Subscribe(func(s map[string]bool) {
		order = append(order, "a")
		last = s
	})
	unsubB := r.Subscribe(func(map[string]bool) { order = append(order, "b") })

	r.SetLoading("GET /a", true)
	r.SetLoading("GET /b", true)

	assert.Equal(t, []string{"a", "b", "a", "b"}, order)
	assert.Equal(t, map[string]bool{"GET /a": true, "GET /b": true}, last)

	// snapshots are copies
	last["GET /a"] = false
	assert.True(t, r.IsLoading("GET /a"))

	unsubA()
	unsubA()
	r.SetLoading("GET /a", false)
	assert.Equal(t, []string{"a", "b", "a", "b", "b"}, order)

	unsubB()
	r.SetLoading("GET /a", true)
	assert.Len(t, order, 5)
}

func TestRegistry_TrackReleasesOnce(t *testing.T) {
	r := loading.NewRegistry()

	var events []bool
	r.Subscribe(func(s map[string]bool) { events = append(events, s["PUT /x"]) })

	release := r.Track("PUT /x")
	require.True(t, r.IsLoading("PUT /x"))

	release()
	release()

	assert.False(t, r.IsLoading("PUT /x"))
	assert.Equal(t, []bool{true, false}, events)
}
