package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32, *atomic.Value) {
	t.Helper()

	calls := &atomic.Int32{}
	query := &atomic.Value{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		query.Store(r.URL.Query().Get("t"))
		if r.URL.Path != searchPath {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, calls, query
}

func TestSearchReturnsTeams(t *testing.T) {
	srv, calls, query := newServer(t, http.StatusOK, `{"teams":[
		{"idTeam":"133610","strTeam":"Chelsea","strTeamBadge":"https://x/badge.png"},
		{"idTeam":"1","strTeam":"Chelsea FC Women","strTeamLogo":"https://x/logo.png"}
	]}`)

	f := New(srv.URL+"/", 0)
	teams, err := f.Search(context.Background(), "Chelsea")
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Chelsea", teams[0].Name)
	assert.Equal(t, "https://x/badge.png", teams[0].ImageURL())
	assert.Equal(t, "https://x/logo.png", teams[1].ImageURL())
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "Chelsea", query.Load())
}

func TestSearchEscapesName(t *testing.T) {
	srv, _, query := newServer(t, http.StatusOK, `{"teams":null}`)

	f := New(srv.URL, 0)
	_, _ = f.Search(context.Background(), "Brighton & Hove Albion")

	assert.Equal(t, "Brighton & Hove Albion", query.Load())
}

func TestSearchNoMatch(t *testing.T) {
	for name, body := range map[string]string{
		"null":  `{"teams":null}`,
		"empty": `{"teams":[]}`,
		"none":  `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv, _, _ := newServer(t, http.StatusOK, body)

			_, err := New(srv.URL, 0).Search(context.Background(), "Nobody FC")
			assert.ErrorIs(t, err, ErrDoesNotExist)
		})
	}
}

func TestSearchFailures(t *testing.T) {
	t.Run("non ok status", func(t *testing.T) {
		srv, _, _ := newServer(t, http.StatusInternalServerError, `oops`)

		_, err := New(srv.URL, 0).Search(context.Background(), "Arsenal")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDoesNotExist)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _, _ := newServer(t, http.StatusOK, `{"teams":[`)

		_, err := New(srv.URL, 0).Search(context.Background(), "Arsenal")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDoesNotExist)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv, _, _ := newServer(t, http.StatusOK, `{}`)
		srv.Close()

		_, err := New(srv.URL, 0).Search(context.Background(), "Arsenal")
		assert.Error(t, err)
	})
}

func TestImageURLPrecedence(t *testing.T) {
	assert.Equal(t, "b", Team{TeamBadge: "b", TeamLogo: "l"}.ImageURL())
	assert.Equal(t, "nb", Team{Badge: "nb", TeamLogo: "l"}.ImageURL())
	assert.Equal(t, "l", Team{TeamLogo: "l", Logo: "nl"}.ImageURL())
	assert.Equal(t, "nl", Team{Logo: "nl"}.ImageURL())
	assert.Empty(t, Team{Name: "Arsenal"}.ImageURL())
}
