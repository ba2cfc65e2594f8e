package httpclient_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/gomotogp/httpclient"
	"github.com/andyle182810/gomotogp/testutil"
	"github.com/stretchr/testify/require"
)

type testRider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LegacyID int    `json:"legacy_id"` //nolint:tagliatelle
}

func TestGetJSON_ReturnsTypedResponse(t *testing.T) {
	t.Parallel()

	server, _ := testutil.NewJSONServer(t, http.StatusOK, testRider{ID: "r-93", Name: "Marc", LegacyID: 7444})

	client := httpclient.New(server.URL)

	rider, err := httpclient.GetJSON[testRider](testutil.Context(t), client, "/riders/r-93")

	require.NoError(t, err)
	require.Equal(t, "r-93", rider.ID)
	require.Equal(t, "Marc", rider.Name)
	require.Equal(t, 7444, rider.LegacyID)
}

func TestGetJSON_ReturnsSliceResponse(t *testing.T) {
	t.Parallel()

	server, _ := testutil.NewJSONServer(t, http.StatusOK, []testRider{
		{ID: "r-1", Name: "Pecco", LegacyID: 8026},
		{ID: "r-2", Name: "Jorge", LegacyID: 9116},
	})

	client := httpclient.New(server.URL)

	riders, err := httpclient.GetJSON[[]testRider](testutil.Context(t), client, "/riders")

	require.NoError(t, err)
	require.Len(t, riders, 2)
	require.Equal(t, "Jorge", riders[1].Name)
}

func TestGetJSON_ReturnsZeroValueOnError(t *testing.T) {
	t.Parallel()

	server, _ := testutil.NewJSONServer(t, http.StatusNotFound, map[string]string{})

	client := httpclient.New(server.URL)

	rider, err := httpclient.GetJSON[testRider](testutil.Context(t), client, "/riders/unknown")

	require.ErrorIs(t, err, httpclient.ErrHTTPStatus)
	require.Equal(t, testRider{ID: "", Name: "", LegacyID: 0}, rider)
}
