package folio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds an authenticated client against a test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "testtenant", zerolog.Nop())
	require.NoError(t, err)
	client.token = "valid-token"

	return client
}

func TestInstances(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/instance-storage/instances", r.URL.Path)
		assert.Equal(t, `(hrid=="1234567890" NOT discoverySuppress==true)`, r.URL.Query().Get("query"))
		assert.Equal(t, "testtenant", r.Header.Get("X-Okapi-Tenant"))
		assert.Equal(t, "valid-token", r.Header.Get("X-Okapi-Token"))

		json.NewEncoder(w).Encode(map[string]any{
			"instances": []map[string]string{{"id": "instance-id-1"}, {"id": "instance-id-2"}},
		})
	})

	ids, err := client.Instances(context.Background(), "1234567890")
	require.NoError(t, err)
	assert.Equal(t, []string{"instance-id-1", "instance-id-2"}, ids)
}

func TestInstancesNoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"instances": []map[string]string{}})
	})

	ids, err := client.Instances(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInstancesUnparsableResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprintln(w, "Access for user 'testuser' requires permission: inventory-storage.instances.collection.get")
	})

	ids, err := client.Instances(context.Background(), "1234567890")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestHoldings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holdings-storage/holdings", r.URL.Path)
		assert.Equal(t, `(instanceId=="instance-id-1" NOT discoverySuppress==true)`, r.URL.Query().Get("query"))

		json.NewEncoder(w).Encode(map[string]any{
			"holdingsRecords": []map[string]string{
				{"id": "holding-id-1"},
				{"id": "holding-id-2"},
				{"id": "holding-id-3"},
				{"id": "holding-id-4"},
				{"id": "holding-id-5"},
			},
		})
	})

	ids, err := client.Holdings(context.Background(), "instance-id-1")
	require.NoError(t, err)

	// Response order must survive
	assert.Equal(t, []string{"holding-id-1", "holding-id-2", "holding-id-3", "holding-id-4", "holding-id-5"}, ids)
}

func TestHoldingsUnparsableResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "<html>okapi is down</html>")
	})

	ids, err := client.Holdings(context.Background(), "instance-id-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item-storage/items", r.URL.Path)
		assert.Equal(t, `(holdingsRecordId=="holding-id-1" NOT discoverySuppress==true)`, r.URL.Query().Get("query"))

		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{{"id": "holding-id-1-item-1"}, {"id": "holding-id-1-item-2"}},
		})
	})

	ids, err := client.Items(context.Background(), "holding-id-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"holding-id-1-item-1", "holding-id-1-item-2"}, ids)
}

func TestItemsUnparsableResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Invalid token")
	})

	ids, err := client.Items(context.Background(), "holding-id-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSearchOmitsTokenHeaderWhenAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Okapi-Token"]
		assert.False(t, present, "unauthenticated request must not carry a token header")
		json.NewEncoder(w).Encode(map[string]any{"instances": []map[string]string{}})
	})
	client.token = ""

	_, err := client.Instances(context.Background(), "1234567890")
	require.NoError(t, err)
}

func TestSearchEncodesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t,
			"query=%28hrid%3D%3D%22a+b%22+NOT+discoverySuppress%3D%3Dtrue%29",
			r.URL.RawQuery)
		json.NewEncoder(w).Encode(map[string]any{"instances": []map[string]string{}})
	})

	_, err := client.Instances(context.Background(), "a b")
	require.NoError(t, err)
}

func TestResolverTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(server.URL, "testtenant", zerolog.Nop())
	require.NoError(t, err)
	server.Close()

	_, err = client.Holdings(context.Background(), "instance-id-1")
	require.Error(t, err)
}
