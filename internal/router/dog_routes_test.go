package router

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDogs is a DogRepository whose store is unreachable.
type failingDogs struct{}

var errStoreDown = errors.New("connection refused")

func (failingDogs) List(context.Context) ([]model.Dog, error) { return nil, errStoreDown }
func (failingDogs) Create(context.Context, *model.Dog) error  { return errStoreDown }
func (failingDogs) Update(context.Context, *model.Dog) error  { return errStoreDown }
func (failingDogs) Delete(context.Context, int) error         { return errStoreDown }

func TestDogsListStartsEmpty(t *testing.T) {
	r := newTestRouter(t, nil)

	w := serve(t, r, request{method: http.MethodGet, path: "/api/dogs"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dogs":[]}`, w.Body.String())
}

func TestDogsCreateDefaultsAndNulls(t *testing.T) {
	r := newTestRouter(t, nil)

	id := createAs(t, r, "/api/dogs", `{"name":"Rex","breed":"Borzoi"}`)
	assert.Equal(t, 1, id)

	dogs := list(t, r, "/api/dogs", "dogs", "")
	require.Len(t, dogs, 1)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Rex",
		"gender": null,
		"breed": "Borzoi",
		"titles": [],
		"achievements": null,
		"parents": null,
		"image_url": null
	}`, mustJSON(t, dogs[0]))
}

func TestDogsListedInIDOrder(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, name := range []string{"A", "B", "C"} {
		createAs(t, r, "/api/dogs", `{"name":"`+name+`"}`)
	}

	dogs := list(t, r, "/api/dogs", "dogs", "guest")
	require.Len(t, dogs, 3)
	for i, name := range []string{"A", "B", "C"} {
		d := dogs[i].(map[string]interface{})
		assert.Equal(t, float64(i+1), d["id"])
		assert.Equal(t, name, d["name"])
	}
}

func TestDogsUpdateOverwritesEveryField(t *testing.T) {
	r := newTestRouter(t, nil)
	id := createAs(t, r, "/api/dogs", `{"name":"Rex","gender":"male","titles":["CH RUS"]}`)

	w := serve(t, r, request{
		method: http.MethodPut,
		path:   "/api/dogs",
		role:   "admin",
		body:   `{"id":1,"name":"Max"}`,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	dogs := list(t, r, "/api/dogs", "dogs", "")
	require.Len(t, dogs, 1)
	d := dogs[0].(map[string]interface{})
	assert.Equal(t, float64(id), d["id"])
	assert.Equal(t, "Max", d["name"])
	assert.Nil(t, d["gender"])
	assert.Equal(t, []interface{}{}, d["titles"])
}

func TestDogsUpdateRequiresID(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, body := range []string{`{"name":"Max"}`, `{"id":0,"name":"Max"}`} {
		w := serve(t, r, request{method: http.MethodPut, path: "/api/dogs", role: "admin", body: body})
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		out := decode(t, w)
		assert.Equal(t, "Validation failed", out["error"])
		assert.Contains(t, out["fields"], "id")
	}
}

func TestDogsMutationsOnMissingRowsSucceed(t *testing.T) {
	r := newTestRouter(t, nil)

	w := serve(t, r, request{method: http.MethodPut, path: "/api/dogs", role: "admin", body: `{"id":99,"name":"Ghost"}`})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = serve(t, r, request{method: http.MethodDelete, path: "/api/dogs?id=99", role: "admin"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	assert.Empty(t, list(t, r, "/api/dogs", "dogs", ""))
}

func TestDogsDelete(t *testing.T) {
	r := newTestRouter(t, nil)
	createAs(t, r, "/api/dogs", `{"name":"A"}`)
	createAs(t, r, "/api/dogs", `{"name":"B"}`)

	w := serve(t, r, request{method: http.MethodDelete, path: "/api/dogs?id=1", role: "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	dogs := list(t, r, "/api/dogs", "dogs", "")
	require.Len(t, dogs, 1)
	assert.Equal(t, "B", dogs[0].(map[string]interface{})["name"])
}

func TestDogsDeleteRejectsBadID(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{"/api/dogs", "/api/dogs?id=", "/api/dogs?id=abc", "/api/dogs?id=-3"} {
		w := serve(t, r, request{method: http.MethodDelete, path: path, role: "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Invalid id", decode(t, w)["error"], path)
	}
}

func TestDogsStoreFailureIs500(t *testing.T) {
	repos := memory.New(nil)
	repos.Dogs = failingDogs{}
	r := newTestRouter(t, repos)

	cases := []request{
		{method: http.MethodGet, path: "/api/dogs"},
		{method: http.MethodPost, path: "/api/dogs", role: "admin", body: `{"name":"Rex"}`},
		{method: http.MethodPut, path: "/api/dogs", role: "admin", body: `{"id":1}`},
		{method: http.MethodDelete, path: "/api/dogs?id=1", role: "admin"},
	}
	for _, req := range cases {
		t.Run(req.method, func(t *testing.T) {
			w := serve(t, r, req)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
		})
	}
}
