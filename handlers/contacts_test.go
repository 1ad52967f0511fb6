package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivangdevina/TRIA-Contact-hub/coordinator"
	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	store := ds.NewContactsInmem(0,
		ds.ContactFields{Name: "Sarah Johnson", Email: "sarah.johnson@gmail.com", Phone: "+1 (555) 123-4567"},
		ds.ContactFields{Name: "Michael Chen", Email: "michael.chen@outlook.com", Phone: "+1 (555) 987-6543"},
	)
	coord := coordinator.New(store, coordinator.SlogNotifier{Logger: slog.New(slog.DiscardHandler)})

	_, api := humatest.New(t, huma.DefaultConfig("TRIA Contact Hub", "test"))
	huma.AutoRegister(huma.NewGroup(api, "/contacts"), &Contacts{
		Coordinator: coord,
		Now:         func() time.Time { return time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC) },
	})
	return api
}

func decodeList(t *testing.T, body *bytes.Buffer) []ContactModel {
	t.Helper()
	var models []ContactModel
	require.NoError(t, json.Unmarshal(body.Bytes(), &models))
	return models
}

func TestListDefaultsToNameAscending(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/contacts/")
	require.Equal(t, http.StatusOK, resp.Code)

	models := decodeList(t, resp.Body)
	require.Len(t, models, 2)
	assert.Equal(t, "Michael Chen", models[0].Name)
	assert.Equal(t, "Sarah Johnson", models[1].Name)
}

func TestListRecentAndQuery(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/contacts/?sort=recent")
	require.Equal(t, http.StatusOK, resp.Code)
	models := decodeList(t, resp.Body)
	require.Len(t, models, 2)
	assert.Equal(t, "Michael Chen", models[0].Name, "last created first")

	resp = api.Get("/contacts/?q=chen")
	require.Equal(t, http.StatusOK, resp.Code)
	models = decodeList(t, resp.Body)
	require.Len(t, models, 1)
	assert.Equal(t, "Michael Chen", models[0].Name)

	resp = api.Get("/contacts/?q=xyz-no-match")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeList(t, resp.Body))
}

func TestCreate(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/contacts/", map[string]any{
		"name":  "Emily Rodriguez",
		"phone": "+1 (555) 456-7890",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created ContactModel
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotEqual(t, ds.ContactID{}, created.ID)
	assert.Equal(t, "Emily Rodriguez", created.Name)

	resp = api.Get("/contacts/?sort=recent")
	models := decodeList(t, resp.Body)
	require.Len(t, models, 3)
	assert.Equal(t, created.ID, models[0].ID)
}

func TestCreateInvalidFields(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/contacts/", map[string]any{
		"name":  "Emily Rodriguez",
		"email": "user@gamil.com",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var errModel huma.ErrorModel
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errModel))
	require.Len(t, errModel.Errors, 1)
	assert.Equal(t, "body.email", errModel.Errors[0].Location)
	assert.Equal(t, "did you mean user@gmail.com?", errModel.Errors[0].Message)
}

func TestGetAndUpdate(t *testing.T) {
	api := newTestAPI(t)

	models := decodeList(t, api.Get("/contacts/").Body)
	id, err := models[1].ID.MarshalText() // Sarah Johnson
	require.NoError(t, err)

	resp := api.Get("/contacts/" + string(id))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Put("/contacts/"+string(id), map[string]any{
		"name":  "Sarah Johnson-Lee",
		"email": "sjl@gmail.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated ContactModel
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Sarah Johnson-Lee", updated.Name)
	assert.Equal(t, models[1].ID, updated.ID)
}

func TestUpdateUnknownID(t *testing.T) {
	api := newTestAPI(t)

	var zero ds.ContactID
	id, err := zero.MarshalText()
	require.NoError(t, err)

	resp := api.Put("/contacts/"+string(id), map[string]any{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteIsIdempotent(t *testing.T) {
	api := newTestAPI(t)

	models := decodeList(t, api.Get("/contacts/").Body)
	id, err := models[0].ID.MarshalText()
	require.NoError(t, err)

	resp := api.Delete("/contacts/" + string(id))
	assert.Equal(t, http.StatusNoContent, resp.Code)
	resp = api.Delete("/contacts/" + string(id))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	assert.Len(t, decodeList(t, api.Get("/contacts/").Body), 1)
}

func TestExport(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/contacts/export")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `attachment; filename="contacts-2026-08-25.json"`, resp.Header().Get("Content-Disposition"))

	var records []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestVCard(t *testing.T) {
	api := newTestAPI(t)

	models := decodeList(t, api.Get("/contacts/").Body)
	id, err := models[1].ID.MarshalText() // Sarah Johnson
	require.NoError(t, err)

	resp := api.Get("/contacts/" + string(id) + "/vcard")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/vcard")
	assert.Contains(t, resp.Body.String(), "FN:Sarah Johnson")
	assert.Contains(t, resp.Body.String(), "TEL;TYPE=CELL:+1 (555) 123-4567")
}

func TestQRCode(t *testing.T) {
	api := newTestAPI(t)

	models := decodeList(t, api.Get("/contacts/").Body)
	id, err := models[0].ID.MarshalText()
	require.NoError(t, err)

	resp := api.Get("/contacts/" + string(id) + "/qrcode")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}
