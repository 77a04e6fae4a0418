package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
)

// settingsHandler is a stateful mock of the indexer settings endpoints.
type settingsHandler struct {
	values map[string]string
}

func newSettingsHandler() *settingsHandler {
	return &settingsHandler{values: map[string]string{
		"path": "/opt/data", "zip": "false", "effort": "100",
		"thumbnail": "true", "thumbnailSize": "128", "watcher": "false",
	}}
}

func (h *settingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost:
		for k, vs := range r.URL.Query() {
			h.values[k] = vs[0]
		}
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/management/settings/index":
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"path":%q,"zip":%s,"effort":%q,"thumbnail":%s,"thumbnailSize":%q,"watcher":%s}`,
			h.values["path"], h.values["zip"], h.values["effort"],
			h.values["thumbnail"], h.values["thumbnailSize"], h.values["watcher"])
	default:
		// individual fields arrive as a plain text scalar
		field := strings.TrimPrefix(r.URL.Path, "/management/settings/index/")
		value, ok := h.values[field]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, value)
	}
}

func TestIndexerSettingsRoundTrip(t *testing.T) {
	c := newTestClient(t, newSettingsHandler())
	ctx := context.Background()

	require.NoError(t, c.SetIndexerSetting(ctx, apimodels.IndexerFieldZip, true))
	value, err := c.GetIndexerSetting(ctx, apimodels.IndexerFieldZip)
	require.NoError(t, err)
	require.Equal(t, true, value)

	require.NoError(t, c.SetIndexerSetting(ctx, apimodels.IndexerFieldZip, false))
	value, err = c.GetIndexerSetting(ctx, apimodels.IndexerFieldZip)
	require.NoError(t, err)
	require.Equal(t, false, value)

	// bulk form followed by a single-field get
	require.NoError(t, c.SetIndexerSettings(ctx, map[string]interface{}{
		apimodels.IndexerFieldZip:    false,
		apimodels.IndexerFieldEffort: 80,
	}))
	value, err = c.GetIndexerSetting(ctx, apimodels.IndexerFieldZip)
	require.NoError(t, err)
	require.Equal(t, false, value)
	value, err = c.GetIndexerSetting(ctx, apimodels.IndexerFieldEffort)
	require.NoError(t, err)
	require.Equal(t, 80, value)
}

func TestGetIndexerSettingsCoercesTypes(t *testing.T) {
	c := newTestClient(t, newSettingsHandler())

	settings, err := c.GetIndexerSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, &apimodels.IndexerSettings{
		Path: "/opt/data", Zip: false, Effort: 100,
		Thumbnail: true, ThumbnailSize: 128, Watcher: false,
	}, settings)
}

func TestGetIndexerSettingsLegacyStringBody(t *testing.T) {
	// the first call answers with the settings JSON-encoded as a string
	// body; later calls answer normally
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		doc := `{"path":"/opt/data","zip":true,"effort":"100","thumbnail":"true","thumbnailSize":"128","watcher":false}`
		if calls == 1 {
			fmt.Fprintf(w, "%q", doc)
			return
		}
		fmt.Fprint(w, doc)
	})
	c := newTestClient(t, handler)

	want := &apimodels.IndexerSettings{
		Path: "/opt/data", Zip: true, Effort: 100,
		Thumbnail: true, ThumbnailSize: 128, Watcher: false,
	}
	for i := 0; i < 2; i++ {
		settings, err := c.GetIndexerSettings(context.Background())
		require.NoError(t, err, "call %d", i+1)
		require.Equal(t, want, settings, "call %d", i+1)
	}
}

func TestSetIndexerSettingsUnknownFieldIsStillSent(t *testing.T) {
	var saw map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		saw = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))

	err := c.SetIndexerSettings(context.Background(), map[string]interface{}{
		"zip":           true,
		"someNewOption": "on",
	})
	require.NoError(t, err)
	require.Equal(t, "true", saw["zip"][0])
	require.Equal(t, "on", saw["someNewOption"][0])
}

func TestSetIndexerSettingsBadValueFailsBeforeNetwork(t *testing.T) {
	var called bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	err := c.SetIndexerSettings(context.Background(), map[string]interface{}{
		"zip": struct{ X int }{1},
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestServiceStatusAndControl(t *testing.T) {
	running := false
	handler := http.NewServeMux()
	handler.HandleFunc("/management/dicom/storage", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if v := r.URL.Query().Get("running"); v != "" {
				running = v == "true"
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		// legacy field name on the wire
		writeJSON(t, w, map[string]interface{}{"running": running, "autostart": false, "port": 6666})
	})
	c := newTestClient(t, handler)
	ctx := context.Background()

	status, err := c.Storage().Status(ctx)
	require.NoError(t, err)
	require.False(t, status.IsRunning)
	require.Equal(t, 6666, status.Port)

	require.NoError(t, c.Storage().Start(ctx))
	status, err = c.Storage().Status(ctx)
	require.NoError(t, err)
	require.True(t, status.IsRunning)

	require.NoError(t, c.Storage().Stop(ctx))
	status, err = c.Storage().Status(ctx)
	require.NoError(t, err)
	require.False(t, status.IsRunning)
}

func TestServiceConfigureSendsOnlyProvidedFields(t *testing.T) {
	var saw map[string][]string
	handler := http.NewServeMux()
	handler.HandleFunc("/management/dicom/query", func(w http.ResponseWriter, r *http.Request) {
		saw = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	})
	c := newTestClient(t, handler)

	autostart := true
	err := c.QueryRetrieve().Configure(context.Background(), apimodels.ServiceSettings{Autostart: &autostart})
	require.NoError(t, err)
	require.Equal(t, "true", saw["autostart"][0])
	_, portSent := saw["port"]
	require.False(t, portSent)
}

func TestRemoteStorages(t *testing.T) {
	var puts []map[string][]string
	handler := http.NewServeMux()
	handler.HandleFunc("/management/settings/storage/dicom", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []map[string]interface{}{
				{"aetitle": "REMOTE1", "ip": "10.0.0.2", "port": 104},
			})
		case http.MethodPut:
			puts = append(puts, r.URL.Query())
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	c := newTestClient(t, handler)
	ctx := context.Background()

	storages, err := c.ListRemoteStorages(ctx)
	require.NoError(t, err)
	require.Len(t, storages, 1)
	require.Equal(t, "REMOTE1", storages[0].AETitle)

	remote := apimodels.RemoteStorage{AETitle: "REMOTE2", IP: "10.0.0.3", Port: 104}
	require.NoError(t, c.AddRemoteStorage(ctx, remote))
	require.NoError(t, c.RemoveRemoteStorage(ctx, remote))

	require.Len(t, puts, 2)
	_, addHadType := puts[0]["type"]
	require.False(t, addHadType)
	require.Equal(t, "remove", puts[1]["type"][0])
}

func TestAETitleRoundTrip(t *testing.T) {
	aetitle := "DICOOGLE-STORAGE"
	handler := http.NewServeMux()
	handler.HandleFunc("/management/settings/dicom", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			aetitle = r.URL.Query().Get("aetitle")
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(t, w, map[string]string{"aetitle": aetitle})
	})
	c := newTestClient(t, handler)
	ctx := context.Background()

	got, err := c.GetAETitle(ctx)
	require.NoError(t, err)
	require.Equal(t, "DICOOGLE-STORAGE", got)

	require.NoError(t, c.SetAETitle(ctx, "NEW-TITLE"))
	got, err = c.GetAETitle(ctx)
	require.NoError(t, err)
	require.Equal(t, "NEW-TITLE", got)
}

func TestTransferSettings(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/management/settings/transfer", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			q := r.URL.Query()
			require.Equal(t, "1.2.840.10008.1.2", q.Get("uid"))
			require.Equal(t, "ExplicitVRLittleEndian", q.Get("option"))
			require.Equal(t, "true", q.Get("value"))
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(t, w, []map[string]interface{}{
			{
				"uid":     "1.2.840.10008.1.2",
				"sop_name": "ImplicitVRLittleEndian",
				"options": []map[string]interface{}{{"name": "ExplicitVRLittleEndian", "value": false}},
			},
		})
	})
	c := newTestClient(t, handler)
	ctx := context.Background()

	syntaxes, err := c.GetTransferSettings(ctx)
	require.NoError(t, err)
	require.Len(t, syntaxes, 1)
	require.Equal(t, "1.2.840.10008.1.2", syntaxes[0].UID)
	require.Len(t, syntaxes[0].Options, 1)

	require.NoError(t, c.SetTransferOption(ctx, "1.2.840.10008.1.2", "ExplicitVRLittleEndian", true))
}
