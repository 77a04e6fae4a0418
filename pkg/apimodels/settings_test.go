package apimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/dgerrors"
)

func TestIndexerSettingsCoercesLegacyStrings(t *testing.T) {
	// older servers emit numbers and booleans as strings
	payload := `{"path":"/opt/data","zip":"true","effort":"100","thumbnail":true,"thumbnailSize":"128","watcher":"false"}`

	var s IndexerSettings
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	require.Equal(t, "/opt/data", s.Path)
	require.True(t, s.Zip)
	require.Equal(t, 100, s.Effort)
	require.True(t, s.Thumbnail)
	require.Equal(t, 128, s.ThumbnailSize)
	require.False(t, s.Watcher)
}

func TestIndexerSettingsModernPayload(t *testing.T) {
	payload := `{"path":"/data","zip":false,"effort":50,"thumbnail":false,"thumbnailSize":64,"watcher":true}`

	var s IndexerSettings
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	require.Equal(t, IndexerSettings{
		Path:          "/data",
		Zip:           false,
		Effort:        50,
		Thumbnail:     false,
		ThumbnailSize: 64,
		Watcher:       true,
	}, s)
}

func TestCoerceBool(t *testing.T) {
	for value, want := range map[string]bool{"true": true, "false": false, "banana": false} {
		got, err := CoerceBool(value)
		require.NoError(t, err)
		require.Equal(t, want, got, "value %q", value)
	}

	got, err := CoerceBool(true)
	require.NoError(t, err)
	require.True(t, got)

	_, err = CoerceBool(12.5)
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeInvalidServerOutput))
}

func TestCoerceInt(t *testing.T) {
	got, err := CoerceInt("128")
	require.NoError(t, err)
	require.Equal(t, 128, got)

	got, err = CoerceInt(float64(100))
	require.NoError(t, err)
	require.Equal(t, 100, got)

	_, err = CoerceInt("not a number")
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeInvalidServerOutput))
}

func TestServiceStatusAcceptsLegacyFieldName(t *testing.T) {
	var legacy ServiceStatus
	require.NoError(t, json.Unmarshal([]byte(`{"running":true,"autostart":false,"port":6666}`), &legacy))
	require.True(t, legacy.IsRunning)
	require.Equal(t, 6666, legacy.Port)

	var modern ServiceStatus
	require.NoError(t, json.Unmarshal([]byte(`{"isRunning":false,"autostart":true,"port":"1045"}`), &modern))
	require.False(t, modern.IsRunning)
	require.True(t, modern.Autostart)
	require.Equal(t, 1045, modern.Port)
}

func TestConfigureServiceRequestSendsOnlySetFields(t *testing.T) {
	port := 1045
	req := ConfigureServiceRequest{Settings: ServiceSettings{Port: &port}}
	hr := req.ToHTTPRequest()

	require.Equal(t, "1045", hr.Params.Get("port"))
	require.False(t, hr.Params.Has("autostart"))
}

func TestFormatParamValue(t *testing.T) {
	for value, want := range map[interface{}]string{
		"abc":        "abc",
		true:         "true",
		false:        "false",
		42:           "42",
		int64(7):     "7",
		float64(1.5): "1.5",
	} {
		got, err := FormatParamValue(value)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := FormatParamValue(struct{}{})
	require.Error(t, err)
	require.True(t, dgerrors.IsCode(err, dgerrors.CodeValidation))
}
