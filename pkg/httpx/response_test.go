package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aussiebroadwan/notekeeper/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"id": "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"id":"1"}`, rec.Body.String())
}

func TestDecodeForm(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        map[string]string
		wantErr     bool
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"email":"a@b.c","password":"pw"}`,
			want:        map[string]string{"email": "a@b.c", "password": "pw"},
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			body:        `{"refreshToken":"abc"}`,
			want:        map[string]string{"refreshToken": "abc"},
		},
		{
			name: "no content type",
			body: `{"message":"hi"}`,
			want: map[string]string{"message": "hi"},
		},
		{
			name:        "json null is absent",
			contentType: "application/json",
			body:        `{"refreshToken":null}`,
			want:        map[string]string{},
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        "",
			want:        map[string]string{},
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"refreshToken": {"abc"}}.Encode(),
			want:        map[string]string{"refreshToken": "abc"},
		},
		{
			name:        "invalid json",
			contentType: "application/json",
			body:        `{"email":`,
			wantErr:     true,
		},
		{
			name:        "unsupported",
			contentType: "text/plain",
			body:        "hello",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := httpx.DecodeForm(req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
