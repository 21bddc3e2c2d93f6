package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corte-report-go/internal/config"
	"corte-report-go/internal/logger"
)

const cutCSV = "Usuario;Registros Recorrido;Contactados;Contacto Efectivo;Contacto No Valido;Venta;No Aplica\n" +
	"A;10;5;4;0;2;0\n" +
	"B;20;10;2;0;3;0\n" +
	"Totales;30;15;6;0;5;0\n"

func testServer() *httptest.Server {
	cfg := &config.Config{TopN: 5, Format: "docx", MaxUploadMB: 1, Author: "Equipo"}
	return httptest.NewServer(newMux(cfg, logger.NewTo(&bytes.Buffer{})))
}

func upload(t *testing.T, url, filename, content string, fields map[string]string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(url+"/reports", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func TestReports_JSON(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp := upload(t, srv.URL, "corte.csv", cutCSV, map[string]string{"top": "1"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Source string `json:"source"`
		Rows   int    `json:"rows"`
		KPI    struct {
			TotalRecorrido int64 `json:"tot_recorridos"`
		} `json:"kpi"`
		Top struct {
			Entries []struct {
				User string `json:"usuario"`
			} `json:"entries"`
		} `json:"top"`
		Commentary []string `json:"commentary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "corte.csv", got.Source)
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, int64(30), got.KPI.TotalRecorrido)
	require.Len(t, got.Top.Entries, 1)
	assert.Equal(t, "B", got.Top.Entries[0].User)
	assert.NotEmpty(t, got.Commentary)
}

func TestReports_Markdown(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp := upload(t, srv.URL, "corte.csv", cutCSV, map[string]string{"format": "md"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/markdown")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Reporte_Corte_corte_")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# Análisis General del Corte")
	assert.Contains(t, buf.String(), "Equipo")
}

func TestReports_SchemaError(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp := upload(t, srv.URL, "corte.csv", "Usuario,Venta\nA,1\n", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var got errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Contains(t, got.Missing, "Contactados")
	assert.Contains(t, got.Present, "Venta")
}

func TestReports_BadRequests(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp := upload(t, srv.URL, "", "", map[string]string{"top": "3"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = upload(t, srv.URL, "corte.csv", cutCSV, map[string]string{"top": "-1"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = upload(t, srv.URL, "corte.pdf", "nope", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = upload(t, srv.URL, "corte.csv", cutCSV, map[string]string{"format": "pdf"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	get, err := http.Get(srv.URL + "/reports")
	require.NoError(t, err)
	get.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, get.StatusCode)
}

func TestReports_UploadTooLarge(t *testing.T) {
	cfg := &config.Config{TopN: 5, Format: "docx", MaxUploadMB: 1}
	mux := newMux(cfg, logger.NewTo(&bytes.Buffer{}))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "corte.csv")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("A;1;1;1;0;1;0\n"), (2<<20)/14))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/reports", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var got errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "upload exceeds 1 MB", got.Error)
}

func TestHealthz(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
