package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cardtable/internal/server"
	"github.com/osse101/cardtable/internal/spa"
)

func newBackend(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(server.NewRouter(spa.NewHandler(fstest.MapFS{
		spa.IndexFile: {Data: []byte("<html></html>")},
	})))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRender_Card(t *testing.T) {
	var out bytes.Buffer
	opts := options{server: newBackend(t), timeout: 2 * time.Second}

	require.NoError(t, render(context.Background(), &out, opts, "/card/7"))

	assert.Contains(t, out.String(), "<!DOCTYPE html>")
	assert.Contains(t, out.String(), "Card 7")
	assert.Contains(t, out.String(), "#7")
	assert.NotContains(t, out.String(), "<style>")
}

func TestRender_CardsWithStylesheet(t *testing.T) {
	var out bytes.Buffer
	opts := options{server: newBackend(t), timeout: 2 * time.Second, stylesheet: true}

	require.NoError(t, render(context.Background(), &out, opts, "/cards"))

	assert.Contains(t, out.String(), "<h1>Cards</h1>")
	assert.Contains(t, out.String(), "<style>")
	assert.Contains(t, out.String(), "#10")
}

func TestRender_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	opts := options{server: url, timeout: 2 * time.Second}

	require.NoError(t, render(context.Background(), &out, opts, "/hello-server"))
	assert.Contains(t, out.String(), `class="error"`)
	assert.Contains(t, out.String(), "Error fetching data: ")
}

func TestRootCmd_PrintsHome(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--server", "http://127.0.0.1:1", "/"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<h1>Hello Frontend</h1>")
}
