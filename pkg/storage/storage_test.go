package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/rest"
)

func TestSaveAndLoadRequest(t *testing.T) {
	fs := fsys.NewMemory()

	req := Request{
		Name:    "get-users",
		Method:  "GET",
		URL:     "{{BASE_URL}}/users",
		Headers: map[string]string{"Accept": "application/json"},
		Query:   map[string]string{"page": "1"},
	}
	require.NoError(t, SaveRequest(fs, req, "/exports/get-users"))

	loaded, err := LoadRequest(fs, "/exports/get-users.yaml")
	require.NoError(t, err)
	assert.Equal(t, req, *loaded)
}

func TestLoadRequest_NameDefaultsToFileName(t *testing.T) {
	fs := fsys.NewMemory()
	require.NoError(t, fs.WriteTextFile("/r/health-check.yml", "method: HEAD\nurl: https://example.com\n"))

	req, err := LoadRequest(fs, "/r/health-check.yml")
	require.NoError(t, err)
	assert.Equal(t, "health-check", req.Name)
	assert.Equal(t, "HEAD", req.Method)
}

func TestLoadRequest_Errors(t *testing.T) {
	fs := fsys.NewMemory()
	require.NoError(t, fs.WriteTextFile("/r/bad.yaml", "name: [unclosed"))

	_, err := LoadRequest(fs, "/r/bad.yaml")
	require.Error(t, err)

	_, err = LoadRequest(fs, "/r/missing.yaml")
	require.Error(t, err)
}

func TestListRequests(t *testing.T) {
	fs := fsys.NewMemory()
	for _, p := range []string{"/r/b.yaml", "/r/a.yml", "/r/nested/c.yaml", "/r/notes.txt"} {
		require.NoError(t, fs.WriteTextFile(p, "name: x\n"))
	}

	files, err := ListRequests(fs, "/r")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yml", "b.yaml", "nested/c.yaml"}, files)

	files, err = ListRequests(fs, "/nowhere")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestToImportSource(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantURL string
		want    rest.Method
	}{
		{
			name:    "query appended",
			req:     Request{Name: "a", Method: "post", URL: "https://x.test/users", Query: map[string]string{"b": "2", "a": "1"}},
			wantURL: "https://x.test/users?a=1&b=2",
			want:    rest.POST,
		},
		{
			name:    "query joins existing",
			req:     Request{Name: "a", Method: "GET", URL: "https://x.test/users?x=0", Query: map[string]string{"q": "go lang"}},
			wantURL: "https://x.test/users?x=0&q=go+lang",
			want:    rest.GET,
		},
		{
			name:    "method defaults to GET",
			req:     Request{Name: "a", URL: "https://x.test"},
			wantURL: "https://x.test",
			want:    rest.GET,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ToImportSource(tt.req, "/dest")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, src.URL)
			assert.Equal(t, tt.want, src.Method)
			assert.Equal(t, "/dest", src.Path)
		})
	}
}

func TestToImportSource_SortsHeadersAndRejectsMethod(t *testing.T) {
	src, err := ToImportSource(Request{
		Name:    "a",
		Headers: map[string]string{"X-Trace": "1", "Accept": "json", "Authorization": "Bearer t"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []rest.KeyValue{
		{Key: "Accept", Value: "json"},
		{Key: "Authorization", Value: "Bearer t"},
		{Key: "X-Trace", Value: "1"},
	}, src.Headers)

	_, err = ToImportSource(Request{Name: "a", Method: "FETCH"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rest.ErrInvalidMethod))
}

func TestImportCollection(t *testing.T) {
	fs := fsys.NewMemory()
	require.NoError(t, fs.WriteTextFile("/in/users.yaml", `name: users
requests:
  - name: list
    method: GET
    url: https://x.test/users
  - name: create
    method: POST
    url: https://x.test/users
    headers:
      Content-Type: application/json
    body:
      name: ada
`))

	col, err := LoadFile(fs, "/in/users.yaml")
	require.NoError(t, err)
	assert.Equal(t, "users", col.Name)

	m := rest.NewManager(fs, "/ws/http")
	entities, err := ImportCollection(m, col, "")
	require.NoError(t, err)
	require.Len(t, entities, 2)

	create, err := m.Open("/ws/http/users/create.POST")
	require.NoError(t, err)
	require.NotNil(t, create)
	assert.Equal(t, rest.BodyJSON, create.Body().Kind)
	assert.JSONEq(t, `{"name":"ada"}`, create.Body().Content)
	assert.Equal(t, []rest.KeyValue{{Key: "Content-Type", Value: "application/json"}}, create.Headers())

	list, err := m.Open("/ws/http/users/list.GET")
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.True(t, list.Body().IsEmpty())
}

func TestLoadFile_SingleRequest(t *testing.T) {
	fs := fsys.NewMemory()
	require.NoError(t, fs.WriteTextFile("/in/ping.yaml", "name: ping\nmethod: GET\nurl: https://x.test/ping\nbody: hello\n"))

	col, err := LoadFile(fs, "/in/ping.yaml")
	require.NoError(t, err)
	assert.Empty(t, col.Name)
	require.Len(t, col.Requests, 1)

	m := rest.NewManager(fs, "/ws/http")
	_, err = ImportCollection(m, col, "")
	require.NoError(t, err)

	e, err := m.Open("/ws/http/ping.GET")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, rest.TextBody("hello"), e.Body())
}

func TestFromEntity(t *testing.T) {
	fs := fsys.NewMemory()
	m := rest.NewManager(fs, "/ws/http")

	e, err := m.Create("create", rest.POST, "")
	require.NoError(t, err)
	e.SetURL("https://x.test/users")
	e.SetHeaders([]rest.KeyValue{{Key: "X", Value: "1"}, {Key: "X", Value: "2"}})
	e.SetBody(rest.JSONBody(`{"id":1}`))

	req := FromEntity(e)
	assert.Equal(t, "create", req.Name)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, map[string]string{"X": "2"}, req.Headers)
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, req.Body)

	e.SetBody(rest.TextBody("plain"))
	assert.Equal(t, "plain", FromEntity(e).Body)

	e.SetBody(rest.NoBody())
	assert.Nil(t, FromEntity(e).Body)
}

func TestExportFolder(t *testing.T) {
	fs := fsys.NewMemory()
	m := rest.NewManager(fs, "/ws/http")

	require.NoError(t, m.CreateFolder("users", ""))
	users := fs.Join(m.Root(), "users")
	_, err := m.Create("list", rest.GET, users)
	require.NoError(t, err)
	require.NoError(t, m.CreateFolder("admin", users))
	_, err = m.Create("promote", rest.PATCH, fs.Join(users, "admin"))
	require.NoError(t, err)

	nodes, err := m.GetRequests()
	require.NoError(t, err)
	folder := rest.FindNode(nodes, users).(*rest.FolderNode)

	col, err := ExportFolder(m, folder)
	require.NoError(t, err)
	assert.Equal(t, "users", col.Name)
	require.Len(t, col.Requests, 2)
	assert.Equal(t, "promote", col.Requests[0].Name, "nested folders come first")
	assert.Equal(t, "list", col.Requests[1].Name)

	require.NoError(t, SaveCollection(fs, col, "/out/users.yaml"))
	reloaded, err := LoadFile(fs, "/out/users.yaml")
	require.NoError(t, err)
	assert.Equal(t, col.Name, reloaded.Name)
	assert.Equal(t, col.Requests, reloaded.Requests)
}
