package search

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
)

// fakeCluster impersonates the parts of an elasticsearch node the engine talks to.
// Searches return every stored document in insertion order.
type fakeCluster struct {
	mu sync.Mutex

	server *httptest.Server

	indexExists  bool
	createBodies []string
	docs         map[string]json.RawMessage
	order        []string
	bulkRequests int
	searchBodies []string

	// document ids the fake rejects with a mapper error
	rejectIDs map[string]bool
	// when set, every request fails with this status
	failStatus int
}

func newFakeCluster(t *testing.T) *fakeCluster {
	f := &fakeCluster{
		docs:      map[string]json.RawMessage{},
		rejectIDs: map[string]bool{},
	}
	f.server = httptest.NewServer(f)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCluster) engine(t *testing.T) Engine {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{f.server.URL},
	})
	require.NoError(t, err)
	return NewWithClient(client, "pois")
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if f.failStatus != 0 {
		w.WriteHeader(f.failStatus)
		fmt.Fprint(w, `{"error":{"type":"cluster_block_exception","reason":"index unavailable"},"status":503}`)
		return
	}

	body, _ := io.ReadAll(r.Body)
	path := strings.Trim(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "":
		fmt.Fprint(w, `{"version":{"number":"8.15.0"},"tagline":"You Know, for Search"}`)

	case r.Method == http.MethodHead && len(parts) == 1:
		if f.indexExists {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}

	case r.Method == http.MethodPut && len(parts) == 1:
		if f.indexExists {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"error":{"type":"resource_already_exists_exception","reason":"index [%s] already exists"},"status":400}`, parts[0])
			return
		}
		f.indexExists = true
		f.createBodies = append(f.createBodies, string(body))
		fmt.Fprintf(w, `{"acknowledged":true,"index":%q}`, parts[0])

	case len(parts) == 3 && parts[1] == "_doc":
		id := parts[2]
		if f.rejectIDs[id] {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"type":"mapper_parsing_exception","reason":"failed to parse field [location]"},"status":400}`)
			return
		}
		f.store(id, body)
		fmt.Fprintf(w, `{"_id":%q,"result":"created"}`, id)

	case parts[len(parts)-1] == "_bulk":
		f.bulkRequests++
		f.bulk(w, body)

	case parts[len(parts)-1] == "_delete_by_query":
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"error":{"type":"index_not_found_exception","reason":"no such index [%s]"},"status":404}`, parts[0])
			return
		}
		deleted := len(f.order)
		f.docs = map[string]json.RawMessage{}
		f.order = nil
		fmt.Fprintf(w, `{"took":1,"deleted":%d,"failures":[]}`, deleted)

	case parts[len(parts)-1] == "_search":
		f.searchBodies = append(f.searchBodies, string(body))
		f.search(w)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeCluster) store(id string, doc []byte) {
	if _, ok := f.docs[id]; !ok {
		f.order = append(f.order, id)
	}
	f.docs[id] = json.RawMessage(doc)
}

func (f *fakeCluster) bulk(w http.ResponseWriter, body []byte) {
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")

	var (
		items  []string
		errors bool
	)
	for i := 0; i+1 < len(lines); i += 2 {
		var action bulkAction
		if err := json.Unmarshal([]byte(lines[i]), &action); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		id := action.Index.ID
		if f.rejectIDs[id] {
			errors = true
			items = append(items, fmt.Sprintf(`{"index":{"_id":%q,"status":400,"error":{"type":"mapper_parsing_exception","reason":"failed to parse"}}}`, id))
			continue
		}
		f.store(id, []byte(lines[i+1]))
		items = append(items, fmt.Sprintf(`{"index":{"_id":%q,"status":201,"result":"created"}}`, id))
	}

	fmt.Fprintf(w, `{"took":1,"errors":%t,"items":[%s]}`, errors, strings.Join(items, ","))
}

func (f *fakeCluster) search(w http.ResponseWriter) {
	hits := make([]string, 0, len(f.order))
	for _, id := range f.order {
		hits = append(hits, fmt.Sprintf(`{"_id":%q,"_score":1.0,"_source":%s}`, id, f.docs[id]))
	}
	fmt.Fprintf(w, `{"took":1,"hits":{"total":{"value":%d,"relation":"eq"},"hits":[%s]}}`,
		len(f.order), strings.Join(hits, ","))
}
