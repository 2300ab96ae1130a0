package capability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html>
<head><title>Ignored</title><style>body { color: red }</style></head>
<body>
  <header>Site header</header>
  <nav>Home | About</nav>
  <script>console.log("tracking")</script>
  <article>
    <h1>Gold   prices surge</h1>
    <p>The price of gold reached
       2,350 USD per ounce today.</p>
  </article>
  <footer>Copyright 2026</footer>
</body>
</html>`

func TestScraperExtractsVisibleText(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	s := NewScraper()
	out, err := s.Call(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, out, "Gold prices surge")
	assert.Contains(t, out, "The price of gold reached 2,350 USD per ounce today.")

	assert.NotContains(t, out, "tracking")
	assert.NotContains(t, out, "color: red")
	assert.NotContains(t, out, "Site header")
	assert.NotContains(t, out, "Home | About")
	assert.NotContains(t, out, "Copyright 2026")
}

func TestScraperCapsOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>" + strings.Repeat("word ", 5000) + "</body></html>"))
	}))
	defer server.Close()

	s := NewScraper()
	s.maxChars = 100
	out, err := s.Call(context.Background(), server.URL)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 100)
}

func TestScraperHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	s := NewScraper()
	_, err := s.Call(context.Background(), server.URL)
	assert.ErrorContains(t, err, "404")
}

func TestScraperUnreachableHost(t *testing.T) {
	s := NewScraper()
	_, err := s.Call(context.Background(), "http://127.0.0.1:1")
	assert.Error(t, err)
}
