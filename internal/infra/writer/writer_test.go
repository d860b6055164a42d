package writer

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

var testArticles = []entity.Article{
	{
		Source:        entity.SourceBBC,
		Title:         "Storm batters coast",
		URL:           "https://www.bbc.co.uk/news/uk-1",
		Summary:       "High winds & heavy rain",
		Author:        "Sam Reporter",
		PublishedDate: "2026-02-18T06:30:00Z",
	},
	{
		Source:        entity.SourceSky,
		Title:         "Rail strike called off",
		URL:           "https://news.sky.com/story/2",
		Summary:       "Union reaches deal",
		Author:        "",
		PublishedDate: "",
	},
}

var testNow = time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC)

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "articles.csv")

	require.NoError(t, SaveCSV(testArticles, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"source", "title", "url", "summary", "author", "published_date"}, records[0])
	assert.Equal(t, "BBC News", records[1][0])
	assert.Equal(t, "High winds & heavy rain", records[1][3])
	assert.Equal(t, "", records[2][4], "missing author stays empty, no placeholder")
}

func TestSaveCSV_EmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.csv")

	require.NoError(t, SaveCSV(nil, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "source,title,url,summary,author,published_date\n", string(raw))
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")

	require.NoError(t, SaveJSON(testArticles, path, testNow))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		GeneratedAt string           `json:"generated_at"`
		Total       int              `json:"total"`
		Articles    []entity.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "2026-02-18T07:00:00Z", payload.GeneratedAt)
	assert.Equal(t, 2, payload.Total)
	require.Len(t, payload.Articles, 2)
	assert.Equal(t, "Storm batters coast", payload.Articles[0].Title)
}

func TestSaveHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.html")

	articles := append([]entity.Article{}, testArticles...)
	articles[0].Title = `Storm <b>batters</b> & floods coast`

	require.NoError(t, SaveHTML(articles, path, testNow))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(raw)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "2 articles")
	assert.Contains(t, page, "Storm &lt;b&gt;batters&lt;/b&gt; &amp; floods coast")
	assert.NotContains(t, page, "<b>batters</b>")
}

func TestSaveODT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.odt")

	require.NoError(t, SaveODT(testArticles, path, testNow))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	require.NotEmpty(t, zr.File)
	first := zr.File[0]
	assert.Equal(t, "mimetype", first.Name, "mimetype entry must come first")
	assert.Equal(t, zip.Store, first.Method, "mimetype entry must be stored uncompressed")

	names := make(map[string]*zip.File)
	for _, f := range zr.File {
		names[f.Name] = f
	}
	for _, want := range []string{"mimetype", "META-INF/manifest.xml", "styles.xml", "content.xml"} {
		assert.Contains(t, names, want)
	}

	rc, err := names["content.xml"].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)

	assert.Contains(t, string(content), "Storm batters coast")
	assert.Contains(t, string(content), "High winds &amp; heavy rain")
	assert.Contains(t, string(content), `xlink:href="https://www.bbc.co.uk/news/uk-1"`)
}

func TestSaveDigest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "digests")
	localNow := time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC)

	path, err := SaveDigest(dir, "<div>digest</div>", "Morning Briefing", localNow)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "2026-02-18_07-00_morning.html"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<div>digest</div>", string(raw))

	evening, err := SaveDigest(dir, "<div></div>", "Evening Roundup", localNow.Add(12*time.Hour))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(evening, "2026-02-18_19-00_evening.html"), evening)
}
