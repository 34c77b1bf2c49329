package collect_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/collect"
	"github.com/fwojciec/showtimes/fs"
	"github.com/fwojciec/showtimes/goquery"
	"github.com/fwojciec/showtimes/mock"
	"github.com/fwojciec/showtimes/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><div id="cinemas-at-list">
	<div class="list"><div class="fav_box">Cinema Nova</div>
		<div class="list_item"><span itemprop="name">Jojo Rabbit (2019)</span><div class="showtimes">10:15am | 1:30pm | 4:00</div></div>
		<div class="address"><span>380 Lygon St, Carlton</span><span>| (03) 9347 5331</span></div>
	</div>
	<div class="list"><div class="fav_box">Lido Cinemas</div>
		<div class="list_item"><span itemprop="name">1917 (2019)</span><div class="showtimes">12:00pm | 8:45</div></div>
		<div class="address"><span>675 Glenferrie Rd, Hawthorn</span></div>
	</div>
	<div class="li_group">Within 10 km of 3003</div>
	<div class="list"><div class="fav_box">Village Cinemas Sunshine</div>
		<div class="address"><span>Hampshire Rd, Sunshine</span></div>
	</div>
</div></body></html>`

func testQuery() showtimes.Query {
	return showtimes.Query{Country: showtimes.CountryAU, Zip: "3003", Radius: 10, Date: "2020-01-04"}
}

func staticFetcher(html string, gotURL *string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			if gotURL != nil {
				*gotURL = url
			}
			return html, nil
		},
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("runs the pipeline end to end", func(t *testing.T) {
		t.Parallel()

		var fetched string
		var written *showtimes.Report
		c := &collect.Collector{
			Fetcher:   staticFetcher(page, &fetched),
			Extractor: goquery.NewExtractor(),
			Writers: []showtimes.ReportWriter{&mock.ReportWriter{
				WriteReportFn: func(ctx context.Context, report *showtimes.Report) error {
					written = report
					return nil
				},
			}},
			BaseURL: "http://listings.test",
		}

		result, err := c.Collect(context.Background(), testQuery())
		require.NoError(t, err)

		assert.Equal(t, "http://listings.test/showtimes/AU/3003/2020-01-04?ref_=sh_dt", fetched)
		assert.Equal(t, fetched, result.SourceURL)
		assert.True(t, result.Stopped)
		assert.Equal(t, "Within 10 km of 3003", result.Boundary)

		report := result.Report
		assert.Same(t, report, written)
		assert.Equal(t, showtimes.CountryAU, report.Country)
		assert.Equal(t, "3003", report.Zip)
		assert.Equal(t, showtimes.Radius(10), report.Radius)
		assert.Equal(t, "2020-01-04", report.Date)

		require.Len(t, report.Cinemas, 2)
		assert.Equal(t, "Cinema Nova", report.Cinemas[0].Name)
		assert.Equal(t, []string{"10:15", "13:30", "16:00"}, report.Cinemas[0].Movies[0].Showtimes)
		require.NotNil(t, report.Cinemas[0].Phone)
		assert.Equal(t, "(03) 9347 5331", *report.Cinemas[0].Phone)
		assert.Equal(t, "Lido Cinemas", report.Cinemas[1].Name)
		assert.Equal(t, []string{"12:00", "20:45"}, report.Cinemas[1].Movies[0].Showtimes)
		assert.Nil(t, report.Cinemas[1].Phone)
	})

	t.Run("rejects invalid query before fetching", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					t.Fatal("fetch should not be called")
					return "", nil
				},
			},
		}

		q := testQuery()
		q.Radius = 7

		_, err := c.Collect(context.Background(), q)
		assert.Equal(t, showtimes.EINVALID, showtimes.ErrorCode(err))
	})

	t.Run("keeps not found code from fetcher and writes nothing", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", showtimes.Errorf(showtimes.ENOTFOUND, "failed to get page with status code: 404")
				},
			},
			Extractor: goquery.NewExtractor(),
			Writers: []showtimes.ReportWriter{&mock.ReportWriter{
				WriteReportFn: func(ctx context.Context, report *showtimes.Report) error {
					t.Fatal("writer should not be called")
					return nil
				},
			}},
		}

		result, err := c.Collect(context.Background(), testQuery())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, showtimes.ENOTFOUND, showtimes.ErrorCode(err))
	})

	t.Run("missing root writes no file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cinemaData.json")
		c := &collect.Collector{
			Fetcher:   staticFetcher("<html><body>Please enable cookies</body></html>", nil),
			Extractor: goquery.NewExtractor(),
			Writers:   []showtimes.ReportWriter{fs.NewReportFile(path)},
		}

		_, err := c.Collect(context.Background(), testQuery())

		assert.Equal(t, showtimes.EMISSINGROOT, showtimes.ErrorCode(err))
		assert.NoFileExists(t, path)
	})

	t.Run("stops at first failing writer", func(t *testing.T) {
		t.Parallel()

		second := false
		c := &collect.Collector{
			Fetcher:   staticFetcher(page, nil),
			Extractor: goquery.NewExtractor(),
			Writers: []showtimes.ReportWriter{
				&mock.ReportWriter{WriteReportFn: func(ctx context.Context, report *showtimes.Report) error {
					return errors.New("disk full")
				}},
				&mock.ReportWriter{WriteReportFn: func(ctx context.Context, report *showtimes.Report) error {
					second = true
					return nil
				}},
			},
		}

		_, err := c.Collect(context.Background(), testQuery())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.False(t, second)
	})

	t.Run("archives report with source document", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		t.Cleanup(func() { db.Close() })
		archive := sqlite.NewReportService(db)

		c := &collect.Collector{
			Fetcher:   staticFetcher(page, nil),
			Extractor: goquery.NewExtractor(),
			Archive:   archive,
		}

		result, err := c.Collect(context.Background(), testQuery())
		require.NoError(t, err)
		require.NotEmpty(t, result.ArchiveID)

		got, err := archive.FindReportByID(context.Background(), result.ArchiveID)
		require.NoError(t, err)
		assert.Equal(t, sqlite.HashDocument(page), got.DocumentHash)
		assert.Equal(t, result.SourceURL, got.SourceURL)
		assert.Len(t, got.Report.Cinemas, 2)
	})
}

func TestCollector_CollectHTML(t *testing.T) {
	t.Parallel()

	t.Run("extracts from a loaded page without fetching", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{Extractor: goquery.NewExtractor()}

		result, err := c.CollectHTML(context.Background(), testQuery(), page)

		require.NoError(t, err)
		assert.Empty(t, result.SourceURL)
		assert.Len(t, result.Report.Cinemas, 2)
	})

	t.Run("empty listing yields empty report", func(t *testing.T) {
		t.Parallel()

		c := &collect.Collector{Extractor: goquery.NewExtractor()}

		result, err := c.CollectHTML(context.Background(), testQuery(), `<div id="cinemas-at-list"></div>`)

		require.NoError(t, err)
		assert.NotNil(t, result.Report.Cinemas)
		assert.Empty(t, result.Report.Cinemas)
	})

	t.Run("malformed showtime aborts the report", func(t *testing.T) {
		t.Parallel()

		var wrote bool
		c := &collect.Collector{
			Extractor: goquery.NewExtractor(),
			Writers: []showtimes.ReportWriter{&mock.ReportWriter{WriteReportFn: func(ctx context.Context, report *showtimes.Report) error {
				wrote = true
				return nil
			}}},
		}
		html := `<div id="cinemas-at-list"><div class="list"><div class="fav_box">X</div>
<div class="list_item"><span itemprop="name">Y</span><div class="showtimes">sold out</div></div></div></div>`

		_, err := c.CollectHTML(context.Background(), testQuery(), html)

		assert.Equal(t, showtimes.EMALFORMEDTIME, showtimes.ErrorCode(err))
		assert.False(t, wrote)
	})
}
