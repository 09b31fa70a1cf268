package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscrawler/internal/extractor"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "relative link gets the base domain",
			in:   "/jobs/1",
			want: "https://www.google.com/jobs/1",
		},
		{
			name: "absolute link passes through",
			in:   "https://example.com/jobs/2",
			want: "https://example.com/jobs/2",
		},
		{
			name: "empty string passes through",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeURL(tt.in)
			assert.Equal(t, tt.want, got)
			// Normalization must be idempotent.
			assert.Equal(t, got, NormalizeURL(got))
		})
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL("Data Analyst in kolkata, India")
	assert.Contains(t, got, "https://www.google.com/about/careers/applications/jobs/results/?q=")
	assert.NotContains(t, got, " ", "query must be percent-encoded")
}

func TestExtractListings_EndToEnd(t *testing.T) {
	html := `<html><body><ul>
		<li>
			<a class="WpHeLc" href="/jobs/1">apply</a>
			<h3 class="QJPWVe">Data Analyst</h3>
			<span class="r0wTof">Kolkata, India</span>
		</li>
		<li>
			<a class="WpHeLc" href="https://example.com/jobs/2">apply</a>
			<h3 class="QJPWVe">Data Analyst II</h3>
			<span class="r0wTof">Kolkata, India</span>
		</li>
	</ul></body></html>`

	records, err := extractor.Extract(html, Schema())
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0]["url"])
	assert.Equal(t, "/jobs/1", *records[0]["url"])

	listings := FromRecords(records)
	require.Len(t, listings, 2)

	require.NotNil(t, listings[0].Title)
	assert.Equal(t, "Data Analyst", *listings[0].Title)
	require.NotNil(t, listings[0].Location)
	assert.Equal(t, "Kolkata, India", *listings[0].Location)
	require.NotNil(t, listings[0].URL)
	assert.Equal(t, "https://www.google.com/jobs/1", *listings[0].URL)

	require.NotNil(t, listings[1].Title)
	assert.Equal(t, "Data Analyst II", *listings[1].Title)
	require.NotNil(t, listings[1].URL)
	assert.Equal(t, "https://example.com/jobs/2", *listings[1].URL)
}

func TestFromRecords_NilURLStaysNil(t *testing.T) {
	title := "No Link"
	records := []extractor.Record{
		{"title": &title, "location": nil, "url": nil},
	}

	listings := FromRecords(records)
	require.Len(t, listings, 1)
	assert.Nil(t, listings[0].URL)
	assert.Nil(t, listings[0].Location)
	require.NotNil(t, listings[0].Title)
	assert.Equal(t, "No Link", *listings[0].Title)
}

func TestSchema_Compiles(t *testing.T) {
	_, err := Schema().Compile()
	require.NoError(t, err)
}
