package newsletter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDirectDocument(t *testing.T) {
	raw := []byte(`{"title":"Week 3","sections":[{"title":"Spain","items":[{"playerName":"Marc Vidal","canFetchStats":true}]}]}`)

	doc := Decode(raw)

	require.NotNil(t, doc)
	assert.Equal(t, "Week 3", doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Marc Vidal", doc.Sections[0].Items[0].PlayerName)
}

func TestDecodeStructuredContentString(t *testing.T) {
	inner := Document{Title: "Week 5", Sections: []Section{{Title: "England"}}}

	innerJSON, err := json.Marshal(inner)
	require.NoError(t, err)

	outer, err := json.Marshal(map[string]any{"structured_content": string(innerJSON)})
	require.NoError(t, err)

	doc := Decode(outer)

	assert.Equal(t, "Week 5", doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "England", doc.Sections[0].Title)
}

func TestDecodeMalformedStructuredContentFallsBack(t *testing.T) {
	raw := []byte(`{"structured_content":"{not json","title":"Fallback Title"}`)

	doc := Decode(raw)

	assert.Equal(t, "Fallback Title", doc.Title)
}

func TestDecodeEnrichedContentObject(t *testing.T) {
	raw := []byte(`{"enriched_content":{"title":"Enriched Week"}}`)

	doc := Decode(raw)

	assert.Equal(t, "Enriched Week", doc.Title)
}

func TestDecodeGarbageYieldsEmptyDocument(t *testing.T) {
	doc := Decode([]byte(`not json at all`))

	require.NotNil(t, doc)
	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.Sections)
}

func TestLinkUnmarshalBothShapes(t *testing.T) {
	var links []Link

	raw := []byte(`["https://example.com/report",{"url":"https://youtu.be/abc","title":"Goal clip"}]`)
	require.NoError(t, json.Unmarshal(raw, &links))

	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/report", links[0].URL)
	assert.Empty(t, links[0].Title)
	assert.Equal(t, "https://youtu.be/abc", links[1].URL)
	assert.Equal(t, "Goal clip", links[1].Title)
}

func TestWeekRangeArrayShape(t *testing.T) {
	var doc Document

	raw := []byte(`{"title":"t","dateRange":["2026-08-10","2026-08-16"]}`)
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.NotNil(t, doc.DateRange)
	assert.Equal(t, "2026-08-10", doc.DateRange.Start)
	assert.Equal(t, "2026-08-16", doc.DateRange.End)

	out, err := json.Marshal(doc.DateRange)
	require.NoError(t, err)
	assert.JSONEq(t, `["2026-08-10","2026-08-16"]`, string(out))
}

func TestStatsAbsenceIsNotZero(t *testing.T) {
	var s Stats

	require.NoError(t, json.Unmarshal([]byte(`{"minutes":90,"goals":0}`), &s))

	require.NotNil(t, s.Goals)
	assert.Zero(t, *s.Goals)
	assert.Nil(t, s.Assists)
}
