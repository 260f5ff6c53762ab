package mp3quran

import (
	"encoding/json"
	"strings"
	"testing"

	"qurangen/internal/schema"
)

func decodeObject(t *testing.T, data string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}

	return obj
}

func TestSurahSchema_LiteralFixture(t *testing.T) {
	wire := decodeObject(t, `{"id": 1, "name": "Al-Fatiha", "start_page": 1, "end_page": 1, "makkia": 1, "type": 1}`)

	rec, err := schema.Map(wire, SurahSchema)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	expected := `Surah(id = 1, name = "Al-Fatiha", startPage = 1, endPage = 1, makkia = 1, type = 1)`

	got := schema.NewSerializer(4).Serialize(rec, 0)
	if got != expected {
		t.Errorf("Expected exactly:\n%s\nGot:\n%s", expected, got)
	}
}

func TestReciterSchema_BlockLayout(t *testing.T) {
	wire := decodeObject(t, `{
		"id": 1,
		"name": "Ibrahim Al-Akdar",
		"letter": "A",
		"date": "2017-11-23 14:40:50",
		"moshaf": [
			{
				"id": 11,
				"name": "Murattal",
				"server": "https://server.mp3quran.net/akdr/",
				"surah_total": 114,
				"moshaf_type": 11,
				"surah_list": "1,2,3"
			}
		]
	}`)

	rec, err := schema.Map(wire, ReciterSchema)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	expected := strings.Join([]string{
		"        Reciter(",
		"                id = 1.asReciterId,",
		`                name = "Ibrahim Al-Akdar",`,
		`                letter = "A",`,
		`                date = "2017-11-23 14:40:50",`,
		"                moshafList = listOf(",
		"                        Moshaf(",
		"                                id = 11,",
		`                                name = "Murattal",`,
		`                                server = "https://server.mp3quran.net/akdr/",`,
		"                                surahsCount = 114,",
		"                                moshafType = 11,",
		`                                surahIdsStr = "1,2,3"`,
		"                        )",
		"                )",
		"        )",
	}, "\n")

	got := schema.NewSerializer(4).Serialize(rec, 1)
	if got != expected {
		t.Errorf("Reciter layout mismatch.\nExpected:\n%s\nGot:\n%s", expected, got)
	}
}

func TestReciterSchema_ZeroMoshafs(t *testing.T) {
	wire := decodeObject(t, `{"id": 2, "name": "x", "letter": "x", "date": "", "moshaf": []}`)

	rec, err := schema.Map(wire, ReciterSchema)
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	got := schema.NewSerializer(4).Serialize(rec, 1)
	if !strings.Contains(got, "moshafList = listOf()") {
		t.Errorf("Expected empty moshaf list literal, got:\n%s", got)
	}
}

func TestReciterSchema_TwoRecitersSplitOnBlankLine(t *testing.T) {
	moshaf := `{"id": 1, "name": "m", "server": "s", "surah_total": 114, "moshaf_type": 11, "surah_list": "1"}`
	reciters := []map[string]any{
		decodeObject(t, `{"id": 1, "name": "a", "letter": "a", "date": "", "moshaf": [`+moshaf+`,`+moshaf+`]}`),
		decodeObject(t, `{"id": 2, "name": "b", "letter": "b", "date": "", "moshaf": [`+moshaf+`,`+moshaf+`]}`),
	}

	records, err := schema.MapList(reciters, ReciterSchema)
	if err != nil {
		t.Fatalf("MapList failed: %v", err)
	}

	got := schema.NewSerializer(4).SerializeList("sampleReciters", records, true)

	body := strings.TrimSuffix(strings.TrimPrefix(got, "val sampleReciters = listOf(\n"), "\n)\n")

	chunks := strings.Split(body, ",\n\n")
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 top-level chunks, got %d", len(chunks))
	}

	if !strings.Contains(chunks[0], "id = 1.asReciterId") {
		t.Errorf("Expected first chunk to hold reciter 1, got:\n%s", chunks[0])
	}

	if !strings.Contains(chunks[1], "id = 2.asReciterId") {
		t.Errorf("Expected second chunk to hold reciter 2, got:\n%s", chunks[1])
	}
}
