package mp3quran

import "qurangen/internal/schema"

// Field schemas for the three record families served by the API. Wire
// names follow the v3 endpoints; in-memory names follow the app's Kotlin
// model classes.

// SurahSchema maps one chapter. Surahs render inline, one per line.
var SurahSchema = &schema.Schema{
	TypeName: "Surah",
	Inline:   true,
	Fields: []schema.Field{
		{Name: "id", Kind: schema.KindNumber},
		{Name: "name", Kind: schema.KindString},
		{Name: "startPage", WireName: "start_page", Kind: schema.KindNumber},
		{Name: "endPage", WireName: "end_page", Kind: schema.KindNumber},
		{Name: "makkia", Kind: schema.KindNumber},
		{Name: "type", Kind: schema.KindNumber},
	},
}

// MoshafSchema maps one recitation. The surah id list stays opaque text;
// the app parses it, not this pipeline.
var MoshafSchema = &schema.Schema{
	TypeName: "Moshaf",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.KindNumber},
		{Name: "name", Kind: schema.KindString},
		{Name: "server", Kind: schema.KindString},
		{Name: "surahsCount", WireName: "surah_total", Kind: schema.KindNumber},
		{Name: "moshafType", WireName: "moshaf_type", Kind: schema.KindNumber},
		{Name: "surahIdsStr", WireName: "surah_list", Kind: schema.KindString},
	},
}

// ReciterSchema maps one reciter with their owned recitations. The id
// carries the app's value-class adapter suffix.
var ReciterSchema = &schema.Schema{
	TypeName: "Reciter",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.KindNumber, Suffix: ".asReciterId"},
		{Name: "name", Kind: schema.KindString},
		{Name: "letter", Kind: schema.KindString},
		{Name: "date", Kind: schema.KindString},
		{Name: "moshafList", WireName: "moshaf", Kind: schema.KindList, Elem: MoshafSchema},
	},
}
