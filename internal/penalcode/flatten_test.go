package penalcode

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int { return &n }

func testDocument() *Document {
	return &Document{
		Revision: "2024-01",
		Categories: []Category{
			{
				Name: "Közlekedési szabálysértések",
				Entries: []Entry{
					{
						Paragraph:    "1. §",
						Name:         "Gyorshajtás",
						MinFine:      intPtr(500),
						MaxFine:      intPtr(1000),
						Abbreviation: "GYH",
					},
					{
						Paragraph: "2. §",
						Name:      "Ittas vezetés",
						Note:      "jogosítvány bevonása",
						SubEntries: []Entry{
							{
								Name:         "Enyhe fokozat",
								MinFine:      intPtr(800),
								MaxFine:      intPtr(1500),
								Abbreviation: "IV-1",
								Note:         "első alkalom",
							},
							{
								Paragraph:    "2/b. §",
								Name:         "Súlyos fokozat",
								MinFine:      intPtr(2000),
								MaxFine:      intPtr(4000),
								MinJail:      NumericJail(10),
								MaxJail:      NumericJail(20),
								Abbreviation: "IV-2",
							},
						},
					},
					{
						Paragraph: "3. §",
						Name:      "Közlekedési alcím (csak fejléc)",
					},
				},
			},
			{
				Name: "Köztörvényes bűncselekmények",
				Entries: []Entry{
					{
						Paragraph:    "10. §",
						Name:         "Hatóság akadályozása",
						MaxJail:      TextJail("+15 perc"),
						Abbreviation: "HA",
					},
				},
			},
		},
	}
}

func TestFlatten_IDsAreSequential(t *testing.T) {
	catalog := Flatten(testDocument())

	if len(catalog.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(catalog.Items))
	}

	for i, item := range catalog.Items {
		if item.ID != i+1 {
			t.Fatalf("item %d has id %d, ids must follow traversal order", i, item.ID)
		}
	}

	if _, ok := catalog.ItemByID(3); !ok {
		t.Fatal("lookup by id failed")
	}
}

func TestFlatten_GroupsKeepSubEntriesTogether(t *testing.T) {
	catalog := Flatten(testDocument())

	blocks := catalog.Categories[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks (leaf + group), got %d", len(blocks))
	}

	if blocks[0].Item == nil || blocks[0].Item.Abbreviation != "GYH" {
		t.Fatalf("first block should be the GYH leaf, got %+v", blocks[0])
	}

	group := blocks[1].Group
	if group == nil || len(group.Items) != 2 {
		t.Fatalf("second block should be a 2-item group, got %+v", blocks[1])
	}

	if group.Items[0].ParentName != "Ittas vezetés" {
		t.Fatalf("sub-entry lost parent name: %+v", group.Items[0])
	}
}

func TestFlatten_SubEntryInheritsContext(t *testing.T) {
	catalog := Flatten(testDocument())

	first, _ := catalog.ItemByID(2)
	if first.Paragraph != "2. §" {
		t.Fatalf("sub-entry without paragraph should inherit parent's, got %q", first.Paragraph)
	}
	if first.Note != "első alkalom" {
		t.Fatalf("sub-entry must keep its own note for display, got %q", first.Note)
	}
	// Warning comes from the parent's note joined with its own.
	if first.Warning != WarningLicenseBan {
		t.Fatalf("expected parent note to drive classification, got %s", first.Warning)
	}

	second, _ := catalog.ItemByID(3)
	if second.Paragraph != "2/b. §" {
		t.Fatalf("sub-entry with its own paragraph must keep it, got %q", second.Paragraph)
	}
}

func TestFlatten_SkipsAbbreviationlessLeaves(t *testing.T) {
	catalog := Flatten(testDocument())

	if catalog.Stats.SkippedEntries != 1 {
		t.Fatalf("expected 1 skipped header entry, got %d", catalog.Stats.SkippedEntries)
	}

	for _, item := range catalog.Items {
		if item.Name == "Közlekedési alcím (csak fejléc)" {
			t.Fatal("header entry must not be flattened into an item")
		}
	}
}

func TestParse_AcceptsBothLayouts(t *testing.T) {
	wrapped := []byte(`{"revision":"r1","kategoriak":[{"kategoria_nev":"A","tetelek":[{"megnevezes":"X","rovidites":"X"}]}]}`)
	doc, err := Parse(wrapped)
	if err != nil {
		t.Fatalf("wrapped layout: %v", err)
	}
	if doc.Revision != "r1" || len(doc.Categories) != 1 {
		t.Fatalf("wrapped layout decoded wrong: %+v", doc)
	}

	bare := []byte(`[{"kategoria_nev":"A","tetelek":[{"megnevezes":"X","rovidites":"X"}]}]`)
	doc, err = Parse(bare)
	if err != nil {
		t.Fatalf("bare layout: %v", err)
	}
	if len(doc.Categories) != 1 {
		t.Fatalf("bare layout decoded wrong: %+v", doc)
	}

	if _, err := Parse([]byte(`{"not":"a penal code"}`)); err == nil {
		t.Fatal("expected error for unusable payload")
	}
}

func TestJailValue_TolerantDecode(t *testing.T) {
	var entry Entry
	payload := []byte(`{
		"megnevezes": "Teszt",
		"rovidites": "T",
		"min_fegyhaz": null,
		"max_fegyhaz": "+15 perc",
		"min_birsag": 100,
		"max_birsag": null
	}`)

	if err := json.Unmarshal(payload, &entry); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if entry.MinJail.Valid {
		t.Fatal("null jail field must decode as absent")
	}
	if !entry.MaxJail.Valid || entry.MaxJail.Text != "+15 perc" {
		t.Fatalf("string jail field decoded wrong: %+v", entry.MaxJail)
	}
	if entry.MinFine == nil || *entry.MinFine != 100 {
		t.Fatalf("numeric fine decoded wrong: %v", entry.MinFine)
	}
	if entry.MaxFine != nil {
		t.Fatal("null fine must decode as nil")
	}
}
