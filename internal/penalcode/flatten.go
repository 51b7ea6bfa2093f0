package penalcode

import "strings"

// Catalog is the flattened, searchable form of a penal-code document.
type Catalog struct {
	Revision   string
	Items      []Item
	Categories []CategoryView
	Stats      FlattenStats

	byID map[int]Item
}

// CategoryView keeps a category's entries in display order: standalone
// items interleaved with groups (entries that own sub-entries).
type CategoryView struct {
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
}

// Block holds exactly one of Group or Item.
type Block struct {
	Group *Group `json:"group,omitempty"`
	Item  *Item  `json:"item,omitempty"`
}

// Group is a charge entry whose sub-entries are kept together for display.
type Group struct {
	Paragraph string `json:"paragraph"`
	Name      string `json:"name"`
	Note      string `json:"note,omitempty"`
	Items     []Item `json:"items"`
}

type FlattenStats struct {
	Items          int
	Groups         int
	SkippedEntries int
}

// Flatten expands the nested document into a flat item list plus per-
// category display blocks.
//
// Ids are a counter over the fixed traversal order, so they only stay
// stable while the dataset keeps its ordering. Entries with neither
// sub-entries nor an abbreviation are skipped, matching the historical
// dataset which uses such rows as informational headers; they are counted
// in Stats so the skip stays visible.
func Flatten(doc *Document) *Catalog {
	catalog := &Catalog{
		Revision: doc.Revision,
		byID:     make(map[int]Item),
	}

	nextID := 1

	for _, category := range doc.Categories {
		view := CategoryView{Name: category.Name}

		for _, entry := range category.Entries {
			if len(entry.SubEntries) > 0 {
				group := Group{
					Paragraph: entry.Paragraph,
					Name:      entry.Name,
					Note:      entry.Note,
				}

				for _, sub := range entry.SubEntries {
					item := flattenSub(category.Name, entry, sub, nextID)
					nextID++
					catalog.add(item)
					group.Items = append(group.Items, item)
				}

				view.Blocks = append(view.Blocks, Block{Group: &group})
				catalog.Stats.Groups++
				continue
			}

			if strings.TrimSpace(entry.Abbreviation) == "" {
				catalog.Stats.SkippedEntries++
				continue
			}

			item := Item{
				ID:           nextID,
				Category:     category.Name,
				Paragraph:    entry.Paragraph,
				Name:         entry.Name,
				Abbreviation: entry.Abbreviation,
				MinFine:      entry.MinFine,
				MaxFine:      entry.MaxFine,
				MinJail:      entry.MinJail,
				MaxJail:      entry.MaxJail,
				Note:         entry.Note,
				Warning:      Classify(entry.Note, entry.Name),
			}
			nextID++
			catalog.add(item)
			view.Blocks = append(view.Blocks, Block{Item: &item})
		}

		catalog.Categories = append(catalog.Categories, view)
	}

	return catalog
}

// flattenSub expands one sub-entry under its parent. The parent's note is
// joined in only for warning classification; the sub-entry keeps its own
// note for display. Missing paragraph falls back to the parent's.
func flattenSub(categoryName string, parent Entry, sub Entry, id int) Item {
	paragraph := sub.Paragraph
	if paragraph == "" {
		paragraph = parent.Paragraph
	}

	combinedNote := strings.TrimSpace(parent.Note + " " + sub.Note)

	return Item{
		ID:           id,
		Category:     categoryName,
		ParentName:   parent.Name,
		Paragraph:    paragraph,
		Name:         sub.Name,
		Abbreviation: sub.Abbreviation,
		MinFine:      sub.MinFine,
		MaxFine:      sub.MaxFine,
		MinJail:      sub.MinJail,
		MaxJail:      sub.MaxJail,
		Note:         sub.Note,
		Warning:      Classify(combinedNote, sub.Name),
	}
}

func (c *Catalog) add(item Item) {
	c.Items = append(c.Items, item)
	c.byID[item.ID] = item
	c.Stats.Items++
}

// ItemByID looks up a flattened item.
func (c *Catalog) ItemByID(id int) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}
