// Package importer creates categories from an indentation-structured
// text listing, where nesting depth encodes the parent relationship:
//
//	Expenses
//		Groceries
//			Produce
//		Rent
//
// becomes Expenses as a root with Groceries and Rent below it, and
// Produce below Groceries.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bookkeeper-app/backend/internal/models"
	"gorm.io/gorm"
)

// Entry is one parsed category with the name of its parent. A root
// category has an empty Parent.
type Entry struct {
	Name   string
	Parent string
}

// Parse reads the tree structure from the text. It returns the
// entries in topological order: parents always precede their
// children. Empty lines are ignored; an unindent that does not match
// any outer indentation level is refused.
func Parse(r io.Reader) ([]Entry, error) {
	type level struct {
		name   string
		indent int
	}

	var parents []level
	lastIndent := -1
	lastName := ""
	var entries []Entry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		name := strings.TrimSpace(text)
		if name == "" {
			continue
		}

		indent := len(text) - len(strings.TrimLeft(text, " \t"))

		switch {
		case indent > lastIndent:
			parents = append(parents, level{lastName, lastIndent})
		case indent < lastIndent:
			for indent < lastIndent {
				lastIndent = parents[len(parents)-1].indent
				parents = parents[:len(parents)-1]
			}
			if indent != lastIndent {
				return nil, models.ValidationError{
					Field:  "categories",
					Reason: fmt.Sprintf("unindent in line %d does not match any outer indentation level", line),
				}
			}
		}

		entries = append(entries, Entry{Name: name, Parent: parents[len(parents)-1].name})
		lastName = name
		lastIndent = indent
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// CreateTree persists the parsed entries as categories. Since entries
// are in topological order, every parent is created before its
// children reference it.
func CreateTree(db *gorm.DB, entries []Entry) ([]models.Category, error) {
	created := make(map[string]models.Category, len(entries))
	categories := make([]models.Category, 0, len(entries))

	for _, entry := range entries {
		category := models.Category{Name: entry.Name}
		if entry.Parent != "" {
			parent, ok := created[entry.Parent]
			if !ok {
				return nil, models.ValidationError{
					Field:  "categories",
					Reason: fmt.Sprintf("parent %q does not precede %q", entry.Parent, entry.Name),
				}
			}
			id := parent.ID
			category.ParentID = &id
		}

		err := db.Create(&category).Error
		if err != nil {
			return nil, err
		}

		created[entry.Name] = category
		categories = append(categories, category)
	}

	return categories, nil
}
