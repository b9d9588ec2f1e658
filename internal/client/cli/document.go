package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ymxu/resumefill/internal/resume"
)

func (a *App) document() *resume.Document {
	if a.doc == nil {
		a.doc = &resume.Document{}
	}
	return a.doc
}

func (a *App) show(ctx context.Context) {
	doc := a.document()
	if doc.Empty() {
		printlnFn("Resume is empty. Use 'import' or 'addsection' to get started.")
		return
	}

	for si, s := range doc.Sections {
		for gi, g := range s.Groups {
			if g.Title == "" {
				printlnFn(fmt.Sprintf("%d.%d [%s]", si+1, gi+1, s.Name))
			} else {
				printlnFn(fmt.Sprintf("%d.%d [%s-%s]", si+1, gi+1, s.Name, g.Title))
			}
			for ei, e := range g.Entries {
				line := e.Value
				if e.Label != "" {
					line = e.Label + "：" + e.Value
				}
				printlnFn(fmt.Sprintf("    %d) %s", ei+1, firstLine(line)))
			}
		}
	}
}

// firstLine keeps multi-line values from wrecking the listing.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func (a *App) importFile(ctx context.Context) {
	path, err := GetSimpleText(a.reader, "Enter path of the resume file (.md)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		log.Printf("Error: only .md or .markdown files can be imported")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	doc, err := a.resume.ImportText(ctx, filepath.Base(path), string(data))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	a.doc = doc
	printlnFn(fmt.Sprintf("Imported %d section(s) from %s", len(doc.Sections), filepath.Base(path)))
}

func (a *App) exportFile(ctx context.Context) {
	doc := a.document()
	if doc.Empty() {
		log.Printf("Error: nothing to export, resume is empty")
		return
	}

	name := fmt.Sprintf("resume-%s.md", time.Now().Format("2006-01-02"))
	text := a.resume.ExportText(doc)

	if err := os.WriteFile(name, []byte(text+"\n"), 0o644); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	printlnFn("Exported to", name)
}

func (a *App) addSection(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Section name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	title, err := GetSimpleText(a.reader, "Group title (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.resume.AddSection(ctx, a.document(), name, title); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) addEntry(ctx context.Context) {
	si, gi, ok := a.askGroup()
	if !ok {
		return
	}

	label, err := GetSimpleText(a.reader, "Label (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	value, err := GetMultiline(a.reader, "Value", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.resume.AddEntry(ctx, a.document(), si, gi, resume.Entry{Label: label, Value: value}); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) editEntry(ctx context.Context) {
	si, gi, ei, ok := a.askEntry()
	if !ok {
		return
	}

	label, err := GetSimpleText(a.reader, "New label (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	value, err := GetMultiline(a.reader, "New value", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.resume.EditEntry(ctx, a.document(), si, gi, ei, label, value); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) deleteEntry(ctx context.Context) {
	si, gi, ei, ok := a.askEntry()
	if !ok {
		return
	}
	if err := a.resume.DeleteEntry(ctx, a.document(), si, gi, ei); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) deleteSection(ctx context.Context) {
	si, err := GetIndex(a.reader, "Section number", -1, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.resume.DeleteSection(ctx, a.document(), si); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// copyEntry remembers one entry's value as the session selection and
// prints it in a copy-friendly block. The selection is what 'fill' sends.
func (a *App) copyEntry(ctx context.Context) {
	si, gi, ei, ok := a.askEntry()
	if !ok {
		return
	}

	doc := a.document()
	if si < 0 || si >= len(doc.Sections) ||
		gi < 0 || gi >= len(doc.Sections[si].Groups) ||
		ei < 0 || ei >= len(doc.Sections[si].Groups[gi].Entries) {
		log.Printf("Error: no such entry")
		return
	}

	value := doc.Sections[si].Groups[gi].Entries[ei].Value
	a.selectedText = value

	printlnFn("---------- copy ----------")
	printlnFn(value)
	printlnFn("--------------------------")
}

func (a *App) askGroup() (si, gi int, ok bool) {
	si, err := GetIndex(a.reader, "Section number", -1, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, 0, false
	}
	gi, err = GetIndex(a.reader, "Group number (empty for the first group)", -1, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, 0, false
	}
	return si, gi, true
}

func (a *App) askEntry() (si, gi, ei int, ok bool) {
	si, gi, ok = a.askGroup()
	if !ok {
		return 0, 0, 0, false
	}
	if gi == -1 {
		gi = 0
	}
	ei, err := GetIndex(a.reader, "Entry number", -1, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, 0, 0, false
	}
	return si, gi, ei, true
}
