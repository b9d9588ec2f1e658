package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ymxu/resumefill/internal/apps"
)

func (a *App) listApps(ctx context.Context) {
	buckets, err := a.apps.List(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	if len(buckets.Pending) == 0 && len(buckets.Submitted) == 0 {
		printlnFn("No applications yet. Use 'appadd' to track one.")
		return
	}

	printApps := func(header string, list []apps.Application) {
		if len(list) == 0 {
			return
		}
		printlnFn(header)
		for _, rec := range list {
			line := fmt.Sprintf("  %s  %s (%s)", shortID(rec.ID), rec.Title, rec.Date)
			if rec.Link != "" {
				line += "  " + rec.Link
			}
			printlnFn(line)
			if rec.Notes != "" {
				printlnFn("          " + firstLine(rec.Notes))
			}
		}
	}

	printApps("Pending:", buckets.Pending)
	printApps("Submitted:", buckets.Submitted)
}

func (a *App) addApp(ctx context.Context) {
	in, ok := a.askApplication(apps.Input{})
	if !ok {
		return
	}

	rec, err := a.apps.Add(ctx, in)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	printlnFn("Added", shortID(rec.ID), rec.Title)
}

func (a *App) editApp(ctx context.Context) {
	rec, ok := a.askRecord(ctx)
	if !ok {
		return
	}

	in, ok := a.askApplication(apps.Input{
		Title:  rec.Title,
		Date:   rec.Date,
		Link:   rec.Link,
		Notes:  rec.Notes,
		Status: rec.Status,
	})
	if !ok {
		return
	}

	if _, err := a.apps.Update(ctx, rec.ID, in); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) toggleApp(ctx context.Context) {
	rec, ok := a.askRecord(ctx)
	if !ok {
		return
	}

	status, err := a.apps.Toggle(ctx, rec.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	printlnFn("Now", string(status))
}

func (a *App) deleteApp(ctx context.Context) {
	rec, ok := a.askRecord(ctx)
	if !ok {
		return
	}
	if err := a.apps.Delete(ctx, rec.ID); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// askRecord resolves a user-entered id prefix to one stored application.
func (a *App) askRecord(ctx context.Context) (*apps.Application, bool) {
	prefix, err := GetSimpleText(a.reader, "Application id (prefix is enough)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, false
	}
	if prefix == "" {
		log.Printf("Error: id is required")
		return nil, false
	}

	buckets, err := a.apps.List(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return nil, false
	}

	var match *apps.Application
	for _, list := range [][]apps.Application{buckets.Pending, buckets.Submitted} {
		for i := range list {
			if hasIDPrefix(list[i].ID, prefix) {
				if match != nil {
					log.Printf("Error: id prefix %q is ambiguous", prefix)
					return nil, false
				}
				match = &list[i]
			}
		}
	}
	if match == nil {
		log.Printf("Error: no application with id %q", prefix)
		return nil, false
	}
	return match, true
}

func (a *App) askApplication(def apps.Input) (apps.Input, bool) {
	prompt := func(label, current string) (string, bool) {
		p := label
		if current != "" {
			p = fmt.Sprintf("%s [%s]", label, current)
		}
		answer, err := GetSimpleText(a.reader, p, os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return "", false
		}
		if answer == "" {
			return current, true
		}
		return answer, true
	}

	var ok bool
	if def.Title, ok = prompt("Position title", def.Title); !ok {
		return def, false
	}
	if def.Date, ok = prompt("Date (YYYY-MM-DD, empty for today)", def.Date); !ok {
		return def, false
	}
	if def.Link, ok = prompt("Link", def.Link); !ok {
		return def, false
	}
	if def.Notes, ok = prompt("Notes", def.Notes); !ok {
		return def, false
	}
	return def, true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func hasIDPrefix(id, prefix string) bool {
	return len(prefix) <= len(id) && id[:len(prefix)] == prefix
}
