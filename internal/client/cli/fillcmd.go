package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
)

// fill sends the current selection (or freshly entered text) to the agent
// to place into the best candidate field. When the agent is unreachable or
// the fill fails, the text is offered on the copy path instead.
func (a *App) fill(ctx context.Context) {
	text := a.selectedText
	if strings.TrimSpace(text) == "" {
		var err error
		text, err = GetMultiline(a.reader, "Text to fill", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("Error: nothing to fill")
		return
	}

	fieldType, ok := a.askFieldType()
	if !ok {
		return
	}

	if err := a.agent.FillForm(ctx, text, fieldType); err != nil {
		a.fallbackToCopy(text, err)
		return
	}
	printlnFn("Filled.")
}

func (a *App) fillField(ctx context.Context) {
	selector, err := GetSimpleText(a.reader, "CSS selector of the field", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	text := a.selectedText
	if strings.TrimSpace(text) == "" {
		text, err = GetMultiline(a.reader, "Text to fill", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}

	if err := a.agent.FillSpecificField(ctx, selector, text); err != nil {
		a.fallbackToCopy(text, err)
		return
	}
	printlnFn("Filled", selector)
}

func (a *App) detect(ctx context.Context) {
	found, err := a.agent.DetectFields(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	if len(found) == 0 {
		printlnFn("No fillable fields on the page.")
		return
	}

	for i, f := range found {
		desc := f.Label
		if desc == "" {
			desc = f.Placeholder
		}
		line := fmt.Sprintf("%d) %s", i+1, f.Selector)
		if f.Type != "" {
			line += " [" + f.Type + "]"
		}
		if desc != "" {
			line += " " + desc
		}
		if f.Preview != "" {
			line += " = " + f.Preview
		}
		printlnFn(line)
	}
}

// quickFill extracts values from the stored resume and asks the agent to
// fill every recognizable field in one pass.
func (a *App) quickFill(ctx context.Context) {
	values := fields.Extract(a.document())
	if len(values) == 0 {
		log.Printf("Error: resume has no values to fill, import one first")
		return
	}

	report, err := a.agent.QuickFill(ctx, values)
	if err != nil {
		if errors.Is(err, common.ErrNoReceiver) {
			log.Printf("Agent unreachable; start the agent and try again")
		} else {
			log.Printf("Error: %s", err.Error())
		}
		return
	}

	printlnFn(fmt.Sprintf("Filled %d field(s), %d failed", report.FilledCount, report.FailedCount))
	for _, f := range report.Filled {
		printlnFn(fmt.Sprintf("  + %-12s %s", f.Type, firstLine(f.Value)))
	}
	for _, f := range report.Failed {
		printlnFn(fmt.Sprintf("  ! %-12s %s", f.Type, f.Error))
	}
}

// fallbackToCopy is the degraded path when a fill cannot reach the page:
// the text is re-printed for manual copying and kept as the selection.
func (a *App) fallbackToCopy(text string, cause error) {
	if errors.Is(cause, common.ErrNoReceiver) {
		log.Printf("Agent unreachable, falling back to copy")
	} else {
		log.Printf("Fill failed (%s), falling back to copy", cause.Error())
	}

	a.selectedText = text
	printlnFn("---------- copy ----------")
	printlnFn(text)
	printlnFn("--------------------------")
}

func (a *App) askFieldType() (fields.Type, bool) {
	answer, err := GetSimpleText(a.reader, "Field type (empty for auto)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return "", false
	}
	if answer == "" {
		return fill.TypeAuto, true
	}
	t := fields.Type(answer)
	if !fields.Valid(t) {
		log.Printf("Error: unknown field type %q", answer)
		return "", false
	}
	return t, true
}
