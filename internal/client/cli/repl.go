package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	show(ctx context.Context)
	importFile(ctx context.Context)
	exportFile(ctx context.Context)
	addSection(ctx context.Context)
	addEntry(ctx context.Context)
	editEntry(ctx context.Context)
	deleteEntry(ctx context.Context)
	deleteSection(ctx context.Context)
	copyEntry(ctx context.Context)
	fill(ctx context.Context)
	fillField(ctx context.Context)
	detect(ctx context.Context)
	quickFill(ctx context.Context)
	listApps(ctx context.Context)
	addApp(ctx context.Context)
	editApp(ctx context.Context)
	toggleApp(ctx context.Context)
	deleteApp(ctx context.Context)
	panel(ctx context.Context, args []string)
	float(ctx context.Context, args []string)
	resize(ctx context.Context)
	status() string
}

// Run loads the stored resume, starts the connectivity watcher, and
// enters the REPL. It blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.Close() }()

	doc, err := a.resume.Load(ctx)
	if err != nil {
		log.Printf("error loading resume: %v", err)
		doc = nil
	}
	a.doc = doc

	if a.interactive {
		printlnFn("resumefill CLI (type 'help' for commands)")
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.interactive)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Handlers log their own errors; the loop stays resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, prompt bool) {
	for {
		if prompt {
			fmt.Printf("rf %s> ", a.status())
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Resume:   show, import, export, addsection, addentry, edit, delentry, delsection, copy")
			printlnFn("Filling:  fill, fillfield, detect, quickfill")
			printlnFn("Apps:     apps, appadd, appedit, apptoggle, appdel")
			printlnFn("Panel:    panel [open|close|status], float [open|close], resize")
			printlnFn("Other:    help, exit")

		case "show", "list", "l":
			a.show(ctx)
		case "import":
			a.importFile(ctx)
		case "export":
			a.exportFile(ctx)
		case "addsection":
			a.addSection(ctx)
		case "addentry":
			a.addEntry(ctx)
		case "edit":
			a.editEntry(ctx)
		case "delentry":
			a.deleteEntry(ctx)
		case "delsection":
			a.deleteSection(ctx)
		case "copy":
			a.copyEntry(ctx)

		case "fill":
			a.fill(ctx)
		case "fillfield":
			a.fillField(ctx)
		case "detect":
			a.detect(ctx)
		case "quickfill":
			a.quickFill(ctx)

		case "apps":
			a.listApps(ctx)
		case "appadd":
			a.addApp(ctx)
		case "appedit":
			a.editApp(ctx)
		case "apptoggle":
			a.toggleApp(ctx)
		case "appdel":
			a.deleteApp(ctx)

		case "panel":
			a.panel(ctx, args)
		case "float":
			a.float(ctx, args)
		case "resize":
			a.resize(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) status() string {
	return fmt.Sprintf("(%s)", a.Mode)
}
