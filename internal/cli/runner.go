package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/command"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options wire the loop to its terminal.
type Options struct {
	In      io.Reader
	Printer *ui.Printer
	Logger  *log.Logger
}

// Run reads one command per line until exit or end of input and
// re-renders the list after each. Only read and storage failures are
// returned; everything else is shown to the user and the loop goes on.
func Run(sess *session.Session, opt Options) error {
	p := opt.Printer
	r := bufio.NewReader(opt.In)

	p.Clear()
	for {
		p.Print(p.ListView(sess.Items(), len(sess.Closed())))
		p.Print("")
		p.Print(p.PromptLine(command.Keywords))

		// Lines have no length limit; a final line without '\n' still runs.
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if err != nil && line == "" {
			if opt.Logger != nil {
				opt.Logger.Debug("end of input")
			}
			p.Clear()
			return nil
		}

		res, err := sess.Apply(command.Parse(line))
		if err != nil {
			return err
		}
		p.Clear()
		if res.Exit() {
			return nil
		}
		printResult(p, res)
	}
}

// -------------- rendering helpers --------------

func printResult(p *ui.Printer, res session.Result) {
	t := p.Theme()
	switch res.Kind {
	case session.Added:
		p.Print(p.OKLine(t.SymAdd, res.Message))
	case session.Closed:
		p.Print(p.OKLine(t.SymClose, res.Message))
	case session.Swapped:
		p.Print(p.OKLine(t.SymSwap, res.Message))
	case session.Listed:
		p.Print(p.HistoryView(res.History))
		p.Print("")
	default:
		p.Print(p.FailLine(res.Message))
	}
}
