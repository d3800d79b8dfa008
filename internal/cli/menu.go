package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	cliadapter "github.com/example/desk/internal/adapters/cli"
	"github.com/example/desk/internal/ports/primary"
)

// ActivityLimit is how many activity entries the menu shows.
const ActivityLimit = 20

// MaxAnswerLength caps a single form answer, in bytes.
const MaxAnswerLength = 4096

// errInputEnded reports that input ran out in the middle of a form.
var errInputEnded = errors.New("input ended")

const menuText = `
==============================================
  CUSTOMER SERVICE DESK
==============================================
1. View service queue
2. Serve next customer (dequeue)
3. View request history
4. Add request to history (push)
5. Remove last request from history (pop)
6. Add customer to queue (enqueue)
7. Check status (queue and history)
8. View activity log
0. Exit
==============================================`

var errorColor = color.New(color.FgRed)

// Menu is the interactive driver for the desk. It reads one option per line.
type Menu struct {
	desk *cliadapter.DeskAdapter
	in   *bufio.Reader
	out  io.Writer
	err  error // read error other than io.EOF
}

// NewMenu creates a menu reading from in and writing prompts to out.
func NewMenu(desk *cliadapter.DeskAdapter, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		desk: desk,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run loops until the user picks 0 or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, menuText)

		line, ok := m.prompt("Choose an option: ")
		if !ok {
			fmt.Fprintln(m.out)
			return m.err
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			errorColor.Fprintln(m.out, "Invalid input. Please enter a number.")
			continue
		}

		if option == 0 {
			fmt.Fprintln(m.out, "Service desk closed.")
			return nil
		}

		if !m.dispatch(ctx, option) {
			// Input ended in the middle of a form.
			fmt.Fprintln(m.out)
			return m.err
		}
		fmt.Fprintln(m.out)
	}
}

// dispatch runs one menu option. It returns false when input ran out.
func (m *Menu) dispatch(ctx context.Context, option int) bool {
	var err error
	switch option {
	case 1:
		m.desk.ShowQueue(ctx)
	case 2:
		err = m.desk.ServeNext(ctx)
	case 3:
		m.desk.ShowHistory(ctx)
	case 4:
		fmt.Fprintln(m.out, "\n--- Add Request to History ---")
		var fields []string
		fields, err = m.form("Request ID (REQxxx): ", "Description: ")
		if errors.Is(err, errInputEnded) {
			return false
		}
		if err == nil {
			err = m.desk.AddRequest(ctx, fields[0], fields[1])
		}
	case 5:
		err = m.desk.RemoveLast(ctx)
	case 6:
		fmt.Fprintln(m.out, "\n--- Add Customer to Queue ---")
		var fields []string
		fields, err = m.form("Customer ID (CLIxxx): ", "Name: ", "Reason: ")
		if errors.Is(err, errInputEnded) {
			return false
		}
		if err == nil {
			err = m.desk.AddCustomer(ctx, fields[0], fields[1], fields[2])
		}
	case 7:
		m.desk.Status(ctx)
	case 8:
		err = m.desk.Activity(ctx, primary.ActivityFilters{Limit: ActivityLimit})
	default:
		errorColor.Fprintln(m.out, "Invalid option. Try again.")
	}

	if err != nil {
		errorColor.Fprintf(m.out, "Error: %v\n", err)
	}
	return true
}

// form prompts for each label in turn and returns the trimmed answers.
// Every label is asked even if an earlier answer is too long, so the next
// line read is always a menu option.
func (m *Menu) form(labels ...string) ([]string, error) {
	values := make([]string, len(labels))
	var tooLong error
	for i, label := range labels {
		v, ok := m.prompt(label)
		if !ok {
			return nil, errInputEnded
		}
		if len(v) > MaxAnswerLength && tooLong == nil {
			tooLong = fmt.Errorf("answer to %q is too long (max %d characters)", strings.TrimSuffix(label, ": "), MaxAnswerLength)
		}
		values[i] = strings.TrimSpace(v)
	}
	if tooLong != nil {
		return nil, tooLong
	}
	return values, nil
}

// prompt reads one line of any length. It returns false once input is
// exhausted or unreadable.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}
