package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/usecase"
)

const plainPrompt = "[+] accept  [-] reject  [q] quit > "

// RunPlain runs the workflow as a line-oriented dialogue: each candidate is
// printed to out and one answer per line is read from in. It returns when
// the candidates run out, the load failed, in is exhausted or the user quits.
// Cancelling ctx ends the dialogue with ctx.Err(), even while waiting for input.
func RunPlain(ctx context.Context, wf *usecase.Workflow, in io.Reader, out io.Writer) error {
	if err := wf.Start(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := readLines(in, done)

	session := wf.Session()
	for {
		switch session.State() {
		case usecase.StateError:
			fmt.Fprintln(out, session.ErrorMessage())
			return nil
		case usecase.StateEmpty:
			fmt.Fprintln(out, usecase.EmptyMessage)
			return nil
		}

		current := session.Current()
		if current == nil {
			fmt.Fprintln(out, "No candidates found.")
			return nil
		}
		writePlainCard(out, domain.NewCard(*current))
		fmt.Fprint(out, plainPrompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return *scanErr
			}
			line = l
		}

		switch strings.TrimSpace(line) {
		case "+", "a":
			if err := wf.Accept(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(out, "Could not save %s: %v\n", current.Login, err)
				continue
			}
			fmt.Fprintf(out, "Saved %s.\n", current.Login)
		case "-", "r":
			if err := wf.Reject(ctx); err != nil {
				return err
			}
		case "q":
			return nil
		default:
			fmt.Fprintln(out, "Answer + to accept, - to reject or q to quit.")
		}
	}
}

// readLines scans in on its own goroutine so the caller can stop waiting
// for input. The channel is closed at end of input; the scan error, if any,
// is readable once it is.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, *error) {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr = scanner.Err()
	}()
	return lines, &scanErr
}

func writePlainCard(w io.Writer, card domain.Card) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", card.Name)
	fmt.Fprintf(w, "  Avatar:   %s\n", card.AvatarURL)
	fmt.Fprintf(w, "  Username: %s\n", card.Login)
	fmt.Fprintf(w, "  Location: %s\n", card.Location)
	if card.EmailLink != "" {
		fmt.Fprintf(w, "  Email:    %s\n", card.EmailLink)
	} else {
		fmt.Fprintf(w, "  Email:    %s\n", card.Email)
	}
	fmt.Fprintf(w, "  GitHub:   %s\n", card.ProfileURL)
	fmt.Fprintf(w, "  Company:  %s\n", card.Company)
}
