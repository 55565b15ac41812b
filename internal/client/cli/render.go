package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 40
)

// termWidth is a seam over the terminal size lookup.
var termWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < minWidth {
		return defaultWidth
	}
	return w
}

// renderTable prints recs numbered from 1, fitting name and email into width.
func renderTable(w io.Writer, recs []customer.Record, width int) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "(no customers)")
		return
	}
	if width < minWidth {
		width = minWidth
	}

	// "  #  " + name + " " + email + " disc " + " del"
	fixed := 4 + 1 + 1 + 5 + 4
	nameW := (width - fixed) * 2 / 5
	emailW := width - fixed - nameW

	fmt.Fprintf(w, "%4s %-*s %-*s %4s %3s\n", "#", nameW, "Name", emailW, "Email", "Disc", "Del")
	for i, r := range recs {
		del := ""
		if r.Removable {
			del = "yes"
		}
		fmt.Fprintf(w, "%4d %-*s %-*s %3d%% %3s\n",
			i+1,
			nameW, clip(r.FullName(), nameW),
			emailW, clip(r.Email, emailW),
			r.Discount, del)
	}
}

// clip cuts s to at most n runes, marking the cut with "~".
func clip(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n <= 1 {
		return string(rs[:n])
	}
	return string(rs[:n-1]) + "~"
}

var fieldOrder = []struct {
	key, label string
}{
	{"FirstName", "First name"},
	{"LastName", "Last name"},
	{"Email", "Email"},
	{"Discount", "Discount"},
}

func renderRecord(w io.Writer, r customer.Record, errs map[string]string) {
	id := r.ID
	if id == "" {
		id = "(new)"
	}
	values := map[string]string{
		"FirstName": r.FirstName,
		"LastName":  r.LastName,
		"Email":     r.Email,
		"Discount":  fmt.Sprintf("%d", r.Discount),
	}

	fmt.Fprintf(w, "%-11s %s\n", "ID", id)
	for _, f := range fieldOrder {
		line := strings.TrimRight(fmt.Sprintf("%-11s %s", f.label, values[f.key]), " ")
		if msg, ok := errs[f.key]; ok {
			line += "   <- " + msg
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%-11s %t\n", "Removable", r.Removable)
}
