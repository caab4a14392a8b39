package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/morningscraper"
	"github.com/etnz/morningscraper/renderer"
)

// outputFlags are the flags shared by the commands printing records.
type outputFlags struct {
	format string
	query  string
	plain  bool
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "json", "Output format: json or markdown")
	f.StringVar(&o.query, "select", "", "JSONPath expression applied to each record, like '$.value'. Implies json.")
	f.BoolVar(&o.plain, "plain", false, "Print markdown as is, without terminal styling")
}

// validate checks the flags before any record is fetched.
func (o *outputFlags) validate() error {
	switch o.format {
	case "json", "markdown":
	default:
		return fmt.Errorf("invalid format %q, want json or markdown", o.format)
	}
	if o.query != "" && o.format != "json" {
		return fmt.Errorf("-select requires json format")
	}
	return nil
}

// write prints r to w according to the flags.
func (o *outputFlags) write(w io.Writer, r morningscraper.Record) error {
	if o.format == "markdown" {
		return o.writeMarkdown(w, r)
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot encode record: %w", err)
	}
	if o.query == "" {
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return fmt.Errorf("cannot decode record: %w", err)
	}
	jval, err := jsonpath.Get(o.query, jobj)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", o.query, err)
	}
	// strings are printed raw, so that they can be used in shell scripts.
	if s, ok := jval.(string); ok {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	data, err = json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("cannot encode %q result: %w", o.query, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func (o *outputFlags) writeMarkdown(w io.Writer, r morningscraper.Record) error {
	md := renderer.RenderRecord(r)
	if o.plain {
		_, err := fmt.Fprintln(w, md)
		return err
	}
	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return fmt.Errorf("cannot render markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
