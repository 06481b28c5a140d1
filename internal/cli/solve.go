package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fibernet/pkg/errors"
	fio "github.com/matzehuels/fibernet/pkg/io"
	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/pipeline"
	"github.com/matzehuels/fibernet/pkg/site"
)

// faultyPrompt is shown by --prompt before reading the faulty probe.
const faultyPrompt = "Enter faulty probe 'faultySiteNum faultyProbeNum': "

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	method      string // tree algorithm: "prim" or "kruskal"
	verify      bool   // cross-check prim totals with kruskal
	format      string // output format: "text", "json" or "table"
	output      string // output file path (stdout if empty)
	faulty      string // "site:probe" to remove after the first build
	prompt      bool   // ask for the faulty probe on stdin
	interactive bool   // pick the faulty probe in a TUI
}

// solveCommand creates the solve command.
//
// It reads one site per line from the input file (or stdin), builds every
// site and writes one cable length per site. Optionally one probe is then
// removed and only its site is rebuilt and reported.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute the cable length of every site",
		Long: `Compute the cable length of every site in file, one site per line.

Each line lists the probes of one site as x,y pairs separated by whitespace:

  500,8000 1000,9500 2000,8500
  8028,5930 1835,5145 8537,9824

With no file, or when file is -, sites are read from stdin.

A faulty probe can be removed afterwards, and its site rebuilt, with
--faulty site:probe, --prompt, or --interactive. Numbers start at 1.`,
		Example: `  fibernet solve sites.txt
  fibernet solve sites.txt --faulty 2:2
  fibernet solve sites.txt --format json --method kruskal -o report.json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("method") {
				opts.method = c.Config.Method
			}
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Format
			}
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSolve(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", string(mst.DefaultMethod), "tree algorithm: prim, kruskal")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check prim totals with kruskal")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, table")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.faulty, "faulty", "", "remove probe site:probe and rebuild its site")
	cmd.Flags().BoolVar(&opts.prompt, "prompt", false, "ask for the faulty probe on stdin")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the faulty probe interactively")
	cmd.MarkFlagsMutuallyExclusive("faulty", "prompt", "interactive")

	_ = cmd.RegisterFlagCompletionFunc("method", cobra.FixedCompletions(
		[]string{string(mst.MethodPrim), string(mst.MethodKruskal)}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatText, formatJSON, formatTable}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (o *solveOpts) validate() error {
	m, err := ferrors.ValidateMethod(o.method)
	if err != nil {
		return err
	}
	o.method = string(m)
	return ferrors.ValidateFormat(o.format, formatText, formatJSON, formatTable)
}

func (c *CLI) runSolve(ctx context.Context, path string, opts solveOpts) (retErr error) {
	logger := loggerFromContext(ctx)

	if path == "-" && (opts.prompt || opts.interactive) {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "--prompt and --interactive need an input file, stdin is already used for sites")
	}

	sites, err := c.readSites(ctx, path)
	if err != nil {
		return err
	}
	for _, w := range c.Config.domainWarnings(sites) {
		logger.Warn(w)
	}

	runner := c.newRunner()
	popts := pipeline.Options{Method: mst.Method(opts.method), Verify: opts.verify, Logger: logger}
	results, buildErr := runner.BuildAll(ctx, sites, popts)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	out, err := openOutput(c.Out, opts.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close %s: %w", opts.output, cerr)
		}
	}()

	// Text and table output is streamed so the totals are visible before
	// the faulty probe is asked for.
	if opts.format != formatJSON {
		if err := writeResults(out, opts.format, results); err != nil {
			return err
		}
	}

	spec, err := c.faultySpec(sites, results, opts)
	if err != nil {
		return err
	}

	var rebuilt *pipeline.Result
	if spec != nil {
		siteIdx, probeIdx := spec.Indices()
		res, err := runner.RemoveFaultyProbe(ctx, sites, siteIdx, probeIdx, popts)
		if err != nil && res.Err == nil {
			return ferrors.Wrap(ferrors.GetCode(ferrors.Classify(err)), err,
				"remove probe %d from site %d", spec.Probe, spec.Site)
		}
		buildErr = errors.Join(buildErr, err)
		rebuilt = &res
		if opts.format == formatTable {
			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("Site %d without probe %d", spec.Site, spec.Probe)))
		}
		if opts.format != formatJSON {
			if err := writeResults(out, opts.format, []pipeline.Result{res}); err != nil {
				return err
			}
		}
	}

	if opts.format == formatJSON {
		report := fio.NewReport(mst.Method(opts.method), results)
		if rebuilt != nil {
			sr := fio.NewSiteReport(*rebuilt)
			report.Rebuilt = &sr
		}
		if err := fio.WriteJSON(out, report); err != nil {
			return err
		}
	}

	if opts.output != "" {
		printSuccess(c.Err, "Wrote report")
		printFile(c.Err, opts.output)
	}
	return buildErr
}

// readSites reads the collection from path ("-" for stdin). Malformed tokens
// are logged as warnings; the affected sites keep the probes read before them.
func (c *CLI) readSites(ctx context.Context, path string) (*site.Collection, error) {
	logger := loggerFromContext(ctx)

	var (
		sites *site.Collection
		err   error
	)
	if path == "-" {
		sites, err = fio.ReadSites(c.In)
	} else {
		sites, err = fio.ImportSites(path)
	}
	if sites == nil {
		return nil, ferrors.Classify(err)
	}
	for _, e := range unjoin(err) {
		logger.Warn("skipped rest of line", "err", e)
	}
	logger.Debug("read sites", "path", path, "sites", sites.Len())
	return sites, nil
}

// unjoin flattens an errors.Join result.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// faultySpec resolves the probe to remove from the flags, or nil for none.
func (c *CLI) faultySpec(sites *site.Collection, results []pipeline.Result, opts solveOpts) (*ferrors.FaultySpec, error) {
	switch {
	case opts.faulty != "":
		spec, err := ferrors.ValidateFaultySpec(opts.faulty)
		if err != nil {
			return nil, err
		}
		return &spec, nil

	case opts.prompt:
		fmt.Fprint(c.Err, faultyPrompt)
		line, err := bufio.NewReader(c.In).ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(line) != "") {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read faulty probe")
		}
		spec, err := ferrors.ValidateFaultySpec(line)
		if err != nil {
			return nil, err
		}
		return &spec, nil

	case opts.interactive:
		p := tea.NewProgram(NewFaultyPickerModel(sites, results), tea.WithInput(c.In), tea.WithOutput(c.Err))
		final, err := p.Run()
		if err != nil {
			return nil, fmt.Errorf("faulty probe picker: %w", err)
		}
		return final.(FaultyPickerModel).Selected, nil
	}
	return nil, nil
}

// writeResults writes results as plain totals or as a table.
func writeResults(w io.Writer, format string, results []pipeline.Result) error {
	if format == formatTable {
		_, err := fmt.Fprintln(w, resultsTable(results))
		return err
	}
	return fio.WriteTotals(w, results)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns w when path is empty, otherwise it creates the file at
// path, overwriting if it exists.
func openOutput(w io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
