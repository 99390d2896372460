package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/markdown"
	"github.com/HendryAvila/bulletcheck/internal/report"
)

// Exit codes beyond the generic 1.
const (
	exitInvalidInput = 2
	exitBelowTarget  = 3
)

type analyzeOptions struct {
	json      bool
	context   string
	detail    string
	failUnder int
}

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	aopts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a list from a file or stdin",
		Long: "Analyze reads a markdown bullet list or a JSON analysis input from the given file, " +
			"or from stdin when the file is omitted or '-'. JSON input starting with '[' is treated " +
			"as an items array.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runAnalyze(cmd, opts, aopts, path)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&aopts.json, "json", false, "Print the analysis as JSON")
	f.StringVar(&aopts.context, "context", "", "Override the list context: document, presentation or reference")
	f.StringVar(&aopts.detail, "detail", report.DetailStandard, "Report detail: summary, standard or full")
	f.IntVar(&aopts.failUnder, "fail-under", 0, "Exit with status 3 when the score is below this value")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *globalOptions, aopts *analyzeOptions, path string) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	logger, err := opts.newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	src, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	raw, err := decodeSource(src)
	if err != nil {
		return &exitError{code: exitInvalidInput, err: err}
	}
	if aopts.context != "" {
		raw["context"] = aopts.context
	}

	res, err := analysis.Analyze(raw, cfg)
	if err != nil {
		var inErr *analysis.InputError
		if errors.As(err, &inErr) {
			return &exitError{code: exitInvalidInput, err: fmt.Errorf("invalid input: %w", err)}
		}
		return err
	}
	logger.Debug("analyzed list",
		zap.String("source", path),
		zap.Int("score", res.OverallScore),
		zap.Int("items", res.ItemCount),
	)

	out := cmd.OutOrStdout()
	if aopts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	} else {
		report.NewPrinter(out, useColor(cfg, out)).Analysis(res, aopts.detail)
	}

	if res.OverallScore < aopts.failUnder {
		return &exitError{
			code: exitBelowTarget,
			err:  fmt.Errorf("score %d is below --fail-under %d", res.OverallScore, aopts.failUnder),
		}
	}
	return nil
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// decodeSource turns file contents into raw analysis input. JSON objects
// pass through, a JSON array becomes the items list, anything else is read
// as markdown.
func decodeSource(src []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(src)
	if len(trimmed) == 0 {
		return nil, errors.New("input is empty")
	}

	switch trimmed[0] {
	case '{':
		var raw map[string]any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
		return raw, nil
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return map[string]any{"items": items}, nil
	default:
		return markdown.Parse(src), nil
	}
}
