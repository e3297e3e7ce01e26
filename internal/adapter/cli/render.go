package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ppc-optimizer/internal/adapter/export"
	"ppc-optimizer/internal/core/bidding"
	"ppc-optimizer/internal/core/domain"
)

var (
	reduceColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	increaseColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	holdColor     = color.New(color.FgYellow).SprintFunc()
)

// view is one command result prepared for every output format.
type view struct {
	table export.Table
	// json is encoded as-is for --format json.
	json any
	// yaml is encoded for --format yaml; nil means the table is used.
	yaml any
	// highlight is the column coloured by the row's band, -1 for none.
	highlight int
	bands     map[int]bidding.Band
	footer    string
}

func suggestView(records []domain.CampaignRecord) view {
	if records == nil {
		records = []domain.CampaignRecord{}
	}
	t := export.FromCampaignRecords(records)
	v := view{
		table:     t,
		json:      records,
		highlight: len(t.Header) - 1,
		bands:     make(map[int]bidding.Band, len(records)),
	}
	for i, rec := range records {
		if rec.ACOS != nil {
			v.bands[i] = bidding.Classify(*rec.ACOS)
		}
	}

	s := bidding.Summarize(records)
	v.footer = fmt.Sprintf("%d rows: %d reduced, %d increased, %d held. Total bid %s -> %s (%s)",
		s.Rows, s.Reduced, s.Increased, s.Held,
		s.TotalCurrentBid.StringFixed(2), s.TotalSuggestedBid.StringFixed(2), signed(s.Delta()))
	return v
}

func maxBidsView(records []domain.MaxBidRecord) view {
	if records == nil {
		records = []domain.MaxBidRecord{}
	}
	t := export.FromMaxBids(records)
	v := view{
		table:     t,
		json:      records,
		highlight: len(t.Header) - 1,
		bands:     make(map[int]bidding.Band, len(records)),
	}
	target := bidding.DefaultTargetACOS
	for i, rec := range records {
		target = rec.TargetACOS
		if rec.Record.CurrentBid == nil {
			continue
		}
		switch cur := *rec.Record.CurrentBid; {
		case rec.NewMaxBid > cur:
			v.bands[i] = bidding.BandIncrease
		case rec.NewMaxBid < cur:
			v.bands[i] = bidding.BandReduce
		default:
			v.bands[i] = bidding.BandHold
		}
	}
	v.footer = fmt.Sprintf("%d rows at target ACOS %s%%", len(records), decimal.NewFromFloat(target).String())
	return v
}

func brandShareView(rows []domain.BrandShareRow) view {
	if rows == nil {
		rows = []domain.BrandShareRow{}
	}
	return view{
		table:     export.FromBrandShare(rows),
		json:      rows,
		yaml:      rows,
		highlight: -1,
		footer:    fmt.Sprintf("%d opportunities", len(rows)),
	}
}

// render writes v to the command output in the selected format and exports
// it when requested.
func (app *CLIApp) render(cmd *cobra.Command, opts options, v view) error {
	out := cmd.OutOrStdout()

	switch opts.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v.json, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case FormatYAML:
		doc := v.yaml
		if doc == nil {
			node, err := tableNode(v.table)
			if err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			doc = node
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		rendered, err := pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
			WithData(v.tableData()).
			Srender()
		if err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		fmt.Fprintln(out, rendered)
		if len(v.table.Rows) == 0 {
			fmt.Fprint(out, pterm.Warning.Sprintln("No rows"))
		}
		fmt.Fprint(out, pterm.Info.Sprintln(v.footer))
	}

	if opts.export == "" {
		return nil
	}
	path, err := export.Write(v.table, opts.export, opts.exportDir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.ErrOrStderr(), pterm.Success.Sprintfln("Exported to %s", path))
	return nil
}

func (v view) tableData() pterm.TableData {
	data := pterm.TableData{v.table.Header}
	for i, row := range v.table.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = displayCell(cell)
		}
		if band, ok := v.bands[i]; ok && v.highlight >= 0 && v.highlight < len(cells) {
			cells[v.highlight] = paint(band, cells[v.highlight])
		}
		data = append(data, cells)
	}
	return data
}

// tableNode builds a YAML sequence of mappings that keeps the column order
// of t.
func tableNode(t export.Table) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, name := range t.Header {
			var cell any
			if i < len(row) {
				cell = row[i]
			}
			val := &yaml.Node{}
			if err := val.Encode(cell); err != nil {
				return nil, err
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, val)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

// displayCell rounds floats to four places for the terminal.
func displayCell(v any) string {
	if f, ok := v.(float64); ok {
		return decimal.NewFromFloat(f).Round(4).String()
	}
	return export.FormatCell(v)
}

func paint(band bidding.Band, s string) string {
	switch band {
	case bidding.BandReduce:
		return reduceColor(s)
	case bidding.BandIncrease:
		return increaseColor(s)
	default:
		return holdColor(s)
	}
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}
