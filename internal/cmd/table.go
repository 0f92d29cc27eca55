// Package cmd holds output helpers shared by the xtables sub-commands.
package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"
)

// List output formats.
const (
	TableFormatCSV     = "csv"
	TableFormatJSON    = "json"
	TableFormatTable   = "table"
	TableFormatYAML    = "yaml"
	TableFormatCompact = "compact"
)

// Format modifiers, given after the format name ("csv,header").
const (
	// TableOptionNoHeader hides the header of table and compact output.
	TableOptionNoHeader = "noheader"

	// TableOptionHeader adds the header to csv output.
	TableOptionHeader = "header"
)

// listFormat is a parsed --format value.
type listFormat struct {
	name     string
	header   bool
	noHeader bool
}

func parseListFormat(value string) (listFormat, error) {
	name, modifiers, _ := strings.Cut(value, ",")

	f := listFormat{name: name}
	for _, modifier := range strings.Split(modifiers, ",") {
		switch modifier {
		case "":
		case TableOptionHeader:
			f.header = true
		case TableOptionNoHeader:
			f.noHeader = true
		default:
			return listFormat{}, fmt.Errorf(`Invalid modifier %q on flag "--format" (%q)`, modifier, value)
		}
	}

	switch f.name {
	case TableFormatCSV, TableFormatJSON, TableFormatTable, TableFormatYAML, TableFormatCompact:
	default:
		return listFormat{}, fmt.Errorf("Invalid format %q", f.name)
	}

	return f, nil
}

// RenderTable writes rows to w in the given format. The json and yaml formats
// encode raw instead of the rows.
func RenderTable(w io.Writer, format string, header []string, data [][]string, raw any) error {
	f, err := parseListFormat(format)
	if err != nil {
		return err
	}

	switch f.name {
	case TableFormatTable, TableFormatCompact:
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		if !f.noHeader {
			table.SetHeader(header)
		}

		if f.name == TableFormatCompact {
			table.SetColumnSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
		} else {
			table.SetRowLine(true)
		}

		table.AppendBulk(data)
		table.Render()
	case TableFormatCSV:
		out := csv.NewWriter(w)
		if f.header {
			err = out.Write(header)
			if err != nil {
				return err
			}
		}

		err = out.WriteAll(data)
		if err != nil {
			return err
		}
	case TableFormatJSON:
		err = json.NewEncoder(w).Encode(raw)
		if err != nil {
			return err
		}
	case TableFormatYAML:
		out, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}

		_, err = w.Write(out)
		if err != nil {
			return err
		}
	}

	return nil
}

// ValidateFlagFormatForListOutput validates the value of the --format flag.
func ValidateFlagFormatForListOutput(value string) error {
	_, err := parseListFormat(value)
	if err != nil {
		return fmt.Errorf(`Invalid value for flag "--format": %w`, err)
	}

	return nil
}
