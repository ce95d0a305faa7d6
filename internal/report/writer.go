package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var Formats = []Format{FormatJSON, FormatYAML, FormatCSV}

func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("invalid report format %q, expected one of %v", format, Formats)
}

func Write(w io.Writer, report Report, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	case FormatCSV:
		return writeCsv(w, report)
	}
	return fmt.Errorf("invalid report format %q", format)
}

// One row per team: scheduled interviews first, in calendar order, then the unscheduled teams with their reason
func writeCsv(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)
	rows := [][]string{{"team", "professors", "status", "date", "weekday", "start", "end", "room", "reason"}}
	for _, day := range report.Days {
		for _, interview := range day.Interviews {
			rows = append(rows, []string{
				strconv.FormatUint(interview.Team, 10),
				strings.Join(interview.Professors, ";"),
				"scheduled",
				day.Date,
				day.Weekday,
				interview.Start,
				interview.End,
				strconv.Itoa(interview.Room),
				"",
			})
		}
	}
	for _, team := range report.Unscheduled {
		rows = append(rows, []string{
			strconv.FormatUint(team.Team, 10),
			strings.Join(team.Professors, ";"),
			"unscheduled",
			"", "", "", "", "",
			team.Reason,
		})
	}
	return writer.WriteAll(rows)
}
