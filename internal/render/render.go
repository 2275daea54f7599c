// Package render prints command results as text, JSON, YAML or a table.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sigs.k8s.io/yaml"

	"github.com/charmingruby/lazyrange/internal/config"
)

// Out is a printable command result.
type Out interface {
	Text() string
}

// Tabular is an Out that can also be laid out as rows.
type Tabular interface {
	Out
	Table() (header []string, rows [][]string)
}

// Render writes out to w in the requested format.
func Render[TOut Out](output config.OutputType, w io.Writer, out TOut) error {
	var data []byte
	var err error
	switch output {
	case config.OutputTypeText:
		data = []byte(out.Text())
	case config.OutputTypeJSON:
		data, err = json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "failed to marshal output as json")
		}
		data = append(data, '\n')
	case config.OutputTypeYAML:
		data, err = yaml.Marshal(out)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal output as yaml")
		}
	case config.OutputTypeTable:
		var o Out = out
		tab, ok := o.(Tabular)
		if !ok {
			return errors.Errorf("output type %s is not supported for %T", output, out)
		}
		header, rows := tab.Table()
		table, err := Table(header, rows)
		if err != nil {
			return err
		}
		data = []byte(table)
	case config.OutputTypeUndefined:
		return errors.Errorf("output type %s is not defined", output)
	default:
		return errors.Errorf("output type %s is not implemented", output)
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrapf(err, "failed to write output")
	}

	return nil
}

// Table lays rows out under header without borders.
func Table(header []string, rows [][]string) (string, error) {
	str := &strings.Builder{}

	cfg := tablewriter.Config{
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "    "}},
		},
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "    "}},
		},
	}
	rendition := tw.Rendition{
		Borders: tw.BorderNone,
		Settings: tw.Settings{
			Lines:      tw.LinesNone,
			Separators: tw.SeparatorsNone,
		},
	}

	table := tablewriter.NewTable(str,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition)),
		tablewriter.WithConfig(cfg),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return "", errors.Wrapf(err, "failed to add table rows")
	}
	if err := table.Render(); err != nil {
		return "", errors.Wrapf(err, "failed to render table")
	}

	return str.String(), nil
}

// Values is an ordered sequence of collected values.
type Values[T any] []T

func (v Values[T]) Text() string {
	return fmt.Sprint([]T(v)) + "\n"
}

func (v Values[T]) Table() ([]string, [][]string) {
	return []string{"Index", "Value"}, lo.Map(v, func(item T, idx int) []string {
		return []string{strconv.Itoa(idx), fmt.Sprint(item)}
	})
}

// Membership is the answer for one tested value.
type Membership struct {
	Value  string `json:"value"`
	Member bool   `json:"member"`
}

// Memberships lists membership answers in argument order.
type Memberships []Membership

func (m Memberships) Text() string {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	sb := &strings.Builder{}
	for _, item := range m {
		answer := red("false")
		if item.Member {
			answer = green("true")
		}
		fmt.Fprintf(sb, "%s\t%s\n", item.Value, answer)
	}
	return sb.String()
}

func (m Memberships) Table() ([]string, [][]string) {
	return []string{"Value", "Member"}, lo.Map(m, func(item Membership, _ int) []string {
		return []string{item.Value, strconv.FormatBool(item.Member)}
	})
}

// Summary describes a range.
type Summary struct {
	Range string `json:"range"`
	Len   int64  `json:"len"`
	Empty bool   `json:"empty"`
}

func (s Summary) Text() string {
	return fmt.Sprintf("%s\nlen: %d\nempty: %t\n", s.Range, s.Len, s.Empty)
}

func (s Summary) Table() ([]string, [][]string) {
	return []string{"Range", "Len", "Empty"}, [][]string{
		{s.Range, strconv.FormatInt(s.Len, 10), strconv.FormatBool(s.Empty)},
	}
}

// Count reports a counter's final value.
type Count struct {
	Count int `json:"count"`
}

func (c Count) Text() string {
	return strconv.Itoa(c.Count) + "\n"
}

func (c Count) Table() ([]string, [][]string) {
	return []string{"Count"}, [][]string{{strconv.Itoa(c.Count)}}
}
