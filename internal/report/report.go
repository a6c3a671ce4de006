// Package report renders priced quotes for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/contactkeval/option-pricing/internal/pricing"
)

// Format names an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatTable, FormatYAML, FormatJSON, FormatCSV}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of text, table, yaml, json, csv)", s)
}

// ParseTypes turns a type selector into the option types to render:
// "" or "both" selects call and put, anything else must name one type.
func ParseTypes(s string) ([]pricing.OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return pricing.OptionTypes, nil
	}
	t, err := pricing.ParseOptionType(s)
	if err != nil {
		return nil, err
	}
	return []pricing.OptionType{t}, nil
}

// Write renders the prices of q for each of types in format f.
func Write(w io.Writer, f Format, q pricing.Quote, types []pricing.OptionType) error {
	switch f {
	case FormatText:
		return WriteText(w, q, types)
	case FormatTable:
		return WriteTable(w, q, types)
	case FormatYAML:
		return WriteYAML(w, q, types)
	case FormatJSON:
		return WriteJSON(w, q, types)
	case FormatCSV:
		return WriteCSV(w, q, types)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteText writes one "<Type> option price: <value>" line per type with two
// decimal places.
func WriteText(w io.Writer, q pricing.Quote, types []pricing.OptionType) error {
	for _, t := range types {
		price, err := q.Price(t)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s option price: %.2f\n", t.Title(), price); err != nil {
			return err
		}
	}
	return nil
}

func WriteTable(w io.Writer, q pricing.Quote, types []pricing.OptionType) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Type", "Spot", "Strike", "Expiry", "Rate", "Volatility", "Price"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	in := q.Inputs
	for _, t := range types {
		price, err := q.Price(t)
		if err != nil {
			return err
		}
		table.Append([]string{
			t.String(),
			formatFloat(in.Spot),
			formatFloat(in.Strike),
			formatFloat(in.Expiry),
			formatFloat(in.Rate),
			formatFloat(in.Volatility),
			fixed(price, 2),
		})
	}

	table.Render()
	return nil
}

// InputsRecord is the JSON and YAML form of pricing.Inputs. Non-finite values are null.
type InputsRecord struct {
	Spot       *decimal.Decimal `json:"spot" yaml:"spot"`
	Strike     *decimal.Decimal `json:"strike" yaml:"strike"`
	Expiry     *decimal.Decimal `json:"expiry" yaml:"expiry"`
	Rate       *decimal.Decimal `json:"rate" yaml:"rate"`
	Volatility *decimal.Decimal `json:"volatility" yaml:"volatility"`
}

// PriceRecord is one priced option type. Price is null when the formula
// produced NaN or an infinity.
type PriceRecord struct {
	Type  pricing.OptionType `json:"type" yaml:"type"`
	Price *decimal.Decimal   `json:"price" yaml:"price"`
}

// Document is the body written by WriteJSON and WriteYAML and served over
// HTTP.
type Document struct {
	Inputs InputsRecord  `json:"inputs" yaml:"inputs"`
	Prices []PriceRecord `json:"prices" yaml:"prices"`
}

// NewDocument builds the JSON representation of q for the given types.
func NewDocument(q pricing.Quote, types []pricing.OptionType) (Document, error) {
	in := q.Inputs
	doc := Document{
		Inputs: InputsRecord{
			Spot:       toDecimal(in.Spot),
			Strike:     toDecimal(in.Strike),
			Expiry:     toDecimal(in.Expiry),
			Rate:       toDecimal(in.Rate),
			Volatility: toDecimal(in.Volatility),
		},
		Prices: make([]PriceRecord, 0, len(types)),
	}
	for _, t := range types {
		price, err := q.Price(t)
		if err != nil {
			return Document{}, err
		}
		doc.Prices = append(doc.Prices, PriceRecord{Type: t, Price: toDecimal(price)})
	}
	return doc, nil
}

func WriteJSON(w io.Writer, q pricing.Quote, types []pricing.OptionType) error {
	doc, err := NewDocument(q, types)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes the same document as WriteJSON in YAML.
func WriteYAML(w io.Writer, q pricing.Quote, types []pricing.OptionType) error {
	doc, err := NewDocument(q, types)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// CSVRecord is one CSV row.
type CSVRecord struct {
	Type       string `csv:"type"`
	Spot       string `csv:"spot"`
	Strike     string `csv:"strike"`
	Expiry     string `csv:"expiry"`
	Rate       string `csv:"rate"`
	Volatility string `csv:"volatility"`
	Price      string `csv:"price"`
}

func WriteCSV(w io.Writer, q pricing.Quote, types []pricing.OptionType) error {
	in := q.Inputs
	records := make([]*CSVRecord, 0, len(types))
	for _, t := range types {
		price, err := q.Price(t)
		if err != nil {
			return err
		}
		records = append(records, &CSVRecord{
			Type:       t.String(),
			Spot:       formatFloat(in.Spot),
			Strike:     formatFloat(in.Strike),
			Expiry:     formatFloat(in.Expiry),
			Rate:       formatFloat(in.Rate),
			Volatility: formatFloat(in.Volatility),
			Price:      formatFloat(price),
		})
	}

	b, err := gocsv.MarshalBytes(records)
	if err != nil {
		return fmt.Errorf("encoding csv: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// toDecimal returns nil for NaN and infinities, which decimal cannot hold.
func toDecimal(v float64) *decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	d := decimal.NewFromFloat(v)
	return &d
}

func fixed(v float64, places int32) string {
	d := toDecimal(v)
	if d == nil {
		return formatFloat(v)
	}
	return d.StringFixed(places)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
