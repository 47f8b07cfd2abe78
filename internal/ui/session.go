package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/sources"
)

// Menu entries.
const (
	ModeExtract    = "Extract symbols"
	ModeCompare    = "Compare API with your list"
	ModeMulti      = "Compare multiple lists"
	ModeMatch      = "Match two manual lists"
	ModeValidate   = "Validate lists"
	ModeCurrencies = "Manage currencies"
	ModeExit       = "Exit"
)

const (
	sourceAPI      = "API URL"
	sourceJSON     = "JSON file"
	sourceExchange = "Exchange (Binance / Bybit)"
	sourceKTR      = "Use the built-in KTR list"
	sourceExcel    = "From an Excel file"
	sourceText     = "From a text file"
	sourceManual   = "Manual entry"

	outputExcel = "Excel (.xlsx)"
	outputText  = "TXT"

	currencyView    = "View"
	currencyAdd     = "Add"
	currencyRemove  = "Remove"
	currencyHistory = "History"
	currencyBack    = "Back"

	title = "SYMBOL EXTRACTOR"
)

// Session drives the interactive menu.
type Session struct {
	app    *app.App
	prompt Prompter
	out    io.Writer
}

// NewSession creates a menu session writing to out.
func NewSession(a *app.App, p Prompter, out io.Writer) *Session {
	return &Session{app: a, prompt: p, out: out}
}

// Run shows the main menu until the operator exits or aborts. Errors of a
// single mode are displayed and the menu is shown again.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, "\033[H\033[2J")
	s.println(Header(title))
	s.println(mutedStyle.Render("A tool for fetching, comparing and analyzing crypto symbols."))

	for {
		mode, err := s.prompt.Select("Select a mode", []string{ModeExtract, ModeCompare, ModeMulti, ModeMatch, ModeValidate, ModeCurrencies, ModeExit})
		if err != nil {
			return aborted(err)
		}
		if mode == ModeExit {
			return nil
		}

		if err := s.RunMode(ctx, mode); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			s.println(Message("Error: "+err.Error(), true))
		}
	}
}

// RunMode runs a single menu entry.
func (s *Session) RunMode(ctx context.Context, mode string) error {
	s.println(Step(strings.ToUpper(mode)))

	switch mode {
	case ModeExtract:
		return s.extract(ctx)
	case ModeCompare:
		return s.compare(ctx)
	case ModeMulti:
		return s.multi(ctx)
	case ModeMatch:
		return s.match()
	case ModeValidate:
		return s.validate(ctx)
	case ModeCurrencies:
		return s.currencies()
	default:
		return errors.Errorf("unknown mode %q", mode)
	}
}

func (s *Session) extract(ctx context.Context) error {
	kind, err := s.prompt.Select("Select source type", []string{sourceAPI, sourceJSON, sourceExchange})
	if err != nil {
		return err
	}

	var location string
	switch kind {
	case sourceAPI:
		location, err = s.prompt.Input("Enter the API URL", s.app.DefaultAPIURL())
	case sourceJSON:
		location, err = s.prompt.Input("Enter the path to the JSON file", "symbols.json")
		location = CleanPath(location)
	case sourceExchange:
		location, err = s.prompt.Select("Select exchange", []string{sources.ExchangeBinance, sources.ExchangeBybit})
	}
	if err != nil {
		return err
	}

	res, err := s.app.Extract(ctx, location)
	if err != nil {
		return err
	}

	s.println(Message(fmt.Sprintf("Total symbols found: %d", len(res.Records)), false))
	s.println(QuoteStats(res.Quotes))

	output, err := s.prompt.Select("Select output format", []string{outputExcel, outputText})
	if err != nil {
		return err
	}
	name, err := s.prompt.Input("Enter the output file name without extension", "APISymbols")
	if err != nil {
		return err
	}

	format := app.FormatXLSX
	if output == outputText {
		format = app.FormatText
	}

	path, err := s.app.SaveSymbols(res.Records, name, format)
	if err != nil {
		return err
	}
	s.println(Message(fmt.Sprintf("Successfully saved to %s", path), false))
	return nil
}

func (s *Session) compare(ctx context.Context) error {
	url, err := s.prompt.Input("Enter the API URL", s.app.DefaultAPIURL())
	if err != nil {
		return err
	}
	if strings.TrimSpace(url) == "" {
		url = s.app.DefaultAPIURL()
	}

	api, err := s.app.Load(ctx, url)
	if err != nil {
		return err
	}
	if len(api) == 0 {
		return errors.New("could not fetch symbols from the API")
	}

	user, err := s.collect(ctx)
	if err != nil {
		return err
	}

	res, err := s.app.Compare(api, user)
	if err != nil {
		return err
	}

	s.println(Message(fmt.Sprintf("Comparison report saved to %s", res.Path), false))
	s.println(ComparisonSummary(res.Diff))
	return nil
}

func (s *Session) multi(ctx context.Context) error {
	lists, err := s.collectLists(ctx, 2)
	if err != nil {
		return err
	}

	res, err := s.app.MultiCompare(lists)
	if err != nil {
		return err
	}

	s.println(MultiListSummary(res.Lists, res.Common))
	s.println(Message(fmt.Sprintf("Multi-list report saved to %s", res.Path), false))
	return nil
}

func (s *Session) match() error {
	first, err := s.entries("Enter the first list of symbols")
	if err != nil {
		return err
	}
	second, err := s.entries("Enter the second list of symbols")
	if err != nil {
		return err
	}

	res, err := s.app.Match(first, second)
	if err != nil {
		return err
	}

	s.println(Results("Symbols in List 1 but not in List 2", res.MissingInSecond))
	s.println(Results("Symbols in List 2 but not in List 1", res.MissingInFirst))
	s.println(Message(fmt.Sprintf("Difference reports saved to %s", s.app.SavePath()), false))
	return nil
}

func (s *Session) validate(ctx context.Context) error {
	lists, err := s.collectLists(ctx, 1)
	if err != nil {
		return err
	}

	res, err := s.app.Validate(lists)
	if err != nil {
		return err
	}

	s.println(ValidationSummary(res.Report))
	s.println(ValidationDetails(res.Report))
	s.println(Message(fmt.Sprintf("Validation report saved to %s", res.Path), false))
	return nil
}

func (s *Session) currencies() error {
	for {
		action, err := s.prompt.Select("Manage currencies", []string{currencyView, currencyAdd, currencyRemove, currencyHistory, currencyBack})
		if err != nil {
			return err
		}

		switch action {
		case currencyView:
			s.println(Currencies(s.app.Currencies()))
		case currencyAdd:
			code, err := s.prompt.Input("Enter the currency to add", "SOL")
			if err != nil {
				return err
			}
			added, err := s.app.AddCurrency(code)
			switch {
			case err != nil:
				return err
			case added:
				s.println(Message(fmt.Sprintf("'%s' was successfully added.", strings.ToUpper(strings.TrimSpace(code))), false))
			default:
				s.println(Message(fmt.Sprintf("'%s' could not be added (it might already exist).", strings.ToUpper(strings.TrimSpace(code))), true))
			}
		case currencyRemove:
			code, err := s.prompt.Input("Enter the currency to remove", "")
			if err != nil {
				return err
			}
			removed, err := s.app.RemoveCurrency(code)
			switch {
			case err != nil:
				return err
			case removed:
				s.println(Message(fmt.Sprintf("'%s' was successfully removed.", strings.ToUpper(strings.TrimSpace(code))), false))
			default:
				s.println(Message(fmt.Sprintf("'%s' was not found.", strings.ToUpper(strings.TrimSpace(code))), true))
			}
		case currencyHistory:
			entries, err := s.app.History()
			if err != nil {
				s.println(Message(err.Error(), true))
				continue
			}
			s.println(History(entries))
		default:
			return nil
		}
	}
}

// collectLists asks for named lists until the operator stops, requiring at least minLists.
func (s *Session) collectLists(ctx context.Context, minLists int) ([]domain.SymbolList, error) {
	lists := make([]domain.SymbolList, 0, minLists)
	for {
		n := len(lists) + 1
		name, err := s.prompt.Input(fmt.Sprintf("Enter name for List %d", n), fmt.Sprintf("List %d", n))
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("List %d", n)
		}

		records, err := s.collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			s.println(Message("No symbols were provided for this list.", true))
		} else {
			s.println(Message(fmt.Sprintf("Added %d symbols to '%s'.", len(records), name), false))
		}
		lists = append(lists, domain.SymbolList{Name: name, Symbols: records})

		if len(lists) < minLists {
			continue
		}
		more, err := s.prompt.Confirm("Do you want to add another symbol list?")
		if err != nil {
			return nil, err
		}
		if !more {
			return lists, nil
		}
	}
}

// collect asks how to provide a user list and loads it.
func (s *Session) collect(ctx context.Context) ([]domain.SymbolRecord, error) {
	kind, err := s.prompt.Select("How would you like to provide the symbols?", []string{sourceExcel, sourceText, sourceManual, sourceKTR})
	if err != nil {
		return nil, err
	}

	switch kind {
	case sourceExcel, sourceText:
		path, err := s.prompt.Input("Enter the path to the file", "")
		if err != nil {
			return nil, err
		}
		return s.app.Load(ctx, CleanPath(path))
	case sourceManual:
		raw, err := s.entries("Enter symbols")
		if err != nil {
			return nil, err
		}
		return s.app.Records(raw), nil
	default:
		s.println(Message("Using the built-in KTR symbol list.", false))
		return s.app.Load(ctx, sources.BuiltinKTR)
	}
}

func (s *Session) entries(title string) ([]string, error) {
	text, err := s.prompt.Text(title)
	if err != nil {
		return nil, err
	}
	return sources.ReadEntries(strings.NewReader(text))
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func aborted(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
