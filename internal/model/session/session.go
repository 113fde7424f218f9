package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	bannerMessage       = "     PERSONAL EXPENSE TRACKER"
	goodbyeMessage      = "\nThank you for using Expense Tracker! Goodbye!"
	invalidMenuMessage  = "\nInvalid choice. Please try again."
	somethingWrongMsg   = "\nSorry, something wrong happened..."
	invalidDateMessage  = "Invalid date format. Using today's date."
	menuMessage         = "\n--- Main Menu ---\n1. Add Expense\n2. View Weekly Summary\n3. View Monthly Summary\n4. View All Expenses\n5. Exit"
	addExpenseHeader    = "\n--- Add New Expense ---"
	choicePrompt        = "\nEnter your choice (1-5): "
	categoryPrompt      = "\nSelect category (1-%d): "
	amountPrompt        = "Enter amount: %s"
	descriptionPrompt   = "Enter description (optional): "
	datePrompt          = "Enter date (DD-MM-YYYY) or press Enter for today: "
	bannerRuleCharCount = 50
	maxLineBytes        = 1 << 20
)

const (
	addChoice     = "1"
	weeklyChoice  = "2"
	monthlyChoice = "3"
	listChoice    = "4"
	exitChoice    = "5"
)

var (
	errInputClosed = errors.New("input closed")
	errExit        = errors.New("exit requested")
)

type expenseStorage interface {
	SaveExpense(ctx context.Context, rec expense.Record) error
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, window reports.Window) (*reports.Report, error)
	ListExpenses(ctx context.Context) ([]expense.Record, error)
}

type renderer interface {
	RenderReport(w io.Writer, report *reports.Report) error
	RenderListing(w io.Writer, records []expense.Record) error
	RenderAdded(w io.Writer, rec expense.Record) error
}

type config interface {
	Currency() string
}

type handler func(ctx context.Context) error

type command struct {
	name    string
	handler handler
}

type handlerMap map[string]command

// Session drives one interactive run over a line-oriented reader and writer.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	storage     expenseStorage
	generator   reportGenerator
	presenter   renderer
	currency    string
	now         func() time.Time
	handlersMap handlerMap
}

func New(in io.Reader, out io.Writer, config config, storage expenseStorage,
	generator reportGenerator, presenter renderer, now func() time.Time) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	res := &Session{
		in:        scanner,
		out:       out,
		storage:   storage,
		generator: generator,
		presenter: presenter,
		currency:  config.Currency(),
		now:       now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *Session) handlerMap {
	m := make(handlerMap)
	m[addChoice] = command{"add", s.handleAddExpense}
	m[weeklyChoice] = command{"weekly", s.reportHandler(reports.Weekly)}
	m[monthlyChoice] = command{"monthly", s.reportHandler(reports.Monthly)}
	m[listChoice] = command{"list", s.handleList}
	m[exitChoice] = command{"exit", s.handleExit}
	return m
}

// Run shows the menu until the user exits or the input ends.
func (s *Session) Run(ctx context.Context) error {
	rule := strings.Repeat("=", bannerRuleCharCount)
	if err := s.println("\n" + rule + "\n" + bannerMessage + "\n" + rule); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.println(menuMessage); err != nil {
			return err
		}
		choice, err := s.readLine(choicePrompt)
		if err == nil {
			err = s.HandleChoice(ctx, choice)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, errInputClosed):
			logger.Info("session finished")
			return s.println(goodbyeMessage)
		case s.in.Err() != nil:
			// the scanner stays failed, reading again would spin
			logger.Error("cannot read input", zap.Error(err))
			return errors.Wrap(err, "run session")
		default:
			logger.Error("error handling choice", zap.String("choice", choice), zap.Error(err))
			if err = s.println(somethingWrongMsg); err != nil {
				return err
			}
		}
	}
}

// HandleChoice dispatches one menu choice.
func (s *Session) HandleChoice(ctx context.Context, choice string) error {
	cmd, ok := s.handlersMap[strings.TrimSpace(choice)]
	if !ok {
		logger.Debug("unknown menu choice", zap.String("choice", choice))
		return s.println(invalidMenuMessage)
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "handleChoice")
	defer span.Finish()
	span.SetTag("command", cmd.name)

	start := time.Now()
	err := cmd.handler(ctx)
	elapsed := time.Since(start)

	failed := err != nil && !errors.Is(err, errExit) && !errors.Is(err, errInputClosed)
	observeCommand(cmd.name, elapsed, failed)
	if failed {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Session) handleAddExpense(ctx context.Context) error {
	var b strings.Builder
	b.WriteString(addExpenseHeader + "\n\nCategories:")
	cats := expense.Categories()
	for i, c := range cats {
		fmt.Fprintf(&b, "\n%d. %s", i+1, c)
	}
	if err := s.println(b.String()); err != nil {
		return err
	}

	category, err := promptUntilValid(s, fmt.Sprintf(categoryPrompt, len(cats)), parseCategory)
	if err != nil {
		return err
	}
	amount, err := promptUntilValid(s, fmt.Sprintf(amountPrompt, s.currency), parseAmount)
	if err != nil {
		return err
	}
	description, err := s.readLine(descriptionPrompt)
	if err != nil {
		return err
	}
	dateText, err := s.readLine(datePrompt)
	if err != nil {
		return err
	}

	now := s.now()
	var date time.Time
	if dateText != "" {
		date, err = parseDate(dateText, now.Location())
		if err != nil {
			logger.Debug("invalid date, using now", zap.String("input", dateText), zap.Error(err))
			if err = s.println(invalidDateMessage); err != nil {
				return err
			}
			date = time.Time{}
		}
	}

	rec, err := expense.NewRecordAt(category, amount, description, date, now)
	if err != nil {
		return errors.Wrap(err, "add expense")
	}
	if err = s.storage.SaveExpense(ctx, rec); err != nil {
		return errors.Wrap(err, "add expense")
	}
	countExpense(rec.Category)
	logger.Info("expense added",
		zap.String("id", rec.ID.String()),
		zap.Stringer("category", rec.Category),
		zap.String("amount", rec.Amount.String()))

	return s.presenter.RenderAdded(s.out, rec)
}

func (s *Session) reportHandler(window reports.Window) handler {
	return func(ctx context.Context) error {
		report, err := s.generator.GenerateReport(ctx, window)
		if err != nil {
			return errors.Wrap(err, "handle report")
		}
		return s.presenter.RenderReport(s.out, report)
	}
}

func (s *Session) handleList(ctx context.Context) error {
	records, err := s.generator.ListExpenses(ctx)
	if err != nil {
		return errors.Wrap(err, "handle list")
	}
	return s.presenter.RenderListing(s.out, records)
}

func (s *Session) handleExit(_ context.Context) error {
	return errExit
}

// promptUntilValid re-prompts until parse accepts the line.
func promptUntilValid[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		text, err := s.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		val, err := parse(text)
		if err == nil {
			return val, nil
		}
		logger.Debug("invalid input", zap.String("input", text), zap.Error(err))
		if err = s.println(hintFor(err)); err != nil {
			var zero T
			return zero, err
		}
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) println(text string) error {
	_, err := io.WriteString(s.out, text+"\n")
	return err
}
