package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/khata/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	cashbookStore "github.com/MrJamesThe3rd/khata/internal/cashbook/store"
	"github.com/MrJamesThe3rd/khata/internal/config"
	"github.com/MrJamesThe3rd/khata/internal/database"
	"github.com/MrJamesThe3rd/khata/internal/document"
	docStore "github.com/MrJamesThe3rd/khata/internal/document/store"
	"github.com/MrJamesThe3rd/khata/internal/duty"
	dutyStore "github.com/MrJamesThe3rd/khata/internal/duty/store"
	"github.com/MrJamesThe3rd/khata/internal/logging"
	"github.com/MrJamesThe3rd/khata/internal/party"
	partyStore "github.com/MrJamesThe3rd/khata/internal/party/store"
	"github.com/MrJamesThe3rd/khata/internal/stock"
	stockStore "github.com/MrJamesThe3rd/khata/internal/stock/store"
)

type model struct {
	appName     string
	workspaceID uuid.UUID

	docService      *document.Service
	stockService    *stock.Service
	dutyService     *duty.Service
	partyService    *party.Service
	cashbookService *cashbook.Service

	currentView View

	editorView    view.EditorModel
	documentsView view.DocumentsModel
	dutiesView    view.DutiesModel
	stockView     view.StockModel
	cashbookView  view.CashbookModel
}

type View int

const (
	ViewMenu      View = 0
	ViewEditor    View = 1
	ViewDocuments View = 2
	ViewDuties    View = 3
	ViewStock     View = 4
	ViewCashbook  View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea; keep log output out of it.
	logOut := io.Discard
	if f, err := tea.LogToFile("khata-tui.log", ""); err == nil {
		logOut = f
	}

	slog.SetDefault(logging.New(cfg, logOut))

	workspaceID, err := uuid.Parse(cfg.App.Workspace)
	if err != nil {
		slog.Error("invalid workspace id", "workspace", cfg.App.Workspace, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := view.DbCtx()
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	stockSvc := stock.NewService(stockStore.New(db))
	dutySvc := duty.NewService(dutyStore.New(db))
	partySvc := party.NewService(partyStore.New(db))
	cashbookSvc := cashbook.NewService(cashbookStore.New(db))
	docSvc := document.NewService(docStore.New(db), stockSvc, dutySvc, partySvc, cashbookSvc)

	return model{
		appName:         cfg.App.Name,
		workspaceID:     workspaceID,
		docService:      docSvc,
		stockService:    stockSvc,
		dutyService:     dutySvc,
		partyService:    partySvc,
		cashbookService: cashbookSvc,
		currentView:     ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) newEditor(direction document.Direction) view.EditorModel {
	return view.NewEditorModel(m.docService, m.stockService, m.partyService, m.workspaceID, direction)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEditor
				m.editorView = m.newEditor(document.DirectionPurchase)

				return m, m.editorView.Init()
			case "2":
				m.currentView = ViewEditor
				m.editorView = m.newEditor(document.DirectionSale)

				return m, m.editorView.Init()
			case "3":
				m.currentView = ViewDocuments
				m.documentsView = view.NewDocumentsModel(m.docService, m.workspaceID)

				return m, m.documentsView.Init()
			case "4":
				m.currentView = ViewDuties
				m.dutiesView = view.NewDutiesModel(m.dutyService, m.workspaceID)

				return m, m.dutiesView.Init()
			case "5":
				m.currentView = ViewStock
				m.stockView = view.NewStockModel(m.stockService, m.workspaceID)

				return m, m.stockView.Init()
			case "6":
				m.currentView = ViewCashbook
				m.cashbookView = view.NewCashbookModel(m.cashbookService, m.workspaceID)

				return m, m.cashbookView.Init()
			}
		}
	case view.OpenDocumentMsg:
		m.currentView = ViewEditor
		m.editorView = m.newEditor(msg.Doc.Direction).WithDocument(msg.Doc)

		return m, m.editorView.Init()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewEditor:
		var newModel tea.Model
		newModel, cmd = m.editorView.Update(msg)
		m.editorView = newModel.(view.EditorModel)
	case ViewDocuments:
		var newModel tea.Model
		newModel, cmd = m.documentsView.Update(msg)
		m.documentsView = newModel.(view.DocumentsModel)
	case ViewDuties:
		var newModel tea.Model
		newModel, cmd = m.dutiesView.Update(msg)
		m.dutiesView = newModel.(view.DutiesModel)
	case ViewStock:
		var newModel tea.Model
		newModel, cmd = m.stockView.Update(msg)
		m.stockView = newModel.(view.StockModel)
	case ViewCashbook:
		var newModel tea.Model
		newModel, cmd = m.cashbookView.Update(msg)
		m.cashbookView = newModel.(view.CashbookModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. New Purchase Bill\n" +
				"2. New Sales Invoice\n" +
				"3. Bills & Invoices\n" +
				"4. Duties & Taxes\n" +
				"5. Stock Items\n" +
				"6. Cashbook\n\n" +
				"q. Quit",
		)
	case ViewEditor:
		return m.editorView.View()
	case ViewDocuments:
		return m.documentsView.View()
	case ViewDuties:
		return m.dutiesView.View()
	case ViewStock:
		return m.stockView.View()
	case ViewCashbook:
		return m.cashbookView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
