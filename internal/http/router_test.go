package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/duty"
	khttp "github.com/MrJamesThe3rd/khata/internal/http"
	cashbookHandler "github.com/MrJamesThe3rd/khata/internal/http/cashbook"
	documentHandler "github.com/MrJamesThe3rd/khata/internal/http/document"
	dutyHandler "github.com/MrJamesThe3rd/khata/internal/http/duty"
	stockHandler "github.com/MrJamesThe3rd/khata/internal/http/stock"
	"github.com/MrJamesThe3rd/khata/internal/stock"
)

type fixture struct {
	router   http.Handler
	docs     *document.MockRepository
	catalog  *document.MockStockCatalog
	roster   *document.MockDutyRoster
	duties   *duty.MockRepository
	stock    *stock.MockRepository
	cashbook *cashbook.MockRepository
}

func newFixture(t *testing.T, opts khttp.Options) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		docs:     document.NewMockRepository(ctrl),
		catalog:  document.NewMockStockCatalog(ctrl),
		roster:   document.NewMockDutyRoster(ctrl),
		duties:   duty.NewMockRepository(ctrl),
		stock:    stock.NewMockRepository(ctrl),
		cashbook: cashbook.NewMockRepository(ctrl),
	}

	docSvc := document.NewService(
		f.docs,
		f.catalog,
		f.roster,
		document.NewMockPartyRegistry(ctrl),
		document.NewMockCashbookSync(ctrl),
	)

	f.router = khttp.New(
		opts,
		documentHandler.NewHandler(docSvc),
		dutyHandler.NewHandler(duty.NewService(f.duties)),
		stockHandler.NewHandler(stock.NewService(f.stock)),
		cashbookHandler.NewHandler(cashbook.NewService(f.cashbook)),
	)

	return f
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

type docJSON struct {
	ID              uuid.UUID       `json:"id"`
	TaxableSubtotal decimal.Decimal `json:"taxable_subtotal"`
	TaxTotal        decimal.Decimal `json:"tax_total"`
	RoundOff        decimal.Decimal `json:"round_off"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	RawTotal        decimal.Decimal `json:"raw_total"`
	Lines           []struct {
		ID            string          `json:"id"`
		TaxableAmount decimal.Decimal `json:"taxable_amount"`
	} `json:"lines"`
	Duties []struct {
		ID     string          `json:"id"`
		Amount decimal.Decimal `json:"amount"`
	} `json:"duties"`
	TaxSplit struct {
		CGST decimal.Decimal `json:"cgst"`
		IGST decimal.Decimal `json:"igst"`
	} `json:"tax_split"`
}

func decodeDoc(t *testing.T, rec *httptest.ResponseRecorder) docJSON {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc docJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	return doc
}

const draft = `{
	"id": "6f1c2a52-2f4e-4a1b-8c55-0d7f7b1f8a10",
	"direction": "purchase",
	"gst_type": "Inter-State",
	"lines": [{"id": "l1", "qty": "10", "rate": "25.50", "unit": "PCS", "tax_rate_percent": "18"}],
	"taxable_subtotal": "255",
	"tax_total": "45.9",
	"duties": [
		{"id": "a", "name": "Cess", "calc_method": "Percentage", "rate": "2", "apply_on": "Subtotal"},
		{"id": "b", "name": "Freight", "calc_method": "Fixed", "fixed_amount": "30", "apply_on": "Subtotal"}
	]
}`

func TestRouter_Documents(t *testing.T) {
	ws := uuid.New()
	base := "/api/v1/workspaces/" + ws.String() + "/documents"

	t.Run("InvalidWorkspace", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		rec := f.do(http.MethodGet, "/api/v1/workspaces/nope/documents/", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("New", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})
		f.roster.EXPECT().Definitions(gomock.Any(), ws).Return([]document.DutyDefinition{
			{ID: "f", CalcMethod: document.CalcFixed, FixedAmount: decimal.NewFromInt(25), IsDefault: true},
		}, nil)
		f.roster.EXPECT().SelectedLedgerIDs(gomock.Any(), ws).Return(nil, nil)

		doc := decodeDoc(t, f.do(http.MethodPost, base+"/new", `{"direction": "sale"}`))

		assert.Len(t, doc.Lines, 1)
		assert.Len(t, doc.Duties, 1)
		assert.True(t, decimal.NewFromInt(25).Equal(doc.GrandTotal))
	})

	t.Run("RecomputeNone", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		doc := decodeDoc(t, f.do(http.MethodPost, base+"/recompute", `{"document": `+draft+`}`))

		assert.True(t, decimal.RequireFromString("255").Equal(doc.TaxableSubtotal))
		assert.True(t, decimal.RequireFromString("45.9").Equal(doc.TaxTotal))
		assert.True(t, decimal.RequireFromString("5.1").Equal(doc.Duties[0].Amount))
		assert.True(t, decimal.RequireFromString("336").Equal(doc.RawTotal))
		assert.True(t, decimal.RequireFromString("336").Equal(doc.GrandTotal))
		assert.True(t, decimal.RequireFromString("45.9").Equal(doc.TaxSplit.IGST))
		assert.True(t, doc.TaxSplit.CGST.IsZero())
	})

	t.Run("RecomputeDutyOverride", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		body := `{"document": ` + draft + `, "trigger": {"kind": "duty", "duty_id": "b", "value": "12.35"}}`
		doc := decodeDoc(t, f.do(http.MethodPost, base+"/recompute", body))

		assert.True(t, decimal.RequireFromString("12.35").Equal(doc.Duties[1].Amount))
		assert.True(t, decimal.RequireFromString("318.35").Equal(doc.RawTotal))
		assert.True(t, decimal.RequireFromString("318").Equal(doc.GrandTotal))
		assert.True(t, decimal.RequireFromString("-0.35").Equal(doc.RoundOff))
	})

	t.Run("RecomputeDutyOverrideWithoutID", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		body := `{"document": ` + draft + `, "trigger": {"kind": "duty", "value": "12.35"}}`
		doc := decodeDoc(t, f.do(http.MethodPost, base+"/recompute", body))

		assert.True(t, decimal.RequireFromString("30").Equal(doc.Duties[1].Amount))
		assert.True(t, decimal.RequireFromString("336").Equal(doc.GrandTotal))
	})

	t.Run("UnknownTrigger", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		rec := f.do(http.MethodPost, base+"/recompute", `{"document": `+draft+`, "trigger": {"kind": "magic"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateLine", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		body := `{"document": ` + draft + `, "line_id": "l1", "field": "qty", "value": "2"}`
		doc := decodeDoc(t, f.do(http.MethodPost, base+"/lines/update", body))

		assert.True(t, decimal.RequireFromString("51").Equal(doc.Lines[0].TaxableAmount))
	})

	t.Run("UpdateLineUnknownField", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		body := `{"document": ` + draft + `, "line_id": "l1", "field": "colour", "value": "2"}`
		rec := f.do(http.MethodPost, base+"/lines/update", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AddAndRemoveLine", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		doc := decodeDoc(t, f.do(http.MethodPost, base+"/lines/add", `{"document": `+draft+`}`))
		assert.Len(t, doc.Lines, 2)

		doc = decodeDoc(t, f.do(http.MethodPost, base+"/lines/remove", `{"document": `+draft+`, "line_id": "l1"}`))
		require.Len(t, doc.Lines, 1)
		assert.NotEqual(t, "l1", doc.Lines[0].ID)
	})

	t.Run("SubmitInvalid", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})

		rec := f.do(http.MethodPost, base+"/", draft)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("GetMissing", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})
		id := uuid.New()
		f.docs.EXPECT().GetDocument(gomock.Any(), ws, id).Return(nil, document.ErrNotFound)

		rec := f.do(http.MethodGet, base+"/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ListFilters", func(t *testing.T) {
		f := newFixture(t, khttp.Options{})
		f.docs.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter document.ListFilter) ([]*document.Document, error) {
				assert.Equal(t, ws, filter.WorkspaceID)
				require.NotNil(t, filter.Status)
				assert.Equal(t, document.StatusPaid, *filter.Status)
				require.NotNil(t, filter.StartDate)
				assert.Nil(t, filter.Direction)
				return []*document.Document{}, nil
			})

		rec := f.do(http.MethodGet, base+"/?status=Paid&start_date=2024-04-01", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestRouter_Middleware(t *testing.T) {
	ws := uuid.New()
	path := "/api/v1/workspaces/" + ws.String() + "/cashbook/not-a-date"

	t.Run("CORS", func(t *testing.T) {
		f := newFixture(t, khttp.Options{AllowedOrigins: []string{"https://app.example"}})

		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("RateLimit", func(t *testing.T) {
		f := newFixture(t, khttp.Options{RateLimitPerMinute: 2})

		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, path, "").Code)
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, path, "").Code)
		assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodGet, path, "").Code)
	})
}
