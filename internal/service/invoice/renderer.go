package invoice

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kingrain94/usage-billing-api/internal/domain"
)

// Data is everything printed on a usage invoice.
type Data struct {
	Issuer     string
	TenantID   string
	TenantName string
	History    domain.BillingHistory
	IssuedAt   time.Time
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the invoice as PDF bytes.
func (r *Renderer) Render(data Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(8, "Usage Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, data.Issuer, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New("Invoice number: "+InvoiceNumber(data.History), props.Text{Top: 0}),
			text.New("Billing period: "+data.History.Period, props.Text{Top: 5}),
			text.New("Issued: "+data.IssuedAt.UTC().Format("2006-01-02"), props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(billTo(data), props.Text{Top: 5}),
			text.New(data.TenantID, props.Text{Top: 10}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Tokens", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(12,
		text.NewCol(6, "AI token usage, "+data.History.Period, props.Text{Size: 9}),
		text.NewCol(3, fmt.Sprintf("%d", data.History.TokensUsed), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(3, FormatAmount(data.History.TotalPrice), props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Total", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(3, FormatAmount(data.History.TotalPrice), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

func InvoiceNumber(history domain.BillingHistory) string {
	return fmt.Sprintf("INV-%04d%02d-%06d", history.Year, history.Month, history.ID)
}

func FormatAmount(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func billTo(data Data) string {
	if data.TenantName != "" {
		return data.TenantName
	}
	return data.TenantID
}
