package http

import (
	"strconv"

	"github.com/guttosm/pos-service/internal/cartview"
	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/service"
)

// presenter renders register views into response DTOs with one money formatter.
type presenter struct {
	f pricing.Formatter
}

func (p presenter) products(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	for i, prod := range products {
		out[i] = dto.ProductResponse{
			Name:     prod.Name,
			Category: string(prod.Category),
			Price:    prod.Price.StringFixed(2),
			Display:  p.f.Format(prod.Price),
		}
	}
	return out
}

func (p presenter) totals(s pricing.Summary) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:        s.Subtotal.String(),
		TaxRate:         s.TaxRate.String(),
		Tax:             s.Tax.String(),
		Total:           s.Total.String(),
		SubtotalDisplay: p.f.Format(s.Subtotal),
		TaxDisplay:      p.f.Format(s.Tax),
		TotalDisplay:    p.f.Format(s.Total),
	}
}

func (p presenter) cell(column cartview.Column, v cartview.CellValue) dto.CellResponse {
	resp := dto.CellResponse{
		Column:   column.Title(),
		Kind:     v.Kind.String(),
		Editable: column.Editable(),
	}
	switch v.Kind {
	case cartview.CellInteger:
		resp.Value = v.Int
		resp.Display = strconv.Itoa(v.Int)
	case cartview.CellMoney:
		resp.Value = v.Money.String()
		resp.Display = p.f.Format(v.Money)
	default:
		resp.Value = v.Text
		resp.Display = v.Text
	}
	return resp
}

func (p presenter) cart(view service.CartView) dto.CartResponse {
	columns := cartview.Columns()
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title()
	}

	rows := make([]dto.CartRowResponse, len(view.Rows))
	for r, cells := range view.Rows {
		row := dto.CartRowResponse{Row: r, Cells: make([]dto.CellResponse, len(cells))}
		for i, v := range cells {
			row.Cells[i] = p.cell(columns[i], v)
		}
		rows[r] = row
	}

	resp := dto.CartResponse{
		Columns: titles,
		Rows:    rows,
		Totals:  p.totals(view.Summary),
		Empty:   len(view.Lines) == 0,
	}
	if view.Flash != nil {
		resp.Flash = &dto.FlashResponse{Row: view.Flash.Row, Phase: view.Flash.Phase}
	}
	return resp
}

func (p presenter) cartUpdate(u service.CartUpdate) dto.CartUpdateResponse {
	resp := dto.CartUpdateResponse{
		Cart:          p.cart(u.Cart),
		Notifications: u.Notifications,
	}
	if u.Mutation.Kind != cartview.MutationNone || u.Mutation.Name != "" {
		resp.Mutation = u.Mutation.Kind.String()
	}
	if resp.Notifications == nil {
		resp.Notifications = []cartview.Notification{}
	}
	return resp
}

func (p presenter) checkout(v service.CheckoutView) dto.CheckoutResponse {
	items := make([]dto.CheckoutItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = dto.CheckoutItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			Total:     it.Total.String(),
		}
		if i < len(v.ItemsText) {
			items[i].Display = v.ItemsText[i]
		}
	}

	return dto.CheckoutResponse{
		ID:             v.ID,
		State:          v.State.String(),
		Items:          items,
		Lines:          v.ItemsText,
		Totals:         p.totals(v.Summary),
		Message:        v.Message,
		ConfirmEnabled: v.ConfirmEnabled,
		CloseEnabled:   v.CloseEnabled,
		OpenedAt:       v.OpenedAt,
	}
}
