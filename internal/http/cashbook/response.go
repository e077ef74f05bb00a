package cashbook

import (
	"time"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

type cashbookResponse struct {
	ID      string         `json:"id"`
	Type    cashbook.Type  `json:"type"`
	Version int            `json:"version"`
	Balance string         `json:"balance"`
	Chits   []chitResponse `json:"chits"`
}

type chitResponse struct {
	ID            cashbook.ChitID        `json:"id"`
	Number        *string                `json:"number,omitempty"`
	Date          string                 `json:"date"`
	Recipient     *string                `json:"recipient,omitempty"`
	PaymentMethod cashbook.PaymentMethod `json:"payment_method"`
	Operation     cashbook.Operation     `json:"operation"`
	Total         string                 `json:"total"`
	LockedBy      *cashbook.UserID       `json:"locked_by,omitempty"`
	Items         []itemResponse         `json:"items"`
}

type itemResponse struct {
	Amount     string `json:"amount"`
	Expression string `json:"expression"`
	CategoryID int    `json:"category_id"`
	Purpose    string `json:"purpose"`
}

type chitResultResponse struct {
	ChitID          cashbook.ChitID `json:"chit_id"`
	NegativeBalance bool            `json:"negative_balance"`
}

type createResponse struct {
	ID string `json:"id"`
}

type importResponse struct {
	Imported int               `json:"imported"`
	ChitIDs  []cashbook.ChitID `json:"chit_ids"`
}

func toResponse(cb *cashbook.Cashbook) cashbookResponse {
	chits := cb.Chits()

	resp := cashbookResponse{
		ID:      cb.ID().String(),
		Type:    cb.Type(),
		Version: cb.Version(),
		Balance: cb.Balance().StringFixed(2),
		Chits:   make([]chitResponse, len(chits)),
	}

	for i, chit := range chits {
		resp.Chits[i] = toChitResponse(chit)
	}

	return resp
}

func toChitResponse(chit *cashbook.Chit) chitResponse {
	body := chit.Body()

	resp := chitResponse{
		ID:            chit.ID(),
		Date:          body.Date.Format(time.DateOnly),
		PaymentMethod: chit.PaymentMethod(),
		Operation:     chit.Operation(),
		Total:         chit.Total().StringFixed(2),
	}

	if body.Number != nil {
		resp.Number = new(body.Number.String())
	}

	if body.Recipient != nil {
		resp.Recipient = new(body.Recipient.String())
	}

	if holder, ok := chit.Lock().Holder(); ok {
		resp.LockedBy = &holder
	}

	items := chit.Items()
	resp.Items = make([]itemResponse, len(items))

	for i, item := range items {
		resp.Items[i] = itemResponse{
			Amount:     item.Amount.String(),
			Expression: item.Amount.Expression(),
			CategoryID: item.Category.ID,
			Purpose:    item.Purpose,
		}
	}

	return resp
}
