package request

import (
	"net/url"
	"strconv"
)

// Page is shared by every list endpoint. Nil fields are never serialized.
type Page struct {
	Skip  *int `form:"skip" binding:"omitempty,min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=500"`
}

type DateRange struct {
	FromDate *string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   *string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

type BookSevaListParams struct {
	Page
	DateRange
}

func (p BookSevaListParams) Values() url.Values {
	v := url.Values{}
	p.Page.encode(v)
	p.DateRange.encode(v)
	return v
}

type CallingSevaListParams struct {
	Page
	Status *string `form:"status"`
}

func (p CallingSevaListParams) Values() url.Values {
	v := url.Values{}
	p.Page.encode(v)
	setString(v, "status", p.Status)
	return v
}

type ExpenseListParams struct {
	Page
	DateRange
}

func (p ExpenseListParams) Values() url.Values {
	v := url.Values{}
	p.Page.encode(v)
	p.DateRange.encode(v)
	return v
}

func (p Page) encode(v url.Values) {
	setInt(v, "skip", p.Skip)
	setInt(v, "limit", p.Limit)
}

func (d DateRange) encode(v url.Values) {
	setString(v, "from_date", d.FromDate)
	setString(v, "to_date", d.ToDate)
}

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}

func setString(v url.Values, key string, p *string) {
	if p != nil {
		v.Set(key, *p)
	}
}
