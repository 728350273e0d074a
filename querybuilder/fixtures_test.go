package querybuilder_test

import "github.com/shyptr/gqlquery/querybuilder"

type ProductBuilder struct {
	*querybuilder.Builder
}

func NewProduct() *ProductBuilder {
	return &ProductBuilder{querybuilder.New("Product", "product")}
}

func (p *ProductBuilder) SelectID() *ProductBuilder {
	p.SelectField("id")
	return p
}

func (p *ProductBuilder) SelectTitle() *ProductBuilder {
	p.SelectField("title")
	return p
}

func (p *ProductBuilder) SetID(id string) *ProductBuilder {
	p.SetArgument("id", id)
	return p
}

// SelectPrice reuses the last price selection when it is the same field.
func (p *ProductBuilder) SelectPrice(price *MoneyV2Builder) *ProductBuilder {
	if existing, ok := p.GetSelectionObjectIfExists(price).(*MoneyV2Builder); ok && existing != price {
		return p
	}
	p.SelectField(price)
	return p
}

func (p *ProductBuilder) SelectImage(image *ImageBuilder) *ProductBuilder {
	if p.SelectionObjectExists(image) {
		return p
	}
	p.SelectField(image)
	return p
}

type MoneyV2Builder struct {
	*querybuilder.Builder
}

func NewMoneyV2(field string) *MoneyV2Builder {
	return &MoneyV2Builder{querybuilder.New("MoneyV2", field)}
}

func (m *MoneyV2Builder) SelectAmount() *MoneyV2Builder {
	m.SelectField("amount")
	return m
}

func (m *MoneyV2Builder) SelectCurrencyCode() *MoneyV2Builder {
	m.SelectField("currencyCode")
	return m
}

func (m *MoneyV2Builder) SetCurrency(currency string) *MoneyV2Builder {
	m.SetArgument("currency", currency)
	return m
}

type ImageBuilder struct {
	*querybuilder.Builder
}

func NewImage() *ImageBuilder {
	return &ImageBuilder{querybuilder.New("Image", "image")}
}

func (i *ImageBuilder) SelectURL() *ImageBuilder {
	i.SelectField("url")
	return i
}
