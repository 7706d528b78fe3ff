package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type product struct {
	Name     string
	Category string
	Quantity int
	Price    float64
}

var products = []product{
	{Name: "Hyaluronic Serum", Category: "skincare", Quantity: 12, Price: 80},
	{Name: "Vitamin C Cleanser", Category: "skincare", Quantity: 2, Price: 35},
	{Name: "Botox Vial", Category: "injectable", Quantity: 6, Price: 400},
	{Name: "Lip Filler Kit", Category: "injectable", Quantity: 1, Price: 250},
}

func TestFilterWithoutPredicatesReturnsEverything(t *testing.T) {
	assert.Equal(t, products, Filter(products))
}

func TestFilterComposesPredicates(t *testing.T) {
	got := Filter(products,
		Equals("injectable", func(p product) string { return p.Category }),
		func(p product) bool { return p.Quantity > 1 },
	)
	assert.Len(t, got, 1)
	assert.Equal(t, "Botox Vial", got[0].Name)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(products, Equals("skincare", func(p product) string { return p.Category }))
	assert.Equal(t, []string{"Hyaluronic Serum", "Vitamin C Cleanser"},
		[]string{got[0].Name, got[1].Name})
}

func TestTextSearch(t *testing.T) {
	fields := func(p product) []string { return []string{p.Name, p.Category} }

	assert.Len(t, Filter(products, TextSearch("", fields)), 4)
	assert.Len(t, Filter(products, TextSearch("  ", fields)), 4)

	got := Filter(products, TextSearch("VITAMIN", fields))
	assert.Len(t, got, 1)
	assert.Equal(t, "Vitamin C Cleanser", got[0].Name)

	assert.Len(t, Filter(products, TextSearch("injectable", fields)), 2)
	assert.Empty(t, Filter(products, TextSearch("laser", fields)))
}

func TestEqualsEmptyWantMatchesAll(t *testing.T) {
	got := Filter(products, Equals("", func(p product) string { return p.Category }))
	assert.Len(t, got, 4)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(products,
		Count[product](),
		Sum("total_value", func(p product) float64 { return float64(p.Quantity) * p.Price }),
		CountIf("low_stock", func(p product) bool { return p.Quantity <= 2 }),
	)

	assert.Equal(t, 4.0, summary["count"])
	assert.Equal(t, 12*80.0+2*35.0+6*400.0+1*250.0, summary["total_value"])
	assert.Equal(t, 2.0, summary["low_stock"])
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize([]product{},
		Count[product](),
		Sum("total_value", func(p product) float64 { return p.Price }),
	)
	assert.Equal(t, 0.0, summary["count"])
	assert.Equal(t, 0.0, summary["total_value"])
}
