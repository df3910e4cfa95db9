package money_test

import (
	"fmt"
	"log"

	"github.com/amirasaad/moneykit/pkg/money"
)

// ExampleParse demonstrates parsing the canonical form
func ExampleParse() {
	m, err := money.Parse("-10.40 EUR")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m.Cents(), m.Currency())

	_, err = money.Parse("10.4 EUR")
	fmt.Println(err)
	// Output:
	// -1040 EUR
	// could not parse monetary value: "10.4 EUR"
}

// ExampleMoney_Add demonstrates adding money values
func ExampleMoney_Add() {
	price := money.MustNew(1250, money.USD)
	shipping := money.MustNew(499, money.USD)

	total, err := price.Add(shipping)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)

	// A zero amount is an identity whatever its currency.
	total, err = money.MustNew(0, money.EUR).Add(price)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
	// Output:
	// 17.49 USD
	// 12.50 USD
}

// ExampleMoney_Div demonstrates splitting a bill
func ExampleMoney_Div() {
	bill := money.MustNew(100, money.EUR)

	share, _ := bill.Div(money.Int(3), false)
	fmt.Println(share)

	share, _ = bill.Div(money.Int(3), true)
	fmt.Println(share)
	// Output:
	// 0.33 EUR
	// 0.34 EUR
}

// ExampleMoney_Allocate demonstrates splitting without losing cents
func ExampleMoney_Allocate() {
	shares, err := money.MustNew(100, money.EUR).Allocate(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(shares)
	// Output:
	// [0.34 EUR 0.33 EUR 0.33 EUR]
}

// ExampleMoney_Display demonstrates locale-aware formatting
func ExampleMoney_Display() {
	m := money.MustNew(-123, money.EUR)
	fmt.Println(m.Display())
	fmt.Println(m.Display(money.WithLocale("nl-NL")))
	fmt.Println(money.MustNew(1000, money.USD).Display(money.WithCompact()))
	fmt.Println(money.MustNew(1000, money.GBP).Display(money.WithExplicitSign(), money.WithSkipDecimals()))
	// Output:
	// -1.23 €
	// -€ 1.23
	// $10.00
	// +£ 10
}
