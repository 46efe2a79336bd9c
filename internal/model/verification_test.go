package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVerification_Balanced(t *testing.T) {
	v := Verification{
		Rows: []Row{
			{AccountCode: "5420", Debit: decimal.NewFromInt(100)},
			{AccountCode: "1930", Credit: decimal.NewFromInt(100)},
		},
	}
	assert.True(t, v.Balanced())

	v.Rows[1].Credit = decimal.NewFromInt(99)
	assert.False(t, v.Balanced())
}

func TestRow_Amount(t *testing.T) {
	debit := Row{AccountCode: "5420", Debit: decimal.NewFromInt(250)}
	credit := Row{AccountCode: "3001", Credit: decimal.NewFromInt(250)}
	assert.Equal(t, "250", debit.Amount().String())
	assert.Equal(t, "-250", credit.Amount().String())
}
