package accounts

import "github.com/huvudbok-dev/huvudbok/internal/model"

// DefaultChart returns the default BAS chart of accounts for a small
// Swedish aktiebolag.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1510", Name: "Kundfordringar", Type: model.AccountTypeAsset, Group: "Fordringar", Description: "Utestående kundfakturor"},
		{Code: "1630", Name: "Skattekonto", Type: model.AccountTypeAsset, Group: "Fordringar"},
		{Code: "1930", Name: "Företagskonto", Type: model.AccountTypeAsset, Group: "Likvida medel", Description: "Primärt bankkonto"},
		{Code: "1940", Name: "Sparkonto", Type: model.AccountTypeAsset, Group: "Likvida medel"},

		{Code: "2081", Name: "Aktiekapital", Type: model.AccountTypeEquity, Group: "Eget kapital"},
		{Code: "2091", Name: "Balanserad vinst eller förlust", Type: model.AccountTypeEquity, Group: "Eget kapital"},
		{Code: "2099", Name: "Årets resultat", Type: model.AccountTypeEquity, Group: "Eget kapital"},

		{Code: "2440", Name: "Leverantörsskulder", Type: model.AccountTypeLiability, Group: "Skulder"},
		{Code: "2610", Name: "Utgående moms 25%", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2611", Name: "Utgående moms på försäljning 25%", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2620", Name: "Utgående moms 12%", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2630", Name: "Utgående moms 6%", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2640", Name: "Ingående moms", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2641", Name: "Debiterad ingående moms", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2650", Name: "Redovisningskonto för moms", Type: model.AccountTypeLiability, Group: "Moms"},
		{Code: "2710", Name: "Personalskatt", Type: model.AccountTypeLiability, Group: "Personal"},
		{Code: "2731", Name: "Avräkning lagstadgade sociala avgifter", Type: model.AccountTypeLiability, Group: "Personal"},

		{Code: "3001", Name: "Försäljning varor 25%", Type: model.AccountTypeRevenue, Group: "Försäljning"},
		{Code: "3041", Name: "Försäljning tjänster 25%", Type: model.AccountTypeRevenue, Group: "Försäljning"},

		{Code: "4010", Name: "Inköp varor och material", Type: model.AccountTypeExpense, Group: "Varor"},
		{Code: "5010", Name: "Lokalhyra", Type: model.AccountTypeExpense, Group: "Lokal"},
		{Code: "5420", Name: "Programvaror", Type: model.AccountTypeExpense, Group: "IT & Programvara"},
		{Code: "5810", Name: "Biljetter", Type: model.AccountTypeExpense, Group: "Resor"},
		{Code: "6071", Name: "Representation", Type: model.AccountTypeExpense, Group: "Övrigt"},
		{Code: "6212", Name: "Telefon och internet", Type: model.AccountTypeExpense, Group: "IT & Programvara"},
		{Code: "7010", Name: "Löner", Type: model.AccountTypeExpense, Group: "Personal"},
		{Code: "7510", Name: "Arbetsgivaravgifter", Type: model.AccountTypeExpense, Group: "Personal"},
	}
}
