package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTicker(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   string
	}{
		{"nse suffix", "INFY.NS", "INFY"},
		{"bse suffix", "RELIANCE.BO", "RELIANCE"},
		{"colon nse", "TCS:NSE", "TCS"},
		{"colon bse", "TCS:BSE", "TCS"},
		{"no suffix", "HDFCBANK", "HDFCBANK"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTicker(tt.symbol))
		})
	}
}

func TestDisplayName(t *testing.T) {
	rec := &AssetRecord{Symbol: "INFY.NS", Name: "Infosys Ltd"}
	assert.Equal(t, "Infosys Ltd", DisplayName("INFY.NS", rec))

	// Falls back to the cleaned ticker without a record.
	assert.Equal(t, "INFY", DisplayName("INFY.NS", nil))
	assert.Equal(t, "INFY", DisplayName("INFY.NS", &AssetRecord{Symbol: "INFY.NS"}))
}

func TestAssetClass_IsFundLike(t *testing.T) {
	assert.True(t, AssetClassFund.IsFundLike())
	assert.True(t, AssetClassETF.IsFundLike())
	assert.False(t, AssetClassEquity.IsFundLike())
}

func TestAssetRecord_ReturnsAccessors(t *testing.T) {
	rec := &AssetRecord{}
	assert.Equal(t, 0.0, rec.Ret1Y())
	assert.Equal(t, 0.0, rec.Ret3Y())
	assert.Equal(t, 0.0, rec.Ret5Y())

	rec.Returns = &TrailingReturns{R1Y: 18, R3Y: 14, R5Y: 11}
	assert.Equal(t, 18.0, rec.Ret1Y())
	assert.Equal(t, 14.0, rec.Ret3Y())
	assert.Equal(t, 11.0, rec.Ret5Y())
}
