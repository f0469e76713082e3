package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

func TestLeadPricing(t *testing.T) {
	assert.Equal(t, int64(24900), LeadPricingAUDCents[entity.SegmentRefinance])
	assert.Equal(t, int64(39900), LeadPricingAUDCents[entity.SegmentSelfEmployed])
	assert.Equal(t, "aud", LeadCurrency)
}

func TestLeadPriceLabel(t *testing.T) {
	assert.Equal(t, "$249", LeadPriceLabel(entity.SegmentRefinance))
	assert.Equal(t, "$399", LeadPriceLabel(entity.SegmentSelfEmployed))
}
