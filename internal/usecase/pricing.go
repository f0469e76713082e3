package usecase

import (
	"fmt"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

const LeadCurrency = "aud"

// LeadPricingAUDCents fixes the unlock price per segment.
var LeadPricingAUDCents = map[string]int64{
	entity.SegmentRefinance:    24900,
	entity.SegmentSelfEmployed: 39900,
}

func LeadPriceLabel(segment string) string {
	return fmt.Sprintf("$%d", LeadPricingAUDCents[segment]/100)
}
