package domain

import (
	"encoding/json"
	"fmt"
)

// Feature names a capability gated independently of screen access.
// The names are a contract consumed by the billing and product views.
type Feature string

const (
	FeatureBillingView      Feature = "billing_view"
	FeatureBillingCreate    Feature = "billing_create"
	FeatureBillingPayment   Feature = "billing_payment"
	FeatureFinancialStats   Feature = "financial_stats"
	FeatureMedicalDiagnosis Feature = "medical_diagnosis"
	FeatureProductsPricing  Feature = "products_pricing"
)

// AllFeatures lists every feature in a stable order.
var AllFeatures = []Feature{
	FeatureBillingView,
	FeatureBillingCreate,
	FeatureBillingPayment,
	FeatureFinancialStats,
	FeatureMedicalDiagnosis,
	FeatureProductsPricing,
}

// ParseFeature converts a wire name into a Feature.
func ParseFeature(s string) (Feature, error) {
	for _, f := range AllFeatures {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
}

func (f Feature) String() string { return string(f) }

func (f *Feature) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("feature: %w", err)
	}
	parsed, err := ParseFeature(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
