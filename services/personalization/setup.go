package personalization

import (
	"errors"
	"fmt"

	"lilac/hooks"
	"lilac/utils"
)

// Hook names under which the personalization callbacks are registered.
const (
	HookFilterFields   = "lilac.personalize_checkout_fields"
	HookPrimeValues    = "lilac.personalize_checkout_values"
	HookEnforceProfile = "lilac.enforce_profile_contacts"
)

// ErrCommerceUnavailable indicates the companion commerce engine is not
// active, so the extension refused to register its hooks.
var ErrCommerceUnavailable = errors.New("companion commerce engine is not active")

// CommerceProbe reports whether the companion commerce engine is available.
type CommerceProbe interface {
	Enabled() bool
}

// Setup registers the three personalization callbacks against the engine's
// dispatch table. It is called exactly once by the bootstrap; subsequent calls
// are no-ops so hooks are never registered twice. Setup refuses to register
// anything when the companion commerce engine is inactive.
func (s *DefaultPersonalizationService) Setup(engine *hooks.Engine, commerce CommerceProbe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.configured {
		utils.GetLogger().Debug("Checkout personalization already configured; skipping setup")
		return nil
	}

	if commerce == nil || !commerce.Enabled() {
		return ErrCommerceUnavailable
	}

	if err := engine.RegisterFieldFilter(HookFilterFields, s.FilterCheckoutFields); err != nil {
		return fmt.Errorf("failed to register field filter: %w", err)
	}
	if err := engine.RegisterValuePrimer(HookPrimeValues, s.PrimeFieldValue); err != nil {
		return fmt.Errorf("failed to register value primer: %w", err)
	}
	if err := engine.RegisterPreValidator(HookEnforceProfile, s.EnforceSubmission); err != nil {
		return fmt.Errorf("failed to register pre-validator: %w", err)
	}

	s.configured = true
	utils.GetLogger().Info("Checkout personalization hooks registered")
	return nil
}
