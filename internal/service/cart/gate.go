package cart

import "context"

// CheckAccess decides whether the session may proceed to a protected step of
// the booking flow. It distinguishes the three ways a session can be turned
// away so the client can show the right message:
//
//   - ErrNoLocationSelected: nothing chosen yet, send the client to the
//     location picker
//   - ErrCartEmpty: a location is chosen but there is nothing to book
//     (only when requireItems is set; the services page needs a location
//     but tolerates an empty cart)
//   - ErrLocationMissing: items exist but their location association was
//     lost, which means the saved state went inconsistent
func (s *Service) CheckAccess(ctx context.Context, sessionID string, requireItems bool) error {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	if cart.BarbershopID == "" && cart.IsEmpty() {
		s.logger.Info("CheckAccess: session=%s denied, no location selected", sessionID)
		return ErrNoLocationSelected
	}

	if cart.BarbershopID != "" && cart.IsEmpty() && requireItems {
		s.logger.Info("CheckAccess: session=%s denied, cart empty", sessionID)
		return ErrCartEmpty
	}

	if cart.BarbershopID == "" && !cart.IsEmpty() {
		s.logger.Warn("CheckAccess: session=%s has items without a location", sessionID)
		return ErrLocationMissing
	}

	return nil
}
